package vector

import (
	"encoding/binary"
	"fmt"
	"strconv"

	cid "github.com/ipfs/go-cid"
	format "github.com/ipfs/go-ipld-format"
	mh "github.com/multiformats/go-multihash"
	"golang.org/x/exp/slices"
)

var _ format.Node = (*Snapshot)(nil)

// snapshotPrefix builds CIDv1 raw-codec identifiers over a SHA2-256 digest.
var snapshotPrefix = cid.Prefix{
	Version:  1,
	Codec:    cid.Raw,
	MhType:   mh.SHA2_256,
	MhLength: -1,
}

// Snapshot is an immutable, content-addressed copy of a vector's elements.
// It is a leaf IPLD node: paths are element indices and there are no links.
//
// The raw encoding is, for each element in order, its byte length as a
// uvarint followed by its bytes.
type Snapshot struct {
	elements []string
	raw      []byte
	cid      cid.Cid
}

// Snapshot freezes the current elements.
func (v *Vector) Snapshot() (*Snapshot, error) {
	return newSnapshot(slices.Clone(v.elements[:v.count]))
}

func newSnapshot(elems []string) (*Snapshot, error) {
	raw := encodeElements(elems)
	c, err := snapshotPrefix.Sum(raw)
	if err != nil {
		return nil, fmt.Errorf("vector: snapshot: %w", err)
	}
	return &Snapshot{elements: elems, raw: raw, cid: c}, nil
}

func encodeElements(elems []string) []byte {
	size := 0
	for _, e := range elems {
		size += binary.MaxVarintLen64 + len(e)
	}
	buf := make([]byte, 0, size)
	for _, e := range elems {
		buf = binary.AppendUvarint(buf, uint64(len(e)))
		buf = append(buf, e...)
	}
	return buf
}

// DecodeSnapshot parses the raw encoding produced by Snapshot.RawData.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var elems []string
	for off := 0; off < len(data); {
		n, k := binary.Uvarint(data[off:])
		if k <= 0 {
			return nil, fmt.Errorf("vector: decode snapshot: bad length at byte %d: %w", off, ErrMalformedSnapshot)
		}
		off += k
		if n > uint64(len(data)-off) {
			return nil, fmt.Errorf("vector: decode snapshot: element of %d bytes at byte %d truncated: %w", n, off, ErrMalformedSnapshot)
		}
		elems = append(elems, string(data[off:off+int(n)]))
		off += int(n)
	}
	return newSnapshot(elems)
}

// Len returns the number of elements in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.elements)
}

// Vector returns a new vector holding copies of the snapshot's elements.
func (s *Snapshot) Vector() (*Vector, error) {
	return FromStrings(s.elements...)
}

func (s *Snapshot) RawData() []byte {
	return s.raw
}

func (s *Snapshot) Cid() cid.Cid {
	return s.cid
}

func (s *Snapshot) String() string {
	return fmt.Sprintf("[Snapshot %s]", s.cid)
}

func (s *Snapshot) Loggable() map[string]interface{} {
	return map[string]interface{}{
		"snapshot": s.cid,
		"elements": len(s.elements),
	}
}

// Resolve looks up the element named by path[0], which must be an index
// as Tree spells it ("1", not "01" or "+1"). Elements are leaves, so
// the rest of the path is returned unresolved. An empty path resolves to
// a copy of all elements.
func (s *Snapshot) Resolve(path []string) (interface{}, []string, error) {
	if len(path) == 0 {
		return slices.Clone(s.elements), nil, nil
	}
	i, err := strconv.Atoi(path[0])
	if err != nil || strconv.Itoa(i) != path[0] {
		return nil, nil, fmt.Errorf("vector: resolve %q: %w", path[0], ErrElementNotFound)
	}
	if err := checkIndex("resolve", i, len(s.elements)); err != nil {
		return nil, nil, err
	}
	return s.elements[i], path[1:], nil
}

// Tree lists the element indices. Only the root path has children.
func (s *Snapshot) Tree(path string, depth int) []string {
	if path != "" || depth == 0 {
		return nil
	}
	out := make([]string, len(s.elements))
	for i := range s.elements {
		out[i] = strconv.Itoa(i)
	}
	return out
}

func (s *Snapshot) ResolveLink(path []string) (*format.Link, []string, error) {
	return nil, nil, fmt.Errorf("vector: snapshot %s has no links: %w", s.cid, ErrElementNotFound)
}

func (s *Snapshot) Copy() format.Node {
	return &Snapshot{
		elements: slices.Clone(s.elements),
		raw:      slices.Clone(s.raw),
		cid:      s.cid,
	}
}

func (s *Snapshot) Links() []*format.Link {
	return nil
}

func (s *Snapshot) Stat() (*format.NodeStat, error) {
	return &format.NodeStat{
		Hash:           s.cid.String(),
		BlockSize:      len(s.raw),
		DataSize:       len(s.raw),
		CumulativeSize: len(s.raw),
	}, nil
}

func (s *Snapshot) Size() (uint64, error) {
	return uint64(len(s.raw)), nil
}
