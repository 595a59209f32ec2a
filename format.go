package vector

import "strings"

// Reader is the read-only view Format needs.
type Reader interface {
	At(index int) (string, error)
	Size() int
}

// Format renders the elements of r as a bracketed, comma-separated list,
// e.g. "[A,B]".
func Format(r Reader) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, n := 0, r.Size(); i < n; i++ {
		s, err := r.At(i)
		if err != nil {
			break
		}
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s)
	}
	b.WriteByte(']')
	return b.String()
}
