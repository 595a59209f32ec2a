// Package vector implements a growable array of strings backed by a
// contiguous slot buffer that doubles when full.
//
// A Vector owns its elements: every insert stores an independent copy of
// the caller's string, and removal clears the slot that held it. A Vector
// is not safe for concurrent use.
package vector

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// NotFound is returned by Find when no element matches.
const NotFound = -1

// Vector is a growable array of owned strings. The zero value is an empty
// vector with no capacity, ready to use.
type Vector struct {
	// len(elements) is the capacity. Slots [count, len) hold "".
	elements []string
	count    int
}

// New returns an empty vector with DefaultCapacity slots.
func New() *Vector {
	return &Vector{elements: make([]string, DefaultCapacity)}
}

// NewVector returns an empty vector with room for capacity elements.
// A capacity of 0 is allowed; the first write grows it to 1.
func NewVector(capacity int) (*Vector, error) {
	slots, err := allocate(capacity)
	if err != nil {
		return nil, err
	}
	return &Vector{elements: slots}, nil
}

// FromStrings returns a vector holding copies of elems in order. Storage
// is reserved once up front, so the capacity is the smallest power of two
// that fits elems.
func FromStrings(elems ...string) (*Vector, error) {
	v := &Vector{}
	if err := v.Reserve(len(elems)); err != nil {
		return nil, err
	}
	for _, e := range elems {
		if err := v.Append(e); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func own(s string) string {
	return strings.Clone(s)
}

// Size returns the number of live elements.
func (v *Vector) Size() int {
	return v.count
}

// At returns the element at index. The result is the vector's own copy;
// the caller takes no ownership of it.
func (v *Vector) At(index int) (string, error) {
	if err := checkIndex("at", index, v.count); err != nil {
		return "", err
	}
	return v.elements[index], nil
}

// Insert stores a copy of elem at index, shifting the elements at
// [index, Size()) one slot to the right. Inserting at Size() appends.
func (v *Vector) Insert(elem string, index int) error {
	if err := checkIndex("insert", index, v.count+1); err != nil {
		return err
	}
	if v.count == len(v.elements) {
		if err := v.grow(); err != nil {
			return err
		}
	}
	// copy is overlap-safe.
	copy(v.elements[index+1:v.count+1], v.elements[index:v.count])
	v.elements[index] = own(elem)
	v.count++
	return nil
}

// Append stores a copy of elem after the last element.
func (v *Vector) Append(elem string) error {
	return v.Insert(elem, v.count)
}

// Push is Append.
func (v *Vector) Push(elem string) error {
	return v.Append(elem)
}

// Shift stores a copy of elem in front of the first element.
func (v *Vector) Shift(elem string) error {
	return v.Insert(elem, 0)
}

// Find returns the lowest index whose element equals elem, or NotFound.
func (v *Vector) Find(elem string) int {
	return slices.Index(v.elements[:v.count], elem)
}

// Contains reports whether some element equals elem.
func (v *Vector) Contains(elem string) bool {
	return v.Find(elem) != NotFound
}

// Remove deletes the first element equal to elem.
func (v *Vector) Remove(elem string) error {
	i := v.Find(elem)
	if i == NotFound {
		return fmt.Errorf("vector: remove %q: %w", elem, ErrElementNotFound)
	}
	v.removeAt(i)
	return nil
}

// RemoveAt deletes the element at index, shifting later elements left.
func (v *Vector) RemoveAt(index int) error {
	if err := checkIndex("remove", index, v.count); err != nil {
		return err
	}
	v.removeAt(index)
	return nil
}

// Pop removes the last element and hands it to the caller.
func (v *Vector) Pop() (string, error) {
	if v.count == 0 {
		return "", fmt.Errorf("vector: pop: %w", ErrEmptyContainer)
	}
	return v.removeAt(v.count - 1), nil
}

// Unshift removes the first element and hands it to the caller.
func (v *Vector) Unshift() (string, error) {
	if v.count == 0 {
		return "", fmt.Errorf("vector: unshift: %w", ErrEmptyContainer)
	}
	return v.removeAt(0), nil
}

// removeAt expects 0 <= index < count.
func (v *Vector) removeAt(index int) string {
	removed := v.elements[index]
	copy(v.elements[index:v.count-1], v.elements[index+1:v.count])
	v.count--
	v.elements[v.count] = ""
	return removed
}

// Reverse reverses the elements in place.
func (v *Vector) Reverse() {
	for i, j := 0, v.count-1; i < j; i, j = i+1, j-1 {
		v.elements[i], v.elements[j] = v.elements[j], v.elements[i]
	}
}

// Slice returns a copy of the live elements, or nil when there are none.
func (v *Vector) Slice() []string {
	if v.count == 0 {
		return nil
	}
	return slices.Clone(v.elements[:v.count])
}

// Equal reports whether v and other hold the same elements in the same
// order. A nil other equals an empty vector.
func (v *Vector) Equal(other *Vector) bool {
	if other == nil {
		return v.count == 0
	}
	return slices.Equal(v.elements[:v.count], other.elements[:other.count])
}

func (v *Vector) String() string {
	if v == nil {
		return "[]"
	}
	return Format(v)
}
