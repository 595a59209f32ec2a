package vector

import (
	"fmt"
	"math"
	"unsafe"
)

// MaxCapacity is the largest number of slots a Vector will try to allocate.
const MaxCapacity = math.MaxInt / int(unsafe.Sizeof(""))

// DefaultCapacity is the initial capacity used by New.
const DefaultCapacity = 8

// allocate returns a zeroed slot buffer of n entries. The runtime panics
// on lengths it cannot address; that panic is reported as ErrAllocation.
func allocate(n int) (slots []string, err error) {
	if n < 0 || n > MaxCapacity {
		return nil, fmt.Errorf("vector: capacity %d: %w", n, ErrAllocation)
	}
	defer func() {
		if r := recover(); r != nil {
			slots = nil
			err = fmt.Errorf("vector: capacity %d: %v: %w", n, r, ErrAllocation)
		}
	}()
	return make([]string, n), nil
}

// nextCapacity is the doubling rule: max(1, 2*c).
func nextCapacity(c int) (int, error) {
	if c == 0 {
		return 1, nil
	}
	if c > MaxCapacity/2 {
		return 0, fmt.Errorf("vector: grow past capacity %d: %w", c, ErrAllocation)
	}
	return 2 * c, nil
}

// grow doubles the slot buffer and moves the live range into it. On
// failure the vector is left untouched.
func (v *Vector) grow() error {
	n, err := nextCapacity(len(v.elements))
	if err != nil {
		return err
	}
	return v.relocate(n)
}

// relocate installs a fresh buffer of n slots holding the live range.
// The strings move with their slots; they are not copied again.
func (v *Vector) relocate(n int) error {
	slots, err := allocate(n)
	if err != nil {
		return err
	}
	copy(slots, v.elements[:v.count])
	v.elements = slots
	return nil
}

// Reserve makes room for at least n elements without further growth,
// doubling the capacity as many times as needed.
func (v *Vector) Reserve(n int) error {
	c := len(v.elements)
	if n <= c {
		return nil
	}
	if n > MaxCapacity {
		return fmt.Errorf("vector: reserve %d: %w", n, ErrAllocation)
	}
	for c < n {
		next, err := nextCapacity(c)
		if err != nil {
			// n fits even though the next doubling does not.
			next = n
		}
		c = next
	}
	return v.relocate(c)
}

// Cap returns the number of allocated slots.
func (v *Vector) Cap() int {
	return len(v.elements)
}

// Free releases every live element and then the slot buffer. The vector
// must not be used afterwards.
func (v *Vector) Free() {
	clear(v.elements[:v.count])
	v.elements = nil
	v.count = 0
}
