// Package hashset implements a fixed capacity set over chained hash buckets,
// with the usual set algebra and a cursor that can remove while iterating.
package hashset

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	// DefaultCapacity is the bucket count used by NewDefault.
	DefaultCapacity = 1 << 4

	// MaxCapacity is the largest bucket count accepted by New.
	MaxCapacity = 1 << 30
)

type node[E any] struct {
	value E
	next  *node[E]
}

// HashSet is a set backed by a fixed number of buckets, each holding a singly
// linked chain of elements that share the bucket index. The bucket count never
// changes, so chains grow with the number of elements.
//
// A HashSet is not safe for concurrent use. Cursors are not fail-fast: modifying
// the set other than through Cursor.Remove while a cursor is live leaves that
// cursor's traversal undefined.
type HashSet[E any] struct {
	buckets []*node[E]
	size    int
	hasher  Hasher[E]
	logger  *zap.Logger
}

// New creates an empty set with the given number of buckets.
// The capacity must be in [1, MaxCapacity].
func New[E any](capacity int, opts ...Option[E]) (*HashSet[E], error) {
	if capacity < 1 || capacity > MaxCapacity {
		return nil, fmt.Errorf("%w: capacity %d is out of bounds [1, %d]", ErrInvalidArgument, capacity, MaxCapacity)
	}
	o := buildOptions(opts)
	o.logger.Debug("new hash set", zap.Int("capacity", capacity))
	return &HashSet[E]{
		buckets: make([]*node[E], capacity),
		hasher:  o.hasher,
		logger:  o.logger,
	}, nil
}

// NewDefault creates an empty set with DefaultCapacity buckets.
func NewDefault[E any](opts ...Option[E]) *HashSet[E] {
	s, _ := New(DefaultCapacity, opts...)
	return s
}

// NewFrom creates a set holding the elements of source. The bucket count is the
// size of source, or 1 if source is empty.
func NewFrom[E any](source Collection[E], opts ...Option[E]) (*HashSet[E], error) {
	if isNil(source) {
		return nil, fmt.Errorf("%w: source collection is nil", ErrNullNotAllowed)
	}
	capacity := source.Size()
	if capacity < 1 {
		capacity = 1
	} else if capacity > MaxCapacity {
		capacity = MaxCapacity
	}
	s, err := New(capacity, opts...)
	if err != nil {
		return nil, err
	}
	if _, err := s.AddAll(source); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *HashSet[E]) indexOf(e E) int {
	return indexFor(s.hasher.Hash(e), len(s.buckets))
}

// Size returns the number of elements in the set.
func (s *HashSet[E]) Size() int {
	return s.size
}

// IsEmpty returns true if the set has no elements.
func (s *HashSet[E]) IsEmpty() bool {
	return s.size == 0
}

// Capacity returns the fixed number of buckets.
func (s *HashSet[E]) Capacity() int {
	return len(s.buckets)
}

// Contains reports whether an element equivalent to o is in the set.
func (s *HashSet[E]) Contains(o E) bool {
	for curr := s.buckets[s.indexOf(o)]; curr != nil; curr = curr.next {
		if s.hasher.Equal(curr.value, o) {
			return true
		}
	}
	return false
}

// Add inserts e unless an equivalent element is already present.
// It returns true if the set changed.
func (s *HashSet[E]) Add(e E) (bool, error) {
	if isNil(e) {
		return false, fmt.Errorf("%w: cannot add nil element", ErrNullNotAllowed)
	}
	index := s.indexOf(e)
	for curr := s.buckets[index]; curr != nil; curr = curr.next {
		if s.hasher.Equal(curr.value, e) {
			return false, nil
		}
	}
	s.buckets[index] = &node[E]{value: e, next: s.buckets[index]}
	s.size++
	return true, nil
}

// Remove deletes the element equivalent to o. It returns true if one was present.
func (s *HashSet[E]) Remove(o E) (bool, error) {
	if isNil(o) {
		return false, fmt.Errorf("%w: cannot remove nil element", ErrNullNotAllowed)
	}
	index := s.indexOf(o)
	var prev *node[E]
	for curr := s.buckets[index]; curr != nil; curr = curr.next {
		if s.hasher.Equal(curr.value, o) {
			if prev == nil {
				s.buckets[index] = curr.next
			} else {
				prev.next = curr.next // bypass the removed node
			}
			s.size--
			return true, nil
		}
		prev = curr
	}
	return false, nil
}

// Clear removes all elements. The bucket count is kept.
func (s *HashSet[E]) Clear() {
	clear(s.buckets)
	s.size = 0
	s.logger.Debug("hash set cleared", zap.Int("capacity", len(s.buckets)))
}

// ForEach calls fn for every element in bucket order until fn returns false.
// fn must not modify the set.
func (s *HashSet[E]) ForEach(fn func(e E) bool) {
	for _, head := range s.buckets {
		for curr := head; curr != nil; curr = curr.next {
			if !fn(curr.value) {
				return
			}
		}
	}
}

// Iterator returns a cursor positioned before the first element.
func (s *HashSet[E]) Iterator() *Cursor[E] {
	return newCursor(s)
}

// Equal reports whether other is a Set with the same size whose elements are all
// contained in s. A failure while comparing elements yields false.
func (s *HashSet[E]) Equal(other any) (equal bool) {
	if hs, ok := other.(*HashSet[E]); ok && hs == s {
		return true
	}
	o, ok := other.(Set[E])
	if !ok || isNil(o) {
		return false
	}
	if o.Size() != s.Size() {
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Debug("element comparison failed", zap.Any("panic", r))
			equal = false
		}
	}()
	contained, err := s.ContainsAll(o)
	return err == nil && contained
}

// HashCode returns the sum of the element hash codes. It does not depend on
// insertion order, so equal sets have equal hash codes.
func (s *HashSet[E]) HashCode() int {
	h := 0
	s.ForEach(func(e E) bool {
		if !isNil(e) {
			h += s.hasher.Hash(e)
		}
		return true
	})
	return h
}

// String formats the set as {a b c} in traversal order.
func (s *HashSet[E]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	s.ForEach(func(e E) bool {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%v", e)
		return true
	})
	b.WriteByte('}')
	return b.String()
}
