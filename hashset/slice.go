package hashset

import (
	"fmt"
	"reflect"
)

// ToSlice returns the elements in a newly allocated slice, in traversal order.
func (s *HashSet[E]) ToSlice() []E {
	out := make([]E, 0, s.size)
	s.ForEach(func(e E) bool {
		out = append(out, e)
		return true
	})
	return out
}

// Values returns the elements in a newly allocated slice. It is the same as
// ToSlice and lets a HashSet be used as a Collection.
func (s *HashSet[E]) Values() []E {
	return s.ToSlice()
}

// CopyTo stores the elements in dst if it is long enough, otherwise in a new
// slice of length Size. If dst is longer than Size, dst[Size] is set to the zero
// value; later slots are left untouched.
func (s *HashSet[E]) CopyTo(dst []E) []E {
	r := dst
	if len(dst) < s.size {
		r = make([]E, s.size)
	}
	i := 0
	s.ForEach(func(e E) bool {
		r[i] = e
		i++
		return true
	})
	if i < len(r) {
		var zero E
		r[i] = zero
	}
	return r
}

// ToSliceOf is CopyTo for a destination whose element type differs from the
// set's. Each element is checked when it is written; the first element that is
// not a T stops the copy with ErrArrayStoreMismatch. Slots written before that
// keep their new values.
func ToSliceOf[T any, E any](s *HashSet[E], dst []T) ([]T, error) {
	r := dst
	if len(dst) < s.size {
		r = make([]T, s.size)
	}
	i := 0
	var err error
	s.ForEach(func(e E) bool {
		if isNil(e) {
			var zero T
			r[i] = zero
			i++
			return true
		}
		v, ok := any(e).(T)
		if !ok {
			err = fmt.Errorf("%w: cannot store %T in []%v", ErrArrayStoreMismatch, e, reflect.TypeOf((*T)(nil)).Elem())
			return false
		}
		r[i] = v
		i++
		return true
	})
	if err != nil {
		return r, err
	}
	if i < len(r) {
		var zero T
		r[i] = zero
	}
	return r, nil
}
