package hashset

import (
	"fmt"

	"go.uber.org/zap"
)

// ContainsAll reports whether every element of c is in the set. It stops at the
// first missing element. A nil collection or a nil element is an error.
func (s *HashSet[E]) ContainsAll(c Collection[E]) (bool, error) {
	if isNil(c) {
		return false, fmt.Errorf("%w: collection is nil", ErrNullNotAllowed)
	}
	for _, e := range c.Values() {
		if isNil(e) {
			return false, fmt.Errorf("%w: collection holds a nil element", ErrNullNotAllowed)
		}
		if !s.Contains(e) {
			return false, nil
		}
	}
	return true, nil
}

// AddAll adds every element of c, turning the set into the union of both.
// It returns true if the set changed.
//
// AddAll is not atomic: if c holds a nil element, the elements before it stay
// added and the error is returned.
func (s *HashSet[E]) AddAll(c Collection[E]) (bool, error) {
	if isNil(c) {
		return false, fmt.Errorf("%w: collection is nil", ErrNullNotAllowed)
	}
	modified := false
	for _, e := range c.Values() {
		added, err := s.Add(e)
		if err != nil {
			return modified, err
		}
		modified = modified || added
	}
	s.logger.Debug("add all", zap.Bool("modified", modified), zap.Int("size", s.size))
	return modified, nil
}

// RetainAll removes every element that c does not contain, turning the set
// into the intersection of both. It returns true if the set changed.
func (s *HashSet[E]) RetainAll(c Collection[E]) (bool, error) {
	if isNil(c) {
		return false, fmt.Errorf("%w: collection is nil", ErrNullNotAllowed)
	}
	modified := false
	it := s.Iterator()
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			return modified, err
		}
		if c.Contains(e) {
			continue
		}
		if err := it.Remove(); err != nil {
			return modified, err
		}
		modified = true
	}
	s.logger.Debug("retain all", zap.Bool("modified", modified), zap.Int("size", s.size))
	return modified, nil
}

// RemoveAll removes every element of c, turning the set into the difference
// s \ c. It returns true if the set changed.
//
// Like AddAll it is not atomic with respect to nil elements in c.
func (s *HashSet[E]) RemoveAll(c Collection[E]) (bool, error) {
	if isNil(c) {
		return false, fmt.Errorf("%w: collection is nil", ErrNullNotAllowed)
	}
	modified := false
	for _, e := range c.Values() {
		removed, err := s.Remove(e)
		if err != nil {
			return modified, err
		}
		modified = modified || removed
	}
	s.logger.Debug("remove all", zap.Bool("modified", modified), zap.Int("size", s.size))
	return modified, nil
}
