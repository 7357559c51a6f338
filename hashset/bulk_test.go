package hashset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	i1 = 1
	i2 = -10
	i3 = 120
	i4 = 234_500
	i5 = 10_989_020
)

func setA(t *testing.T) *HashSet[int] {
	return newIntSet(t, 16, i1, i2, i3)
}

func setB(t *testing.T) *HashSet[int] {
	return newIntSet(t, 16, i3, i4, i5)
}

func TestAddAllGetsUnion(t *testing.T) {
	a := setA(t)
	modified, err := a.AddAll(setB(t))
	require.NoError(t, err)
	assert.True(t, modified)
	assert.True(t, a.Equal(newIntSet(t, 16, i1, i2, i3, i4, i5)), "Union must contain all elements, got %v", a)

	modified, err = a.AddAll(setB(t))
	require.NoError(t, err)
	assert.False(t, modified, "second union changes nothing")
}

func TestRetainAllGetsIntersection(t *testing.T) {
	a := setA(t)
	modified, err := a.RetainAll(setB(t))
	require.NoError(t, err)
	assert.True(t, modified)
	assert.True(t, a.Equal(newIntSet(t, 16, i3)), "Intersection must contain only common elements, got %v", a)

	modified, err = a.RetainAll(setB(t))
	require.NoError(t, err)
	assert.False(t, modified)
}

func TestRemoveAllGetsDifference(t *testing.T) {
	a := setA(t)
	modified, err := a.RemoveAll(setB(t))
	require.NoError(t, err)
	assert.True(t, modified)
	assert.True(t, a.Equal(newIntSet(t, 16, i1, i2)), "Difference must contain only different elements, got %v", a)
}

func TestBulkOnNewSet(t *testing.T) {
	s := NewDefault[int]()

	modified, err := s.AddAll(ListOf(i1, i2, i3, i4, i5))
	require.NoError(t, err)
	assert.True(t, modified, "All elements must be added")
	assert.Equal(t, 5, s.Size())

	fresh := NewDefault[int]()
	modified, err = fresh.RemoveAll(ListOf(i1, i2, i3, i4, i5))
	require.NoError(t, err)
	assert.False(t, modified, "There are no elements in new set")

	modified, err = fresh.RetainAll(ListOf(i1))
	require.NoError(t, err)
	assert.False(t, modified)
}

func TestRetainAllWithCollidingChain(t *testing.T) {
	s := newCollidingSet(t, 1, 2, 3, 4, 5, 6)
	modified, err := s.RetainAll(ListOf(2, 4, 6, 8))
	require.NoError(t, err)
	assert.True(t, modified)
	assert.ElementsMatch(t, []int{2, 4, 6}, s.ToSlice())
	assert.Equal(t, 3, s.Size())
}

func TestContainsAll(t *testing.T) {
	s := newIntSet(t, 16, i1, i2, i3, i4, i5)

	ok, err := s.ContainsAll(ListOf(i2, i3, i4))
	require.NoError(t, err)
	assert.True(t, ok, "Set must contain its sub-set")

	ok, err = s.ContainsAll(ListOf(i2, 7))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.ContainsAll(NewList[int]())
	require.NoError(t, err)
	assert.True(t, ok, "every set contains the empty collection")

	single := newIntSet(t, 16, i1)
	ok, err = single.ContainsAll(ListOf(i2, i3, i4))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBulkRejectsNilCollection(t *testing.T) {
	s := setA(t)

	_, err := s.ContainsAll(nil)
	assert.ErrorIs(t, err, ErrNullNotAllowed)
	_, err = s.AddAll(nil)
	assert.ErrorIs(t, err, ErrNullNotAllowed)
	_, err = s.RetainAll(nil)
	assert.ErrorIs(t, err, ErrNullNotAllowed)
	_, err = s.RemoveAll(nil)
	assert.ErrorIs(t, err, ErrNullNotAllowed)

	var nilList *List[int]
	_, err = s.AddAll(nilList)
	assert.ErrorIs(t, err, ErrNullNotAllowed)

	assert.Equal(t, 3, s.Size(), "rejected calls leave the set alone")
}

func TestBulkNilElementsFailDirty(t *testing.T) {
	one, two, three := 1, 2, 3

	s := NewDefault[*int]()
	modified, err := s.AddAll(ListOf(&one, nil, &two))
	assert.ErrorIs(t, err, ErrNullNotAllowed, "Nulls are not permitted")
	assert.True(t, modified)
	assert.True(t, s.Contains(&one), "elements before the nil stay added")
	assert.False(t, s.Contains(&two))
	assert.Equal(t, 1, s.Size())

	_, err = s.AddAll(ListOf(&two, &three))
	require.NoError(t, err)

	modified, err = s.RemoveAll(ListOf(&two, nil, &three))
	assert.ErrorIs(t, err, ErrNullNotAllowed, "Nulls are not permitted")
	assert.True(t, modified)
	assert.False(t, s.Contains(&two), "elements before the nil stay removed")
	assert.True(t, s.Contains(&three))

	_, err = s.ContainsAll(ListOf(&one, nil, &three))
	assert.ErrorIs(t, err, ErrNullNotAllowed)
}
