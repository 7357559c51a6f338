package hashset

import (
	"math/rand"
	"testing"

	godsset "github.com/emirpasic/gods/sets/hashset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertSameMembers(t *testing.T, model *godsset.Set, s *HashSet[int]) {
	t.Helper()
	require.Equal(t, model.Size(), s.Size())
	want := make([]int, 0, model.Size())
	for _, v := range model.Values() {
		want = append(want, v.(int))
	}
	assert.ElementsMatch(t, want, s.ToSlice())
}

// TestAgainstModel runs random operations against a map backed set and checks
// both agree after every step.
func TestAgainstModel(t *testing.T) {
	for _, capacity := range []int{1, 7, 64} {
		rng := rand.New(rand.NewSource(int64(capacity)))
		model := godsset.New()
		s := newIntSet(t, capacity)

		for step := 0; step < 2000; step++ {
			v := rng.Intn(101) - 50
			switch op := rng.Intn(10); {
			case op < 4:
				added, err := s.Add(v)
				require.NoError(t, err)
				assert.Equal(t, !model.Contains(v), added, "add %d", v)
				model.Add(v)
			case op < 7:
				removed, err := s.Remove(v)
				require.NoError(t, err)
				assert.Equal(t, model.Contains(v), removed, "remove %d", v)
				model.Remove(v)
			case op < 9:
				assert.Equal(t, model.Contains(v), s.Contains(v), "contains %d", v)
			default:
				// sweep with the cursor, dropping every element divisible by v
				div := v%7 + 8
				it := s.Iterator()
				for it.HasNext() {
					e, err := it.Next()
					require.NoError(t, err)
					if e%div == 0 {
						require.NoError(t, it.Remove())
						model.Remove(e)
					}
				}
			}
			assertSameMembers(t, model, s)
		}
	}
}

func TestAlgebraAgainstModel(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		var left, right []int
		for n := rng.Intn(30); len(left) < n; {
			left = append(left, rng.Intn(40))
		}
		for n := rng.Intn(30); len(right) < n; {
			right = append(right, rng.Intn(40))
		}
		rightList := ListOf(right...)

		union := godsset.New()
		inter := godsset.New()
		diff := godsset.New()
		rightModel := godsset.New()
		for _, v := range right {
			rightModel.Add(v)
			union.Add(v)
		}
		for _, v := range left {
			union.Add(v)
			if rightModel.Contains(v) {
				inter.Add(v)
			} else {
				diff.Add(v)
			}
		}

		a, err := NewFrom[int](ListOf(left...))
		require.NoError(t, err)
		_, err = a.AddAll(rightList)
		require.NoError(t, err)
		assertSameMembers(t, union, a)

		a, err = NewFrom[int](ListOf(left...))
		require.NoError(t, err)
		_, err = a.RetainAll(rightList)
		require.NoError(t, err)
		assertSameMembers(t, inter, a)

		a, err = NewFrom[int](ListOf(left...))
		require.NoError(t, err)
		_, err = a.RemoveAll(rightList)
		require.NoError(t, err)
		assertSameMembers(t, diff, a)
	}
}
