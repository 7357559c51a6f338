package hashset

// Collection is the read side of any group of elements a set can be combined
// with. Implementations may contain duplicates.
type Collection[E any] interface {
	Size() int
	Contains(e E) bool
	Values() []E
}

// Set is a Collection without duplicates that can be modified.
type Set[E any] interface {
	Collection[E]
	Add(e E) (bool, error)
	Remove(e E) (bool, error)
}

var (
	_ Set[int]        = (*HashSet[int])(nil)
	_ Collection[int] = (*List[int])(nil)
)
