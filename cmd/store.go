package cmd

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"go.uber.org/zap"

	"github.com/fzft/go-hashset/hashset"
)

var (
	ErrNoSuchSet = errors.New("no such set")
	ErrSetExists = errors.New("set already exists")
)

// StringSet is the set type held by the shell.
type StringSet = hashset.HashSet[string]

// Store keeps the named sets of a shell session, ordered by name.
type Store struct {
	sets            *treemap.Map
	defaultCapacity int
	logger          *zap.Logger
}

func NewStore(defaultCapacity int, logger *zap.Logger) *Store {
	return &Store{
		sets:            treemap.NewWithStringComparator(),
		defaultCapacity: defaultCapacity,
		logger:          logger,
	}
}

func (st *Store) newSet(capacity int) (*StringSet, error) {
	return hashset.New(capacity,
		hashset.WithHasher(hashset.ComparableHasher[string]()),
		hashset.WithLogger[string](st.logger),
	)
}

// Create adds an empty set. A capacity of 0 selects the store default.
func (st *Store) Create(name string, capacity int) (*StringSet, error) {
	if _, found := st.sets.Get(name); found {
		return nil, fmt.Errorf("%w: %s", ErrSetExists, name)
	}
	if capacity == 0 {
		capacity = st.defaultCapacity
	}
	s, err := st.newSet(capacity)
	if err != nil {
		return nil, err
	}
	st.sets.Put(name, s)
	return s, nil
}

// Put stores s under name, replacing any set already there.
func (st *Store) Put(name string, s *StringSet) {
	st.sets.Put(name, s)
}

func (st *Store) Get(name string) (*StringSet, error) {
	v, found := st.sets.Get(name)
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchSet, name)
	}
	return v.(*StringSet), nil
}

// GetOrCreate returns the named set, creating it with the default capacity.
func (st *Store) GetOrCreate(name string) (*StringSet, error) {
	if s, err := st.Get(name); err == nil {
		return s, nil
	}
	return st.Create(name, 0)
}

func (st *Store) Drop(name string) error {
	if _, found := st.sets.Get(name); !found {
		return fmt.Errorf("%w: %s", ErrNoSuchSet, name)
	}
	st.sets.Remove(name)
	return nil
}

// Names returns the set names in ascending order.
func (st *Store) Names() []string {
	keys := st.sets.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}

// copyOf returns a new set with the store default capacity holding the
// elements of src.
func (st *Store) copyOf(src *StringSet) (*StringSet, error) {
	dst, err := st.newSet(st.defaultCapacity)
	if err != nil {
		return nil, err
	}
	if _, err := dst.AddAll(src); err != nil {
		return nil, err
	}
	return dst, nil
}
