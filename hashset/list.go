package hashset

import "fmt"

// ListNode is a node of a List.
type ListNode[T any] struct {
	Prev  *ListNode[T]
	Next  *ListNode[T]
	Value T
}

// List is a doubly linked list usable as a Collection. Unlike a set it keeps
// duplicates and insertion order, which makes it a convenient source for the
// bulk operations of HashSet.
type List[T any] struct {
	Head   *ListNode[T]
	Tail   *ListNode[T]
	Length int

	equal func(a, b T) bool
}

// NewList returns an empty list comparing elements with DefaultHasher.
func NewList[T any]() *List[T] {
	return NewListWithHasher[T](DefaultHasher[T]())
}

// NewListWithHasher returns an empty list comparing elements with h.
func NewListWithHasher[T any](h Hasher[T]) *List[T] {
	return &List[T]{equal: h.Equal}
}

// ListOf returns a list holding values in order.
func ListOf[T any](values ...T) *List[T] {
	l := NewList[T]()
	for _, v := range values {
		l.AddNodeTail(v)
	}
	return l
}

// Empty the list
func (l *List[T]) Empty() {
	l.Head, l.Tail = nil, nil
	l.Length = 0
}

func (l *List[T]) AddNodeHead(value T) {
	node := &ListNode[T]{Value: value}
	if l.Head == nil {
		l.Head, l.Tail = node, node
	} else {
		node.Next, l.Head.Prev, l.Head = l.Head, node, node
	}
	l.Length++
}

func (l *List[T]) AddNodeTail(value T) {
	node := &ListNode[T]{Value: value}
	if l.Tail == nil {
		l.Head, l.Tail = node, node
	} else {
		node.Prev, l.Tail.Next, l.Tail = l.Tail, node, node
	}
	l.Length++
}

// InsertNode inserts value after or before oldNode.
func (l *List[T]) InsertNode(oldNode *ListNode[T], value T, after bool) error {
	if oldNode == nil {
		return fmt.Errorf("%w: insert position is nil", ErrNullNotAllowed)
	}
	if after {
		if oldNode.Next == nil {
			l.AddNodeTail(value)
			return nil
		}
		node := &ListNode[T]{Value: value, Prev: oldNode, Next: oldNode.Next}
		oldNode.Next.Prev = node
		oldNode.Next = node
	} else {
		if oldNode.Prev == nil {
			l.AddNodeHead(value)
			return nil
		}
		node := &ListNode[T]{Value: value, Prev: oldNode.Prev, Next: oldNode}
		oldNode.Prev.Next = node
		oldNode.Prev = node
	}
	l.Length++
	return nil
}

// RemoveNode unlinks node from the list.
func (l *List[T]) RemoveNode(node *ListNode[T]) error {
	if node == nil {
		return fmt.Errorf("%w: node is nil", ErrNullNotAllowed)
	}
	if node.Prev != nil {
		node.Prev.Next = node.Next
	} else {
		l.Head = node.Next
	}
	if node.Next != nil {
		node.Next.Prev = node.Prev
	} else {
		l.Tail = node.Prev
	}
	node.Next, node.Prev = nil, nil
	l.Length--
	return nil
}

// Len ...
func (l *List[T]) Len() int {
	return l.Length
}

// Size is Len, for the Collection interface.
func (l *List[T]) Size() int {
	return l.Length
}

// Contains does a linear scan for an element equal to v.
func (l *List[T]) Contains(v T) bool {
	equal := l.equal
	if equal == nil {
		equal = DefaultHasher[T]().Equal
	}
	for curr := l.Head; curr != nil; curr = curr.Next {
		if equal(curr.Value, v) {
			return true
		}
	}
	return false
}

// Values returns the elements from head to tail.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.Length)
	for curr := l.Head; curr != nil; curr = curr.Next {
		out = append(out, curr.Value)
	}
	return out
}
