package hashset

import "fmt"

type cursorState uint8

const (
	cursorFresh cursorState = iota
	cursorPositioned
	cursorPostRemoval
)

// Cursor walks every element of a HashSet, bucket by bucket, and can remove the
// element it last returned.
//
// The cursor keeps the node it is on and the node it was on before the last
// Next. Removing the current node rolls the cursor back to that previous
// position, so the following Next continues with the removed node's successor.
type Cursor[E any] struct {
	set *HashSet[E]

	current        *node[E]
	previous       *node[E]
	currentBucket  int
	previousBucket int

	state cursorState
}

func newCursor[E any](s *HashSet[E]) *Cursor[E] {
	return &Cursor[E]{
		set:            s,
		currentBucket:  -1,
		previousBucket: -1,
		state:          cursorFresh,
	}
}

// HasNext reports whether Next would return an element.
func (c *Cursor[E]) HasNext() bool {
	if c.current != nil && c.current.next != nil {
		return true
	}
	buckets := c.set.buckets
	for index := c.currentBucket + 1; index < len(buckets); index++ {
		if buckets[index] != nil {
			return true
		}
	}
	return false
}

// Next advances to the next element and returns it.
// It returns ErrNoSuchElement once every element has been visited.
func (c *Cursor[E]) Next() (E, error) {
	if c.current != nil && c.current.next != nil {
		c.previous, c.previousBucket = c.current, c.currentBucket
		c.current = c.current.next
		c.state = cursorPositioned
		return c.current.value, nil
	}

	buckets := c.set.buckets
	index := c.currentBucket + 1
	for index < len(buckets) && buckets[index] == nil {
		index++
	}
	if index >= len(buckets) {
		var zero E
		return zero, fmt.Errorf("%w: cursor is exhausted", ErrNoSuchElement)
	}

	c.previous, c.previousBucket = c.current, c.currentBucket
	c.current, c.currentBucket = buckets[index], index
	c.state = cursorPositioned
	return c.current.value, nil
}

// Remove deletes the element returned by the last call to Next.
// It returns ErrIllegalState if Next has not been called since the cursor was
// created or since the last Remove.
func (c *Cursor[E]) Remove() error {
	if c.state != cursorPositioned {
		return fmt.Errorf("%w: call Next before Remove", ErrIllegalState)
	}

	if c.previous != nil && c.previous.next == c.current {
		c.previous.next = c.current.next
	} else {
		// current was the head of its bucket
		c.set.buckets[c.currentBucket] = c.current.next
	}

	c.current, c.currentBucket = c.previous, c.previousBucket
	c.set.size--
	c.state = cursorPostRemoval
	return nil
}
