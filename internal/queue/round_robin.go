package queue

import "themepark/ticketing/internal/domain"

// AssignmentCursor alternates regular orders between counter 1 and counter 2.
type AssignmentCursor struct {
	next domain.Counter
}

func NewAssignmentCursor() *AssignmentCursor {
	return &AssignmentCursor{next: domain.CounterOne}
}

// Next returns the counter for this call and flips the cursor.
func (c *AssignmentCursor) Next() domain.Counter {
	counter := c.next
	if c.next == domain.CounterOne {
		c.next = domain.CounterTwo
	} else {
		c.next = domain.CounterOne
	}
	return counter
}

func (c *AssignmentCursor) Peek() domain.Counter {
	return c.next
}

// Rotation cycles 1 -> 2 -> 3 -> 1. Payment cycles and receipt listing each own one.
type Rotation struct {
	current domain.Counter
}

func NewRotation() *Rotation {
	return &Rotation{current: domain.CounterOne}
}

func (r *Rotation) Current() domain.Counter {
	return r.current
}

func (r *Rotation) Advance() domain.Counter {
	r.current = domain.Counter(int(r.current)%len(domain.Counters) + 1)
	return r.current
}
