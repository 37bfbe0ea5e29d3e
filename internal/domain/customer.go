package domain

import (
	"fmt"
	"time"
)

// Counter is a service station. 1 and 2 serve regular orders, 3 serves bulk orders.
type Counter int

const (
	CounterOne   Counter = 1
	CounterTwo   Counter = 2
	CounterThree Counter = 3
)

var Counters = []Counter{CounterOne, CounterTwo, CounterThree}

func (c Counter) Valid() bool {
	return c >= CounterOne && c <= CounterThree
}

func (c Counter) String() string {
	return fmt.Sprintf("Counter %d", int(c))
}

type Customer struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Tickets      int        `json:"tickets"`
	Counter      Counter    `json:"counter"`
	Paid         bool       `json:"paid"`
	RegisteredAt time.Time  `json:"registered_at"`
	PaidAt       *time.Time `json:"paid_at,omitempty"`
}

// MarkPaid flips the paid flag. It reports false when the customer was already paid.
func (c *Customer) MarkPaid(at time.Time) bool {
	if c.Paid {
		return false
	}
	c.Paid = true
	c.PaidAt = &at
	return true
}

func (c Customer) Total(price int) int {
	return c.Tickets * price
}
