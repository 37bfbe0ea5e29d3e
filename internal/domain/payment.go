package domain

import (
	"context"
	"time"
)

type PaymentStatus string

const (
	PaymentPaid         PaymentStatus = "paid"
	PaymentInsufficient PaymentStatus = "insufficient"
	PaymentInvalid      PaymentStatus = "invalid"
	PaymentCancelled    PaymentStatus = "cancelled"
)

type PaymentRequest struct {
	Customer Customer
	Required int
}

// Tender is what the operator typed for a payment request. Amount is kept raw so
// the ledger can tell an invalid entry from an insufficient one.
type Tender struct {
	Amount    string
	Cancelled bool
}

// PaymentResponder confirms a single payment. Implementations may block on an operator.
type PaymentResponder interface {
	Confirm(ctx context.Context, req PaymentRequest) (Tender, error)
}

type PaymentAttempt struct {
	CycleID  string        `json:"cycle_id"`
	Customer Customer      `json:"customer"`
	Required int           `json:"required"`
	Tendered string        `json:"tendered,omitempty"`
	Change   int           `json:"change"`
	Status   PaymentStatus `json:"status"`
}

type CycleResult struct {
	CycleID      string           `json:"cycle_id"`
	Attempts     []PaymentAttempt `json:"attempts"`
	Paid         int              `json:"paid"`
	StartCounter Counter          `json:"start_counter"`
	NextCounter  Counter          `json:"next_counter"`
}

// PaymentEvent is a settled payment handed to history sinks.
type PaymentEvent struct {
	CycleID    string    `json:"cycle_id"`
	CustomerID int       `json:"customer_id"`
	Name       string    `json:"name"`
	Tickets    int       `json:"tickets"`
	Counter    Counter   `json:"counter"`
	Required   int       `json:"required"`
	Tendered   int       `json:"tendered"`
	Change     int       `json:"change"`
	PaidAt     time.Time `json:"paid_at"`
}
