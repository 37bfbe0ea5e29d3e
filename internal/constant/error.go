package constant

import "github.com/pkg/errors"

const (
	InsufficientPaymentErrMsg = "insufficient payment"
	InvalidPaymentErrMsg      = "invalid payment amount"
)

var (
	ErrQueueEmpty          = errors.New("queue is empty")
	ErrCounterNotFound     = errors.New("counter not found")
	ErrNothingToShow       = errors.New("no customers to show receipts for")
	ErrInvalidTickets      = errors.New("ticket count must be a positive integer")
	ErrInvalidName         = errors.New("customer name is empty")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrDatabaseDisabled    = errors.New("database is not configured")
	ErrInsufficientPayment = errors.New(InsufficientPaymentErrMsg)
	ErrInvalidPayment      = errors.New(InvalidPaymentErrMsg)
)
