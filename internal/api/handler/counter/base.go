package counter

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"themepark/ticketing/internal/constant"
	"themepark/ticketing/internal/domain"
)

type CounterHandler struct {
	ticketingService ticketingService
	paymentHistory   paymentHistory
}

type ticketingService interface {
	Register(ctx context.Context, name string, tickets int) (domain.Customer, error)
	ProcessPayments(ctx context.Context, responder domain.PaymentResponder) (domain.CycleResult, error)
	NextReceipts(ctx context.Context) (domain.ReceiptBatch, error)
	PeekReceipts(counter domain.Counter) (domain.ReceiptBatch, error)
	Snapshot() domain.Snapshot
	FindCustomer(id int) (domain.Customer, error)
}

type paymentHistory interface {
	ListPayments(ctx context.Context, limit, offset int) ([]domain.PaymentEvent, int64, error)
}

// New builds the handler. A nil history turns the history endpoint into 503.
func New(ticketingService ticketingService, paymentHistory paymentHistory) *CounterHandler {
	return &CounterHandler{
		ticketingService: ticketingService,
		paymentHistory:   paymentHistory,
	}
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, constant.ErrNothingToShow),
		errors.Is(err, constant.ErrCustomerNotFound):
		return http.StatusNotFound
	case errors.Is(err, constant.ErrCounterNotFound),
		errors.Is(err, constant.ErrInvalidTickets),
		errors.Is(err, constant.ErrInvalidName):
		return http.StatusBadRequest
	case errors.Is(err, constant.ErrDatabaseDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
