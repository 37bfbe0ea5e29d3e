package ticketing

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"themepark/ticketing/internal/constant"
	"themepark/ticketing/internal/domain"
	"themepark/ticketing/internal/queue"
)

type Options struct {
	TicketPrice     int
	BulkThreshold   int
	PaymentQuota    int
	CounterBatch    int
	ReceiptBatch    int
	DismissReceipts bool
}

func (o Options) withDefaults() Options {
	if o.TicketPrice <= 0 {
		o.TicketPrice = constant.DefaultTicketPrice
	}
	if o.BulkThreshold <= 0 {
		o.BulkThreshold = constant.DefaultBulkThreshold
	}
	if o.PaymentQuota <= 0 {
		o.PaymentQuota = constant.DefaultPaymentQuota
	}
	if o.CounterBatch <= 0 {
		o.CounterBatch = constant.DefaultCounterBatch
	}
	if o.ReceiptBatch <= 0 {
		o.ReceiptBatch = constant.DefaultReceiptBatch
	}
	return o
}

type paymentRecorder interface {
	Submit(event domain.PaymentEvent)
}

type nopRecorder struct{}

func (nopRecorder) Submit(domain.PaymentEvent) {}

// sequence hands out customer ids for one ledger.
type sequence struct {
	next int
}

func (s *sequence) Next() int {
	s.next++
	return s.next
}

func (s *sequence) Peek() int {
	return s.next + 1
}

// ticketingService is the counter ledger. All state sits behind mu so the HTTP
// adapter can share one instance between requests.
type ticketingService struct {
	mu        sync.Mutex
	queues    domain.QueueManager
	completed *queue.CompletedStack
	dismissed []*domain.Customer
	assign    *queue.AssignmentCursor
	payments  *queue.Rotation
	receipts  *queue.Rotation
	ids       sequence
	opts      Options
	recorder  paymentRecorder
	logger    *logrus.Logger
	now       func() time.Time
}

func NewTicketingService(
	logger *logrus.Logger,
	recorder paymentRecorder,
	opts Options,
) *ticketingService {
	if recorder == nil {
		recorder = nopRecorder{}
	}

	return &ticketingService{
		queues:    queue.NewQueueManager(),
		completed: queue.NewCompletedStack(),
		dismissed: make([]*domain.Customer, 0),
		assign:    queue.NewAssignmentCursor(),
		payments:  queue.NewRotation(),
		receipts:  queue.NewRotation(),
		opts:      opts.withDefaults(),
		recorder:  recorder,
		logger:    logger,
		now:       time.Now,
	}
}

func (ts *ticketingService) Options() Options {
	return ts.opts
}
