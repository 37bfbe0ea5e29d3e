package ticketing

import (
	"context"
	"io"
	"strconv"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"themepark/ticketing/internal/domain"
)

type responderFunc func(ctx context.Context, req domain.PaymentRequest) (domain.Tender, error)

func (f responderFunc) Confirm(ctx context.Context, req domain.PaymentRequest) (domain.Tender, error) {
	return f(ctx, req)
}

func exactResponder() responderFunc {
	return func(_ context.Context, req domain.PaymentRequest) (domain.Tender, error) {
		return domain.Tender{Amount: strconv.Itoa(req.Required)}, nil
	}
}

// byName answers from tenders keyed by customer name and pays exactly otherwise.
func byName(tenders map[string]domain.Tender) responderFunc {
	return func(ctx context.Context, req domain.PaymentRequest) (domain.Tender, error) {
		if tender, ok := tenders[req.Customer.Name]; ok {
			return tender, nil
		}
		return exactResponder()(ctx, req)
	}
}

type recorderStub struct {
	events []domain.PaymentEvent
}

func (r *recorderStub) Submit(event domain.PaymentEvent) {
	r.events = append(r.events, event)
}

func newTestService(t *testing.T, opts Options) (*ticketingService, *recorderStub) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	recorder := &recorderStub{}
	return NewTicketingService(logger, recorder, opts), recorder
}

func register(t *testing.T, ts *ticketingService, name string, tickets int) domain.Customer {
	t.Helper()
	customer, err := ts.Register(context.Background(), name, tickets)
	require.NoError(t, err)
	return customer
}

func ids(customers []domain.Customer) []int {
	out := make([]int, 0, len(customers))
	for _, c := range customers {
		out = append(out, c.ID)
	}
	return out
}

func names(customers []domain.Customer) []string {
	out := make([]string, 0, len(customers))
	for _, c := range customers {
		out = append(out, c.Name)
	}
	return out
}

// requireSingleMembership checks every registered id sits in exactly one container.
func requireSingleMembership(t *testing.T, ts *ticketingService) {
	t.Helper()
	snapshot := ts.Snapshot()
	seen := make(map[int]int)
	for _, counter := range domain.Counters {
		for _, c := range snapshot.Queues[counter] {
			require.False(t, c.Paid, "customer %d is queued but paid", c.ID)
			require.Equal(t, counter, c.Counter, "customer %d is queued at the wrong counter", c.ID)
			seen[c.ID]++
		}
	}
	for _, c := range snapshot.Completed {
		require.True(t, c.Paid, "customer %d is completed but unpaid", c.ID)
		seen[c.ID]++
	}
	for _, c := range snapshot.Dismissed {
		seen[c.ID]++
	}
	for id := 1; id < snapshot.NextID; id++ {
		require.Equal(t, 1, seen[id], "customer %d membership", id)
	}
}
