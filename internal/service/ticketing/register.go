package ticketing

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"themepark/ticketing/internal/constant"
	"themepark/ticketing/internal/domain"
	"themepark/ticketing/internal/seed"
)

// AssignCounter picks the counter for an order of the given size. Bulk orders
// always go to counter 3 and leave the 1/2 alternation alone.
func (ts *ticketingService) AssignCounter(tickets int) domain.Counter {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.assignCounter(tickets)
}

func (ts *ticketingService) assignCounter(tickets int) domain.Counter {
	if tickets > ts.opts.BulkThreshold {
		return domain.CounterThree
	}
	return ts.assign.Next()
}

func (ts *ticketingService) Register(ctx context.Context, name string, tickets int) (domain.Customer, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.register(ctx, name, tickets)
}

func validateEntry(name string, tickets int) error {
	if strings.TrimSpace(name) == "" {
		return constant.ErrInvalidName
	}
	if tickets < 1 {
		return errors.Wrapf(constant.ErrInvalidTickets, "got %d", tickets)
	}
	return nil
}

func (ts *ticketingService) register(ctx context.Context, name string, tickets int) (domain.Customer, error) {
	if err := validateEntry(name, tickets); err != nil {
		return domain.Customer{}, err
	}

	customer := &domain.Customer{
		ID:           ts.ids.Next(),
		Name:         strings.TrimSpace(name),
		Tickets:      tickets,
		Counter:      ts.assignCounter(tickets),
		RegisteredAt: ts.now().UTC(),
	}

	if err := ts.queues.Enqueue(customer.Counter, customer); err != nil {
		return domain.Customer{}, errors.Wrap(err, "failed to enqueue customer")
	}

	ts.logger.WithContext(ctx).WithFields(logrus.Fields{
		"customer_id": customer.ID,
		"tickets":     customer.Tickets,
		"counter":     int(customer.Counter),
	}).Debug("customer registered")

	return *customer, nil
}

// Seed registers entries in file order. One invalid entry rejects the whole
// batch and nothing is registered.
func (ts *ticketingService) Seed(ctx context.Context, entries []seed.Entry) ([]domain.Customer, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	for i, entry := range entries {
		if err := validateEntry(entry.Name, entry.Tickets); err != nil {
			return nil, errors.Wrapf(err, "seed entry %d (%q)", i+1, entry.Name)
		}
	}

	customers := make([]domain.Customer, 0, len(entries))
	for _, entry := range entries {
		customer, err := ts.register(ctx, entry.Name, entry.Tickets)
		if err != nil {
			return customers, err
		}
		customers = append(customers, customer)
	}

	ts.logger.WithContext(ctx).Infof("seeded %d customers", len(customers))
	return customers, nil
}
