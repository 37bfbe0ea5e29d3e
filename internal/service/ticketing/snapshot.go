package ticketing

import (
	"github.com/pkg/errors"

	"themepark/ticketing/internal/constant"
	"themepark/ticketing/internal/domain"
)

func (ts *ticketingService) Snapshot() domain.Snapshot {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	snapshot := domain.Snapshot{
		Queues:        make(map[domain.Counter][]domain.Customer, len(domain.Counters)),
		Completed:     ts.completed.Items(),
		Dismissed:     make([]domain.Customer, 0, len(ts.dismissed)),
		NextID:        ts.ids.Peek(),
		AssignCursor:  ts.assign.Peek(),
		PaymentCursor: ts.payments.Current(),
		ReceiptCursor: ts.receipts.Current(),
	}
	for _, counter := range domain.Counters {
		customers, _ := ts.queues.Peek(counter, 0)
		snapshot.Queues[counter] = customers
	}
	for _, customer := range ts.dismissed {
		snapshot.Dismissed = append(snapshot.Dismissed, *customer)
	}

	return snapshot
}

// FindCustomer looks a customer up in the queues, the completed stack and the
// dismissed list.
func (ts *ticketingService) FindCustomer(id int) (domain.Customer, error) {
	snapshot := ts.Snapshot()

	for _, counter := range domain.Counters {
		for _, customer := range snapshot.Queues[counter] {
			if customer.ID == id {
				return customer, nil
			}
		}
	}
	for _, customer := range snapshot.Completed {
		if customer.ID == id {
			return customer, nil
		}
	}
	for _, customer := range snapshot.Dismissed {
		if customer.ID == id {
			return customer, nil
		}
	}

	return domain.Customer{}, errors.Wrapf(constant.ErrCustomerNotFound, "customer %d", id)
}
