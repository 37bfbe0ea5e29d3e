package ticketing

import (
	"context"

	"github.com/pkg/errors"

	"themepark/ticketing/internal/constant"
	"themepark/ticketing/internal/domain"
)

// NextReceipts lists the leading customers of the counter the receipt rotation
// points at and advances the rotation. An empty counter is reported with
// ErrNothingToShow and the rotation stays put.
func (ts *ticketingService) NextReceipts(ctx context.Context) (domain.ReceiptBatch, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	counter := ts.receipts.Current()
	batch := domain.ReceiptBatch{
		Counter:   counter,
		Lines:     make([]domain.ReceiptLine, 0),
		Dismissed: ts.opts.DismissReceipts,
	}
	if ts.queues.Len(counter) == 0 {
		return batch, errors.Wrapf(constant.ErrNothingToShow, "counter %d", int(counter))
	}

	if ts.opts.DismissReceipts {
		n := min(ts.opts.ReceiptBatch, ts.queues.Len(counter))
		for i := 0; i < n; i++ {
			customer, err := ts.queues.Dequeue(counter)
			if err != nil {
				return batch, errors.Wrap(err, "failed to dismiss receipt")
			}
			ts.dismissed = append(ts.dismissed, customer)
			batch.Lines = append(batch.Lines, ts.receiptLine(*customer))
		}
	} else {
		customers, err := ts.queues.Peek(counter, ts.opts.ReceiptBatch)
		if err != nil {
			return batch, err
		}
		for _, customer := range customers {
			batch.Lines = append(batch.Lines, ts.receiptLine(customer))
		}
	}

	ts.receipts.Advance()
	ts.logger.WithContext(ctx).Debugf("listed %d receipts for counter %d", len(batch.Lines), int(counter))

	return batch, nil
}

// PeekReceipts lists a counter without touching any cursor or queue.
func (ts *ticketingService) PeekReceipts(counter domain.Counter) (domain.ReceiptBatch, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	customers, err := ts.queues.Peek(counter, ts.opts.ReceiptBatch)
	if err != nil {
		return domain.ReceiptBatch{}, err
	}

	batch := domain.ReceiptBatch{
		Counter: counter,
		Lines:   make([]domain.ReceiptLine, 0, len(customers)),
	}
	for _, customer := range customers {
		batch.Lines = append(batch.Lines, ts.receiptLine(customer))
	}
	return batch, nil
}

func (ts *ticketingService) receiptLine(customer domain.Customer) domain.ReceiptLine {
	return domain.ReceiptLine{
		CustomerID: customer.ID,
		Name:       customer.Name,
		Tickets:    customer.Tickets,
		Total:      customer.Total(ts.opts.TicketPrice),
	}
}
