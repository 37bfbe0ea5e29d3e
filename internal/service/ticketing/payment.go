package ticketing

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"themepark/ticketing/internal/constant"
	"themepark/ticketing/internal/domain"
)

// ProcessPayments runs one payment cycle. Starting at the payment cursor it
// serves up to CounterBatch leading customers of a counter, then moves on to the
// next counter, until PaymentQuota attempts were made or every queue is empty.
// Customers that do not pay go back to the tail of their own queue. A pass never
// serves more customers than the counter held when the pass began, so a customer
// who declines is asked again on the next visit to that counter, not within the
// same pass.
func (ts *ticketingService) ProcessPayments(ctx context.Context, responder domain.PaymentResponder) (domain.CycleResult, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	result := domain.CycleResult{
		CycleID:      uuid.NewString(),
		Attempts:     make([]domain.PaymentAttempt, 0, ts.opts.PaymentQuota),
		StartCounter: ts.payments.Current(),
	}
	logger := ts.logger.WithContext(ctx).WithField("cycle_id", result.CycleID)

	processed := 0
	for processed < ts.opts.PaymentQuota && !ts.queues.AllEmpty() {
		counter := ts.payments.Current()

		// bounded by the length at pass start so a requeued customer is not asked twice
		pass := min(ts.opts.CounterBatch, ts.queues.Len(counter))
		for i := 0; i < pass && processed < ts.opts.PaymentQuota; i++ {
			if err := ctx.Err(); err != nil {
				result.NextCounter = counter
				return result, errors.Wrap(err, "payment cycle interrupted")
			}

			customer, err := ts.queues.Dequeue(counter)
			if err != nil {
				result.NextCounter = counter
				return result, errors.Wrapf(err, "payment cycle: counter %d", int(counter))
			}

			attempt, err := ts.settle(ctx, result.CycleID, customer, responder)
			if err != nil {
				result.NextCounter = counter
				return result, errors.Wrapf(err, "payment cycle: customer %d", customer.ID)
			}

			processed++
			result.Attempts = append(result.Attempts, attempt)
			if attempt.Status == domain.PaymentPaid {
				result.Paid++
			}
		}

		ts.payments.Advance()
	}

	result.NextCounter = ts.payments.Current()
	logger.WithFields(logrus.Fields{
		"attempts":  len(result.Attempts),
		"paid":      result.Paid,
		"next":      int(result.NextCounter),
		"queued":    ts.queues.Total(),
		"completed": ts.completed.Len(),
	}).Info("payment cycle finished")

	return result, nil
}

// settle asks the responder for one customer. On any outcome other than a valid
// sufficient payment the customer is back on its queue before settle returns.
func (ts *ticketingService) settle(
	ctx context.Context,
	cycleID string,
	customer *domain.Customer,
	responder domain.PaymentResponder,
) (domain.PaymentAttempt, error) {
	required := customer.Total(ts.opts.TicketPrice)
	attempt := domain.PaymentAttempt{
		CycleID:  cycleID,
		Required: required,
	}
	logger := ts.logger.WithContext(ctx).WithFields(logrus.Fields{
		"cycle_id":    cycleID,
		"customer_id": customer.ID,
		"required":    required,
	})

	tender, err := responder.Confirm(ctx, domain.PaymentRequest{Customer: *customer, Required: required})
	if err != nil {
		ts.requeue(logger, customer)
		attempt.Customer = *customer
		return attempt, errors.Wrap(err, "payment confirmation failed")
	}

	attempt.Tendered = tender.Amount
	if tender.Cancelled {
		attempt.Status = domain.PaymentCancelled
		ts.requeue(logger, customer)
		attempt.Customer = *customer
		return attempt, nil
	}

	amount, err := checkTender(tender.Amount, required)
	switch {
	case errors.Is(err, constant.ErrInvalidPayment):
		attempt.Status = domain.PaymentInvalid
	case errors.Is(err, constant.ErrInsufficientPayment):
		attempt.Status = domain.PaymentInsufficient
	default:
		attempt.Status = domain.PaymentPaid
	}
	if err != nil {
		logger.WithField("tendered", tender.Amount).Warn(err)
	}

	if attempt.Status != domain.PaymentPaid {
		ts.requeue(logger, customer)
		attempt.Customer = *customer
		return attempt, nil
	}

	paidAt := ts.now().UTC()
	customer.MarkPaid(paidAt)
	ts.completed.Push(customer)

	attempt.Change = amount - required
	attempt.Customer = *customer

	ts.recorder.Submit(domain.PaymentEvent{
		CycleID:    cycleID,
		CustomerID: customer.ID,
		Name:       customer.Name,
		Tickets:    customer.Tickets,
		Counter:    customer.Counter,
		Required:   required,
		Tendered:   amount,
		Change:     attempt.Change,
		PaidAt:     paidAt,
	})
	logger.Info("payment accepted")

	return attempt, nil
}

func (ts *ticketingService) requeue(logger *logrus.Entry, customer *domain.Customer) {
	if err := ts.queues.Enqueue(customer.Counter, customer); err != nil {
		logger.Error(errors.Wrap(err, "failed to requeue customer"))
	}
}

// checkTender parses the operator's entry and compares it with the amount due.
func checkTender(raw string, required int) (int, error) {
	amount, err := parseAmount(raw)
	if err != nil {
		return 0, err
	}
	if amount < required {
		return amount, errors.Wrapf(constant.ErrInsufficientPayment, "%d of %d", amount, required)
	}
	return amount, nil
}

func parseAmount(raw string) (int, error) {
	amount, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.Wrap(constant.ErrInvalidPayment, err.Error())
	}
	if amount < 0 {
		return 0, constant.ErrInvalidPayment
	}
	return amount, nil
}
