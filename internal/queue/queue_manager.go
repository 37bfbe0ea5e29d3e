package queue

import (
	"github.com/pkg/errors"

	"themepark/ticketing/internal/constant"
	"themepark/ticketing/internal/domain"
)

func (qm *QueueManager) queue(counter domain.Counter) (domain.CustomerQueue, error) {
	q, ok := qm.queues[counter]
	if !ok {
		return nil, errors.Wrapf(constant.ErrCounterNotFound, "counter %d", int(counter))
	}
	return q, nil
}

func (qm *QueueManager) Enqueue(counter domain.Counter, customer *domain.Customer) error {
	q, err := qm.queue(counter)
	if err != nil {
		return err
	}
	return q.Enqueue(customer)
}

func (qm *QueueManager) Dequeue(counter domain.Counter) (*domain.Customer, error) {
	q, err := qm.queue(counter)
	if err != nil {
		return nil, err
	}
	return q.Dequeue()
}

func (qm *QueueManager) Peek(counter domain.Counter, n int) ([]domain.Customer, error) {
	q, err := qm.queue(counter)
	if err != nil {
		return nil, err
	}
	return q.Peek(n), nil
}

func (qm *QueueManager) Len(counter domain.Counter) int {
	q, ok := qm.queues[counter]
	if !ok {
		return 0
	}
	return q.Len()
}

func (qm *QueueManager) Total() int {
	total := 0
	for _, q := range qm.queues {
		total += q.Len()
	}
	return total
}

func (qm *QueueManager) AllEmpty() bool {
	for _, q := range qm.queues {
		if !q.IsEmpty() {
			return false
		}
	}
	return true
}
