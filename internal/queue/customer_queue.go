package queue

import (
	"themepark/ticketing/internal/constant"
	"themepark/ticketing/internal/domain"
)

func (q *customerQueue) Enqueue(customer *domain.Customer) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.customers = append(q.customers, customer)
	return nil
}

func (q *customerQueue) Dequeue() (*domain.Customer, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.customers) == 0 {
		return nil, constant.ErrQueueEmpty
	}
	customer := q.customers[0]
	q.customers[0] = nil
	q.customers = q.customers[1:]
	return customer, nil
}

// Peek copies up to n leading customers without removing them. n <= 0 copies all of them.
func (q *customerQueue) Peek(n int) []domain.Customer {
	q.mu.Lock()
	defer q.mu.Unlock()
	if n <= 0 || n > len(q.customers) {
		n = len(q.customers)
	}
	out := make([]domain.Customer, 0, n)
	for _, customer := range q.customers[:n] {
		out = append(out, *customer)
	}
	return out
}

func (q *customerQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.customers)
}

func (q *customerQueue) IsEmpty() bool {
	return q.Len() == 0
}
