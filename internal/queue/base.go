package queue

import (
	"sync"

	"themepark/ticketing/internal/domain"
)

type customerQueue struct {
	mu        sync.Mutex
	customers []*domain.Customer
	counter   domain.Counter
}

func NewCustomerQueue(counter domain.Counter) domain.CustomerQueue {
	return &customerQueue{
		customers: make([]*domain.Customer, 0),
		counter:   counter,
	}
}

// QueueManager owns one FIFO queue per counter.
type QueueManager struct {
	queues map[domain.Counter]domain.CustomerQueue
}

func NewQueueManager() *QueueManager {
	queues := make(map[domain.Counter]domain.CustomerQueue, len(domain.Counters))
	for _, counter := range domain.Counters {
		queues[counter] = NewCustomerQueue(counter)
	}

	return &QueueManager{
		queues: queues,
	}
}
