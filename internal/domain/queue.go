package domain

type CustomerQueue interface {
	Enqueue(customer *Customer) error
	Dequeue() (*Customer, error)
	Peek(n int) []Customer
	Len() int
	IsEmpty() bool
}

type QueueManager interface {
	Enqueue(counter Counter, customer *Customer) error
	Dequeue(counter Counter) (*Customer, error)
	Peek(counter Counter, n int) ([]Customer, error)
	Len(counter Counter) int
	Total() int
	AllEmpty() bool
}
