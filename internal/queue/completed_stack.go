package queue

import "themepark/ticketing/internal/domain"

// CompletedStack holds paid customers, most recently paid on top. It is push-only.
type CompletedStack struct {
	items []*domain.Customer
}

func NewCompletedStack() *CompletedStack {
	return &CompletedStack{items: make([]*domain.Customer, 0)}
}

func (s *CompletedStack) Push(customer *domain.Customer) {
	s.items = append(s.items, customer)
}

func (s *CompletedStack) Len() int {
	return len(s.items)
}


// Items copies the stack top first.
func (s *CompletedStack) Items() []domain.Customer {
	out := make([]domain.Customer, 0, len(s.items))
	for i := len(s.items) - 1; i >= 0; i-- {
		out = append(out, *s.items[i])
	}
	return out
}
