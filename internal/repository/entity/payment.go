package entity

import (
	"time"

	"github.com/google/uuid"

	"themepark/ticketing/internal/domain"
)

type Payment struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CycleId    string    `gorm:"uniqueIndex:idx_payments_cycle_customer"`
	CustomerId int       `gorm:"uniqueIndex:idx_payments_cycle_customer"`
	Name       string
	Tickets    int
	Counter    int
	Required   int
	Tendered   int
	ChangeDue  int
	PaidAt     time.Time `gorm:"index"`
	CreatedAt  time.Time
}

func (Payment) TableName() string {
	return "payments"
}

func NewPayment(event domain.PaymentEvent) Payment {
	return Payment{
		Id:         uuid.New(),
		CycleId:    event.CycleID,
		CustomerId: event.CustomerID,
		Name:       event.Name,
		Tickets:    event.Tickets,
		Counter:    int(event.Counter),
		Required:   event.Required,
		Tendered:   event.Tendered,
		ChangeDue:  event.Change,
		PaidAt:     event.PaidAt,
	}
}

func (p Payment) ToDomain() domain.PaymentEvent {
	return domain.PaymentEvent{
		CycleID:    p.CycleId,
		CustomerID: p.CustomerId,
		Name:       p.Name,
		Tickets:    p.Tickets,
		Counter:    domain.Counter(p.Counter),
		Required:   p.Required,
		Tendered:   p.Tendered,
		Change:     p.ChangeDue,
		PaidAt:     p.PaidAt,
	}
}
