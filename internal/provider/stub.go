package provider

import (
	"context"
	"strconv"
	"strings"

	"themepark/ticketing/internal/domain"
)

const cancelWord = "cancel"

func (s *ScriptedResponder) Confirm(ctx context.Context, req domain.PaymentRequest) (domain.Tender, error) {
	if err := ctx.Err(); err != nil {
		return domain.Tender{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tenders := s.script[req.Customer.ID]
	if len(tenders) == 0 {
		if s.fallback == FallbackExact {
			return domain.Tender{Amount: strconv.Itoa(req.Required)}, nil
		}
		return domain.Tender{Cancelled: true}, nil
	}

	next := tenders[0]
	s.script[req.Customer.ID] = tenders[1:]
	if strings.EqualFold(strings.TrimSpace(next), cancelWord) {
		return domain.Tender{Cancelled: true}, nil
	}
	return domain.Tender{Amount: next}, nil
}

func (ExactResponder) Confirm(ctx context.Context, req domain.PaymentRequest) (domain.Tender, error) {
	if err := ctx.Err(); err != nil {
		return domain.Tender{}, err
	}
	return domain.Tender{Amount: strconv.Itoa(req.Required)}, nil
}
