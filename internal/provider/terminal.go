package provider

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"themepark/ticketing/internal/domain"
)

func (t *TerminalResponder) Confirm(ctx context.Context, req domain.PaymentRequest) (domain.Tender, error) {
	if err := ctx.Err(); err != nil {
		return domain.Tender{}, err
	}

	fmt.Fprintf(t.out, "Customer ID: %d (%s, %s)\nTotal Payment: %d\nAmount tendered (blank to cancel): ",
		req.Customer.ID, req.Customer.Name, req.Customer.Counter, req.Required)

	line, err := t.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return domain.Tender{}, errors.Wrap(err, "failed to read payment")
	}

	line = strings.TrimSpace(line)
	switch strings.ToLower(line) {
	case "", "c", cancelWord:
		return domain.Tender{Cancelled: true}, nil
	}
	return domain.Tender{Amount: line}, nil
}
