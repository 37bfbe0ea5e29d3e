package console

import (
	"bufio"
	"context"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"themepark/ticketing/internal/domain"
	"themepark/ticketing/internal/provider"
	"themepark/ticketing/internal/service/ticketing"
)

type ticketingService interface {
	Register(ctx context.Context, name string, tickets int) (domain.Customer, error)
	ProcessPayments(ctx context.Context, responder domain.PaymentResponder) (domain.CycleResult, error)
	NextReceipts(ctx context.Context) (domain.ReceiptBatch, error)
	PeekReceipts(counter domain.Counter) (domain.ReceiptBatch, error)
	Snapshot() domain.Snapshot
	Options() ticketing.Options
}

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	faint   lipgloss.Style
	ok      lipgloss.Style
	warn    lipgloss.Style
	err     lipgloss.Style
	panel   lipgloss.Style
	prompt  lipgloss.Style
	columns []lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	cell := func(width int) lipgloss.Style {
		return r.NewStyle().Width(width).PaddingRight(1)
	}

	return styles{
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		faint:  r.NewStyle().Foreground(lipgloss.Color("245")),
		ok:     r.NewStyle().Foreground(lipgloss.Color("42")),
		warn:   r.NewStyle().Foreground(lipgloss.Color("214")),
		err:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		panel: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1),
		prompt: r.NewStyle().Bold(true),
		// id, name, tickets, total
		columns: []lipgloss.Style{cell(5), cell(16), cell(8), cell(7)},
	}
}

// Desk is the operator console. Commands and payment tenders are read from the
// same input so a scripted session replays exactly.
type Desk struct {
	service   ticketingService
	in        *bufio.Reader
	out       io.Writer
	responder domain.PaymentResponder
	styles    styles
	logger    *logrus.Logger
}

func NewDesk(service ticketingService, in io.Reader, out io.Writer, logger *logrus.Logger) *Desk {
	reader := bufio.NewReader(in)

	return &Desk{
		service:   service,
		in:        reader,
		out:       out,
		responder: provider.NewTerminalResponder(reader, out),
		styles:    newStyles(lipgloss.NewRenderer(out)),
		logger:    logger,
	}
}
