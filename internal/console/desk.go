package console

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"themepark/ticketing/internal/constant"
	"themepark/ticketing/internal/domain"
)

const helpText = `commands:
  add <name> <tickets>   register a customer
  pay                    run a payment cycle
  receipt                show the next counter's receipts
  peek <counter>         show a counter's receipts without rotating
  list                   show every queue
  history                show paid customers, latest first
  help                   show this text
  quit                   leave the desk`

// Run reads commands until quit, end of input or context cancellation.
func (d *Desk) Run(ctx context.Context) error {
	fmt.Fprintln(d.out, d.styles.title.Render("Theme Park Ticket Counter"))
	fmt.Fprintln(d.out, d.styles.faint.Render(helpText))

	for {
		if ctx.Err() != nil {
			return nil
		}

		fmt.Fprint(d.out, d.styles.prompt.Render("desk> "))
		line, err := d.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return errors.Wrap(err, "failed to read command")
		}

		if quit := d.execute(ctx, strings.TrimSpace(line)); quit {
			return nil
		}
		if err != nil {
			fmt.Fprintln(d.out)
			return nil
		}
	}
}

func (d *Desk) execute(ctx context.Context, line string) bool {
	command, rest, _ := strings.Cut(line, " ")

	switch strings.ToLower(command) {
	case "":
	case "add":
		d.add(ctx, rest)
	case "pay":
		d.pay(ctx)
	case "receipt":
		d.receipt(ctx)
	case "peek":
		d.peek(rest)
	case "list":
		fmt.Fprintln(d.out, d.renderQueues(d.service.Snapshot()))
	case "history":
		fmt.Fprintln(d.out, d.renderHistory(d.service.Snapshot().Completed))
	case "help", "?":
		fmt.Fprintln(d.out, helpText)
	case "quit", "exit":
		return true
	default:
		d.fail(errors.Errorf("unknown command %q, type help", command))
	}

	return false
}

func (d *Desk) add(ctx context.Context, args string) {
	fields := strings.Fields(args)
	if len(fields) < 2 {
		d.fail(errors.New("usage: add <name> <tickets>"))
		return
	}

	tickets, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil || tickets < 1 {
		d.fail(constant.ErrInvalidTickets)
		return
	}
	name := strings.Join(fields[:len(fields)-1], " ")

	customer, err := d.service.Register(ctx, name, tickets)
	if err != nil {
		d.fail(err)
		return
	}

	fmt.Fprintln(d.out, d.styles.ok.Render(fmt.Sprintf(
		"Customer %d (%s) queued at %s", customer.ID, customer.Name, customer.Counter)))
}

func (d *Desk) pay(ctx context.Context) {
	result, err := d.service.ProcessPayments(ctx, d.responder)
	fmt.Fprintln(d.out, d.renderCycle(result))
	if err != nil {
		d.fail(err)
	}
}

func (d *Desk) receipt(ctx context.Context) {
	batch, err := d.service.NextReceipts(ctx)
	if errors.Is(err, constant.ErrNothingToShow) {
		fmt.Fprintln(d.out, d.styles.warn.Render(fmt.Sprintf("No customers to show receipts for at %s", batch.Counter)))
		return
	}
	if err != nil {
		d.fail(err)
		return
	}

	fmt.Fprintln(d.out, d.renderReceipts(batch))
}

func (d *Desk) peek(args string) {
	n, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil || !domain.Counter(n).Valid() {
		d.fail(errors.Wrapf(constant.ErrCounterNotFound, "peek %q", strings.TrimSpace(args)))
		return
	}

	batch, err := d.service.PeekReceipts(domain.Counter(n))
	if err != nil {
		d.fail(err)
		return
	}

	fmt.Fprintln(d.out, d.renderReceipts(batch))
}

func (d *Desk) fail(err error) {
	d.logger.WithError(err).Debug("desk command failed")
	fmt.Fprintln(d.out, d.styles.err.Render("error: "+err.Error()))
}
