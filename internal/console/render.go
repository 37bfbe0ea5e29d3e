package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"themepark/ticketing/internal/domain"
)

func (d *Desk) row(cells ...string) string {
	rendered := make([]string, 0, len(cells))
	for i, cell := range cells {
		rendered = append(rendered, d.styles.columns[i].Render(cell))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (d *Desk) table(title string, lines []domain.ReceiptLine) string {
	var b strings.Builder
	b.WriteString(d.styles.header.Render(title))
	b.WriteString("\n")
	b.WriteString(d.styles.faint.Render(d.row("ID", "Name", "Tickets", "Total")))

	if len(lines) == 0 {
		b.WriteString("\n")
		b.WriteString(d.styles.faint.Render("(empty)"))
	}
	for _, line := range lines {
		b.WriteString("\n")
		b.WriteString(d.row(
			strconv.Itoa(line.CustomerID),
			line.Name,
			strconv.Itoa(line.Tickets),
			strconv.Itoa(line.Total),
		))
	}

	return d.styles.panel.Render(b.String())
}

func (d *Desk) lines(customers []domain.Customer) []domain.ReceiptLine {
	price := d.service.Options().TicketPrice
	lines := make([]domain.ReceiptLine, 0, len(customers))
	for _, customer := range customers {
		lines = append(lines, domain.ReceiptLine{
			CustomerID: customer.ID,
			Name:       customer.Name,
			Tickets:    customer.Tickets,
			Total:      customer.Total(price),
		})
	}
	return lines
}

func (d *Desk) renderQueues(snapshot domain.Snapshot) string {
	panels := make([]string, 0, len(domain.Counters))
	for _, counter := range domain.Counters {
		title := counter.String()
		if counter == snapshot.PaymentCursor {
			title += " *"
		}
		panels = append(panels, d.table(title, d.lines(snapshot.Queues[counter])))
	}

	footer := d.styles.faint.Render(fmt.Sprintf(
		"next id %d, next payment at counter %d, next receipt at counter %d",
		snapshot.NextID, int(snapshot.PaymentCursor), int(snapshot.ReceiptCursor)))

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, panels...),
		footer,
	)
}

func (d *Desk) renderHistory(completed []domain.Customer) string {
	return d.table("Paid", d.lines(completed))
}

func (d *Desk) renderReceipts(batch domain.ReceiptBatch) string {
	title := "Receipts " + batch.Counter.String()
	if batch.Dismissed {
		title += " (dismissed)"
	}
	return d.table(title, batch.Lines)
}

func (d *Desk) renderCycle(result domain.CycleResult) string {
	var b strings.Builder
	b.WriteString(d.styles.header.Render(fmt.Sprintf("Payment cycle from %s", result.StartCounter)))

	for _, attempt := range result.Attempts {
		style := d.styles.warn
		if attempt.Status == domain.PaymentPaid {
			style = d.styles.ok
		}
		b.WriteString("\n")
		b.WriteString(style.Render(fmt.Sprintf("%-4d %-16s %s  due %d  tendered %q  change %d  %s",
			attempt.Customer.ID,
			attempt.Customer.Name,
			attempt.Customer.Counter,
			attempt.Required,
			attempt.Tendered,
			attempt.Change,
			attempt.Status,
		)))
	}

	b.WriteString("\n")
	b.WriteString(d.styles.faint.Render(fmt.Sprintf("%d attempts, %d paid, next cycle starts at %s",
		len(result.Attempts), result.Paid, result.NextCounter)))

	return b.String()
}
