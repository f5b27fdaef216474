package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/wartung/internal/domain"
)

// FormatTickets renders the ticket panel. Tickets are expected in panel order.
func FormatTickets(tickets []domain.ServiceTicket, now time.Time) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Servicetickets (%d)", len(tickets))))
	b.WriteString("\n\n")

	if len(tickets) == 0 {
		b.WriteString(Dim("Keine offenen Tickets."))
		b.WriteString("\n")
		return b.String()
	}

	rows := make([][]string, 0, len(tickets))
	for _, t := range tickets {
		rows = append(rows, []string{
			TruncID(t.ID),
			PriorityPill(t.Priority),
			Bold(t.Title),
			t.ContactPerson,
			OrDash(t.Location),
			Dim(RelativeDateFrom(t.CreatedAt, now)),
		})
	}
	b.WriteString(RenderTable([]string{"ID", "Priorität", "Titel", "Kontakt", "Ort", "Erstellt"}, rows))
	return b.String()
}
