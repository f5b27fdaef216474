package domain

import (
	"sort"
	"time"
)

// ServiceTicket is an incoming service order waiting to be scheduled.
type ServiceTicket struct {
	ID            string
	Title         string
	ContactPerson string
	Location      string
	Phone         string
	Email         string
	Priority      Priority
	CreatedAt     time.Time
	Description   string
}

// SortTickets orders tickets by priority (urgent first), newest first within
// the same priority. The sort is stable so equal tickets keep input order.
func SortTickets(tickets []ServiceTicket) {
	sort.SliceStable(tickets, func(i, j int) bool {
		ri, rj := tickets[i].Priority.Rank(), tickets[j].Priority.Rank()
		if ri != rj {
			return ri < rj
		}
		return tickets[i].CreatedAt.After(tickets[j].CreatedAt)
	})
}
