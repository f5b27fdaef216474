package service

import (
	"context"
	"time"

	"github.com/alexanderramin/wartung/internal/domain"
	"github.com/alexanderramin/wartung/internal/repository"
)

type ticketService struct {
	tickets  repository.TicketRepo
	observer UseCaseObserver
}

func NewTicketService(tickets repository.TicketRepo, observers ...UseCaseObserver) TicketService {
	return &ticketService{tickets: tickets, observer: useCaseObserverOrNoop(observers)}
}

func (s *ticketService) List(ctx context.Context) ([]domain.ServiceTicket, error) {
	tickets, err := s.tickets.List(ctx)
	if err != nil {
		return nil, err
	}
	domain.SortTickets(tickets)
	return tickets, nil
}

// Schedule records the request and returns. Turning a ticket into a
// maintenance task is not implemented yet.
func (s *ticketService) Schedule(ctx context.Context, ticketID string) (err error) {
	defer observe(ctx, s.observer, "tickets.schedule", time.Now().UTC(), map[string]any{"ticket_id": ticketID}, &err)
	return nil
}
