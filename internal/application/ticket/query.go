package ticket

import (
	"context"

	"github.com/corycamp/support-ticket-backend/internal/application/ticket/dto"
)

// Get returns the ticket with its comments, or nil when it does not exist.
func (s *Service) Get(ctx context.Context, id uint) (*dto.TicketDTO, error) {
	t, err := s.store.Get(ctx, id)
	if err != nil {
		s.logger.Errorw("failed to get ticket", "ticket_id", id, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	return s.enrich(ctx, t)
}

// List returns every ticket in id order, each with its comments.
func (s *Service) List(ctx context.Context) ([]*dto.TicketDTO, error) {
	tickets, err := s.store.List(ctx)
	if err != nil {
		s.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	result := make([]*dto.TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		enriched, err := s.enrich(ctx, t)
		if err != nil {
			return nil, err
		}
		result = append(result, enriched)
	}
	return result, nil
}
