package ticket

import (
	"context"

	domain "github.com/corycamp/support-ticket-backend/internal/domain/ticket"
)

// Delete removes the ticket and returns its last value, or nil when it does
// not exist. Comments referencing it are left in place.
func (s *Service) Delete(ctx context.Context, id uint) (*domain.Ticket, error) {
	s.logger.Infow("executing delete ticket use case", "ticket_id", id)

	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		s.logger.Errorw("failed to delete ticket", "ticket_id", id, "error", err)
		return nil, err
	}
	if deleted != nil {
		s.logger.Infow("ticket deleted successfully", "ticket_id", id)
	}
	return deleted, nil
}
