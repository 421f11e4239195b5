package ticket

import (
	"context"

	domain "github.com/corycamp/support-ticket-backend/internal/domain/ticket"
	vo "github.com/corycamp/support-ticket-backend/internal/domain/ticket/valueobjects"
	"github.com/corycamp/support-ticket-backend/internal/shared/errors"
	"github.com/corycamp/support-ticket-backend/internal/shared/utils"
)

type CreateTicketCommand struct {
	Title       string `json:"title" validate:"required,notblank,max=200"`
	Description string `json:"description" validate:"max=5000"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
	Status      string `json:"status" validate:"omitempty,oneof=open in_progress closed"`
}

// Create validates cmd, stores a new ticket and notifies the configured
// notifier. A notification failure does not fail the call.
func (s *Service) Create(ctx context.Context, cmd CreateTicketCommand) (*domain.Ticket, error) {
	s.logger.Infow("executing create ticket use case", "title", cmd.Title)

	if err := utils.ValidateStruct(cmd); err != nil {
		s.logger.Warnw("invalid create ticket command", "error", err)
		return nil, err
	}

	t, err := domain.NewTicket(cmd.Title, cmd.Description, vo.Priority(cmd.Priority), vo.TicketStatus(cmd.Status))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	saved, err := s.store.Save(ctx, t)
	if err != nil {
		s.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.TicketCreated(ctx, saved); err != nil {
			s.logger.Warnw("failed to send ticket notification", "ticket_id", saved.ID, "error", err)
		}
	}

	s.logger.Infow("ticket created successfully", "ticket_id", saved.ID)
	return saved, nil
}
