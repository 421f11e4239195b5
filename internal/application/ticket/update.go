package ticket

import (
	"context"
	"strings"

	"github.com/corycamp/support-ticket-backend/internal/domain/shared/store"
	domain "github.com/corycamp/support-ticket-backend/internal/domain/ticket"
	vo "github.com/corycamp/support-ticket-backend/internal/domain/ticket/valueobjects"
	"github.com/corycamp/support-ticket-backend/internal/shared/utils"
)

var (
	statusTag   = "required,oneof=" + strings.Join(vo.TicketStatusValues(), " ")
	priorityTag = "required,oneof=" + strings.Join(vo.PriorityValues(), " ")
)

// UpdateTitle replaces the title. Returns nil when the ticket does not exist.
func (s *Service) UpdateTitle(ctx context.Context, id uint, title string) (*domain.Ticket, error) {
	if err := utils.ValidateVar("title", title, "required,notblank,max=200"); err != nil {
		return nil, err
	}
	return s.update(ctx, id, store.Set("title", func(t *domain.Ticket) { t.Title = title }))
}

func (s *Service) UpdateDescription(ctx context.Context, id uint, description string) (*domain.Ticket, error) {
	if err := utils.ValidateVar("description", description, "max=5000"); err != nil {
		return nil, err
	}
	return s.update(ctx, id, store.Set("description", func(t *domain.Ticket) { t.Description = description }))
}

func (s *Service) UpdateStatus(ctx context.Context, id uint, status string) (*domain.Ticket, error) {
	if err := utils.ValidateVar("status", status, statusTag); err != nil {
		return nil, err
	}
	return s.update(ctx, id, store.Set("status", func(t *domain.Ticket) { t.Status = vo.TicketStatus(status) }))
}

func (s *Service) UpdatePriority(ctx context.Context, id uint, priority string) (*domain.Ticket, error) {
	if err := utils.ValidateVar("priority", priority, priorityTag); err != nil {
		return nil, err
	}
	return s.update(ctx, id, store.Set("priority", func(t *domain.Ticket) { t.Priority = vo.Priority(priority) }))
}

func (s *Service) update(ctx context.Context, id uint, patch store.Patch[domain.Ticket]) (*domain.Ticket, error) {
	s.logger.Infow("executing update ticket use case", "ticket_id", id, "columns", patch.Columns)

	updated, err := s.store.Update(ctx, id, patch)
	if err != nil {
		s.logger.Errorw("failed to update ticket", "ticket_id", id, "error", err)
		return nil, err
	}
	if updated == nil {
		s.logger.Debugw("ticket not found for update", "ticket_id", id)
	}
	return updated, nil
}
