// Package ticket implements the ticket use cases: create, enriched reads,
// single-field updates and delete.
package ticket

import (
	"context"

	"github.com/corycamp/support-ticket-backend/internal/application/ticket/dto"
	"github.com/corycamp/support-ticket-backend/internal/domain/shared/store"
	domain "github.com/corycamp/support-ticket-backend/internal/domain/ticket"
	"github.com/corycamp/support-ticket-backend/internal/shared/logger"
)

// CommentLister supplies the comments attached to a ticket, oldest first.
type CommentLister interface {
	ListForTicket(ctx context.Context, ticketID uint) ([]*domain.Comment, error)
}

// Notifier is told about newly created tickets.
type Notifier interface {
	TicketCreated(ctx context.Context, t *domain.Ticket) error
}

type Option func(*Service)

func WithCommentLister(l CommentLister) Option {
	return func(s *Service) { s.comments = l }
}

func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

func WithRenderer(r dto.Renderer) Option {
	return func(s *Service) { s.renderer = r }
}

type Service struct {
	store    store.Store[domain.Ticket]
	comments CommentLister
	notifier Notifier
	renderer dto.Renderer
	logger   logger.Interface
}

func NewService(st store.Store[domain.Ticket], log logger.Interface, opts ...Option) *Service {
	s := &Service{
		store:  st,
		logger: log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) enrich(ctx context.Context, t *domain.Ticket) (*dto.TicketDTO, error) {
	var comments []*domain.Comment
	if s.comments != nil {
		var err error
		comments, err = s.comments.ListForTicket(ctx, t.ID)
		if err != nil {
			s.logger.Errorw("failed to list ticket comments", "ticket_id", t.ID, "error", err)
			return nil, err
		}
	}
	return dto.ToTicketDTO(t, comments, s.renderer), nil
}
