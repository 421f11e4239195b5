// Package comment implements the comment use cases. Comments are not checked
// against the ticket store: a comment may reference a ticket that does not
// exist or has been deleted.
package comment

import (
	"context"

	"github.com/corycamp/support-ticket-backend/internal/domain/shared/store"
	domain "github.com/corycamp/support-ticket-backend/internal/domain/ticket"
	"github.com/corycamp/support-ticket-backend/internal/shared/errors"
	"github.com/corycamp/support-ticket-backend/internal/shared/logger"
	"github.com/corycamp/support-ticket-backend/internal/shared/utils"
)

type CreateCommentCommand struct {
	TicketID uint   `json:"ticket_id" validate:"gt=0"`
	Author   string `json:"author" validate:"required,max=255"`
	Content  string `json:"content" validate:"required,max=5000"`
}

type Service struct {
	store  store.Store[domain.Comment]
	logger logger.Interface
}

func NewService(st store.Store[domain.Comment], log logger.Interface) *Service {
	return &Service{
		store:  st,
		logger: log,
	}
}

func (s *Service) Create(ctx context.Context, cmd CreateCommentCommand) (*domain.Comment, error) {
	s.logger.Infow("executing create comment use case", "ticket_id", cmd.TicketID)

	if err := utils.ValidateStruct(cmd); err != nil {
		s.logger.Warnw("invalid create comment command", "error", err)
		return nil, err
	}

	c, err := domain.NewComment(cmd.TicketID, cmd.Author, cmd.Content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	saved, err := s.store.Save(ctx, c)
	if err != nil {
		s.logger.Errorw("failed to save comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	s.logger.Infow("comment created successfully", "comment_id", saved.ID, "ticket_id", saved.TicketID)
	return saved, nil
}

// Get returns the comment, or nil when it does not exist.
func (s *Service) Get(ctx context.Context, id uint) (*domain.Comment, error) {
	c, err := s.store.Get(ctx, id)
	if err != nil {
		s.logger.Errorw("failed to get comment", "comment_id", id, "error", err)
		return nil, err
	}
	return c, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Comment, error) {
	comments, err := s.store.List(ctx)
	if err != nil {
		s.logger.Errorw("failed to list comments", "error", err)
		return nil, err
	}
	return comments, nil
}

// ListForTicket returns the comments referencing ticketID in creation order.
func (s *Service) ListForTicket(ctx context.Context, ticketID uint) ([]*domain.Comment, error) {
	comments, err := s.store.Find(ctx, store.Where("ticket_id", ticketID, func(c *domain.Comment) bool {
		return c.TicketID == ticketID
	}))
	if err != nil {
		s.logger.Errorw("failed to list comments for ticket", "ticket_id", ticketID, "error", err)
		return nil, err
	}
	return comments, nil
}

// UpdateContent replaces the content. Returns nil when the comment does not
// exist.
func (s *Service) UpdateContent(ctx context.Context, id uint, content string) (*domain.Comment, error) {
	if err := utils.ValidateVar("content", content, "required,max=5000"); err != nil {
		return nil, err
	}

	updated, err := s.store.Update(ctx, id, store.Set("content", func(c *domain.Comment) { c.Content = content }))
	if err != nil {
		s.logger.Errorw("failed to update comment", "comment_id", id, "error", err)
		return nil, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id uint) (*domain.Comment, error) {
	s.logger.Infow("executing delete comment use case", "comment_id", id)

	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		s.logger.Errorw("failed to delete comment", "comment_id", id, "error", err)
		return nil, err
	}
	return deleted, nil
}
