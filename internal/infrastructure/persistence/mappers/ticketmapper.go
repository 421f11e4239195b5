package mappers

import (
	"fmt"

	"github.com/corycamp/support-ticket-backend/internal/domain/ticket"
	vo "github.com/corycamp/support-ticket-backend/internal/domain/ticket/valueobjects"
	"github.com/corycamp/support-ticket-backend/internal/infrastructure/persistence/models"
	"github.com/corycamp/support-ticket-backend/internal/shared/biztime"
)

type TicketMapper struct{}

func NewTicketMapper() Mapper[ticket.Ticket, models.TicketModel] {
	return TicketMapper{}
}

func (TicketMapper) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority.String(),
		Status:      t.Status.String(),
		CreatedAt:   biztime.ToMillis(t.CreatedAt),
	}
}

func (TicketMapper) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}

	return &ticket.Ticket{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		Priority:    priority,
		Status:      status,
		CreatedAt:   biztime.FromMillis(model.CreatedAt),
	}, nil
}

type CommentMapper struct{}

func NewCommentMapper() Mapper[ticket.Comment, models.CommentModel] {
	return CommentMapper{}
}

func (CommentMapper) ToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        c.ID,
		TicketID:  c.TicketID,
		Author:    c.Author,
		Content:   c.Content,
		CreatedAt: biztime.ToMillis(c.CreatedAt),
	}
}

func (CommentMapper) ToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	return &ticket.Comment{
		ID:        model.ID,
		TicketID:  model.TicketID,
		Author:    model.Author,
		Content:   model.Content,
		CreatedAt: biztime.FromMillis(model.CreatedAt),
	}, nil
}
