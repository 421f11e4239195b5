package dto

import (
	"time"

	"github.com/corycamp/support-ticket-backend/internal/domain/ticket"
	"github.com/corycamp/support-ticket-backend/internal/shared/mapper"
)

// Renderer turns markdown text into sanitized HTML.
type Renderer interface {
	Render(source string) string
}

// TicketRecordDTO is a ticket without its comments, as returned by writes.
type TicketRecordDTO struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DescriptionHTML string    `json:"description_html,omitempty"`
	Priority        string    `json:"priority"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// TicketDTO is a ticket enriched with its comments.
type TicketDTO struct {
	TicketRecordDTO
	Comments []*CommentDTO `json:"comments"`
}

type CommentDTO struct {
	ID          uint      `json:"id"`
	TicketID    uint      `json:"ticket_id"`
	Author      string    `json:"author"`
	Content     string    `json:"content"`
	ContentHTML string    `json:"content_html,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToTicketDTO maps a ticket and its comments. r may be nil, in which case no
// HTML is rendered. Comments is never nil.
func ToTicketDTO(t *ticket.Ticket, comments []*ticket.Comment, r Renderer) *TicketDTO {
	if t == nil {
		return nil
	}

	commentDTOs := ToCommentDTOs(comments, r)
	if commentDTOs == nil {
		commentDTOs = make([]*CommentDTO, 0)
	}

	return &TicketDTO{
		TicketRecordDTO: *ToTicketRecordDTO(t, r),
		Comments:        commentDTOs,
	}
}

func ToTicketRecordDTO(t *ticket.Ticket, r Renderer) *TicketRecordDTO {
	if t == nil {
		return nil
	}

	return &TicketRecordDTO{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		DescriptionHTML: render(r, t.Description),
		Priority:        t.Priority.String(),
		Status:          t.Status.String(),
		CreatedAt:       t.CreatedAt,
	}
}

func ToCommentDTO(c *ticket.Comment, r Renderer) *CommentDTO {
	if c == nil {
		return nil
	}

	return &CommentDTO{
		ID:          c.ID,
		TicketID:    c.TicketID,
		Author:      c.Author,
		Content:     c.Content,
		ContentHTML: render(r, c.Content),
		CreatedAt:   c.CreatedAt,
	}
}

func ToCommentDTOs(comments []*ticket.Comment, r Renderer) []*CommentDTO {
	return mapper.MapSlicePtr(comments, func(c *ticket.Comment) *CommentDTO {
		return ToCommentDTO(c, r)
	})
}

func render(r Renderer, source string) string {
	if r == nil || source == "" {
		return ""
	}
	return r.Render(source)
}
