package ticket

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/corycamp/support-ticket-backend/internal/shared/biztime"
)

const (
	MaxAuthorLength  = 255
	MaxContentLength = 5000
)

// Comment is a note attached to a ticket by id. The ticket is not required
// to exist.
type Comment struct {
	ID        uint
	TicketID  uint
	Author    string
	Content   string
	CreatedAt time.Time
}

func (c *Comment) GetID() uint   { return c.ID }
func (c *Comment) SetID(id uint) { c.ID = id }

// NewComment builds an unsaved comment. Lengths are counted in characters.
func NewComment(ticketID uint, author, content string) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(author) == 0 {
		return nil, fmt.Errorf("author is required")
	}
	if utf8.RuneCountInString(author) > MaxAuthorLength {
		return nil, fmt.Errorf("author exceeds maximum length of %d characters", MaxAuthorLength)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content cannot be empty")
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return nil, fmt.Errorf("content exceeds maximum length of %d characters", MaxContentLength)
	}

	return &Comment{
		TicketID:  ticketID,
		Author:    author,
		Content:   content,
		CreatedAt: biztime.NowUTC(),
	}, nil
}
