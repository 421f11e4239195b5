// Package ticket holds the ticket and comment records.
package ticket

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	vo "github.com/corycamp/support-ticket-backend/internal/domain/ticket/valueobjects"
	"github.com/corycamp/support-ticket-backend/internal/shared/biztime"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 5000
)

// Ticket is a support request. Its comments are not part of the record;
// they are looked up by ticket id when the ticket is read.
type Ticket struct {
	ID          uint
	Title       string
	Description string
	Priority    vo.Priority
	Status      vo.TicketStatus
	CreatedAt   time.Time
}

func (t *Ticket) GetID() uint   { return t.ID }
func (t *Ticket) SetID(id uint) { t.ID = id }

// NewTicket builds an unsaved ticket. Lengths are counted in characters.
// Empty priority and status fall back to medium and open.
func NewTicket(title, description string, priority vo.Priority, status vo.TicketStatus) (*Ticket, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", MaxTitleLength)
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", MaxDescriptionLength)
	}
	if priority == "" {
		priority = vo.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if status == "" {
		status = vo.StatusOpen
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Ticket{
		Title:       title,
		Description: description,
		Priority:    priority,
		Status:      status,
		CreatedAt:   biztime.NowUTC(),
	}, nil
}

