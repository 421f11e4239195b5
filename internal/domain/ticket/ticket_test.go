package ticket

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/corycamp/support-ticket-backend/internal/domain/ticket/valueobjects"
)

func TestNewTicket(t *testing.T) {
	tests := []struct {
		name         string
		title        string
		desc         string
		priority     vo.Priority
		status       vo.TicketStatus
		wantPriority vo.Priority
		wantStatus   vo.TicketStatus
		wantErr      string
	}{
		{
			name:         "defaults applied",
			title:        "IT issue",
			desc:         "Can't login",
			wantPriority: vo.PriorityMedium,
			wantStatus:   vo.StatusOpen,
		},
		{
			name:         "explicit values kept",
			title:        "Printer",
			priority:     vo.PriorityHigh,
			status:       vo.StatusInProgress,
			wantPriority: vo.PriorityHigh,
			wantStatus:   vo.StatusInProgress,
		},
		{
			name:         "multibyte title at limit",
			title:        strings.Repeat("é", MaxTitleLength),
			desc:         strings.Repeat("日", MaxDescriptionLength),
			wantPriority: vo.PriorityMedium,
			wantStatus:   vo.StatusOpen,
		},
		{name: "empty title", title: "", wantErr: "title is required"},
		{name: "blank title", title: " \t ", wantErr: "title is required"},
		{name: "multibyte title too long", title: strings.Repeat("é", MaxTitleLength+1), wantErr: "title exceeds"},
		{name: "title too long", title: strings.Repeat("a", MaxTitleLength+1), wantErr: "title exceeds"},
		{name: "description too long", title: "t", desc: strings.Repeat("d", MaxDescriptionLength+1), wantErr: "description exceeds"},
		{name: "bad priority", title: "t", priority: "urgent", wantErr: "invalid priority"},
		{name: "bad status", title: "t", status: "resolved", wantErr: "invalid status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := NewTicket(tt.title, tt.desc, tt.priority, tt.status)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, tk)
				return
			}
			require.NoError(t, err)
			assert.Zero(t, tk.ID)
			assert.Equal(t, tt.title, tk.Title)
			assert.Equal(t, tt.desc, tk.Description)
			assert.Equal(t, tt.wantPriority, tk.Priority)
			assert.Equal(t, tt.wantStatus, tk.Status)
			assert.False(t, tk.CreatedAt.IsZero())
		})
	}
}

func TestTicket_IDAccessors(t *testing.T) {
	tk := &Ticket{}
	tk.SetID(7)
	assert.Equal(t, uint(7), tk.GetID())
}

func TestNewComment(t *testing.T) {
	tests := []struct {
		name     string
		ticketID uint
		author   string
		content  string
		wantErr  string
	}{
		{name: "valid", ticketID: 1, author: "alice@example.com", content: "Cannot access my account"},
		{name: "orphan ticket id is allowed", ticketID: 999, author: "bob", content: "hello"},
		{name: "missing ticket", ticketID: 0, author: "a", content: "c", wantErr: "ticket ID is required"},
		{name: "missing author", ticketID: 1, author: "", content: "c", wantErr: "author is required"},
		{name: "author too long", ticketID: 1, author: strings.Repeat("a", MaxAuthorLength+1), content: "c", wantErr: "author exceeds"},
		{name: "multibyte author and content at limit", ticketID: 1, author: strings.Repeat("ü", MaxAuthorLength), content: strings.Repeat("é", MaxContentLength)},
		{name: "empty content", ticketID: 1, author: "a", content: "", wantErr: "content cannot be empty"},
		{name: "content too long", ticketID: 1, author: "a", content: strings.Repeat("c", MaxContentLength+1), wantErr: "content exceeds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewComment(tt.ticketID, tt.author, tt.content)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.ticketID, c.TicketID)
			assert.Equal(t, tt.author, c.Author)
			assert.Equal(t, tt.content, c.Content)
			assert.False(t, c.CreatedAt.IsZero())
		})
	}
}
