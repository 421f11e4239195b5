package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corycamp/support-ticket-backend/internal/domain/ticket"
	vo "github.com/corycamp/support-ticket-backend/internal/domain/ticket/valueobjects"
)

type upperRenderer struct{}

func (upperRenderer) Render(source string) string { return "<p>" + strings.ToUpper(source) + "</p>" }

func TestToTicketDTO(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	tk := &ticket.Ticket{
		ID:          3,
		Title:       "Printer",
		Description: "jammed",
		Priority:    vo.PriorityHigh,
		Status:      vo.StatusInProgress,
		CreatedAt:   created,
	}

	t.Run("without comments", func(t *testing.T) {
		got := ToTicketDTO(tk, nil, nil)
		require.NotNil(t, got)
		assert.Equal(t, uint(3), got.ID)
		assert.Equal(t, "high", got.Priority)
		assert.Equal(t, "in_progress", got.Status)
		assert.Equal(t, created, got.CreatedAt)
		assert.NotNil(t, got.Comments)
		assert.Empty(t, got.Comments)
		assert.Empty(t, got.DescriptionHTML)
	})

	t.Run("with comments and renderer", func(t *testing.T) {
		comments := []*ticket.Comment{
			{ID: 1, TicketID: 3, Author: "a@x.io", Content: "first"},
			nil,
			{ID: 2, TicketID: 3, Author: "b@x.io", Content: "second"},
		}
		got := ToTicketDTO(tk, comments, upperRenderer{})
		require.Len(t, got.Comments, 2)
		assert.Equal(t, "<p>JAMMED</p>", got.DescriptionHTML)
		assert.Equal(t, "<p>FIRST</p>", got.Comments[0].ContentHTML)
		assert.Equal(t, uint(2), got.Comments[1].ID)
	})

	t.Run("nil ticket", func(t *testing.T) {
		assert.Nil(t, ToTicketDTO(nil, nil, nil))
		assert.Nil(t, ToTicketRecordDTO(nil, nil))
	})
}

func TestTicketDTO_JSONIsFlat(t *testing.T) {
	got := ToTicketDTO(&ticket.Ticket{ID: 1, Title: "t", Priority: vo.PriorityLow, Status: vo.StatusOpen}, nil, nil)

	data, err := json.Marshal(got)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, "t", fields["title"])
	assert.Equal(t, []any{}, fields["comments"])
	assert.NotContains(t, fields, "description_html")
}
