package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corycamp/support-ticket-backend/internal/domain/ticket"
	vo "github.com/corycamp/support-ticket-backend/internal/domain/ticket/valueobjects"
	"github.com/corycamp/support-ticket-backend/internal/domain/user"
	"github.com/corycamp/support-ticket-backend/internal/infrastructure/persistence/models"
	"github.com/corycamp/support-ticket-backend/internal/shared/authorization"
)

var ts = time.Date(2024, 3, 10, 8, 0, 0, 500_000_000, time.UTC)

func TestTicketMapper(t *testing.T) {
	m := NewTicketMapper()
	in := &ticket.Ticket{ID: 4, Title: "VPN", Description: "drops", Priority: vo.PriorityHigh, Status: vo.StatusInProgress, CreatedAt: ts}

	model := m.ToModel(in)
	assert.Equal(t, "high", model.Priority)
	assert.Equal(t, "in_progress", model.Status)
	assert.Equal(t, ts.UnixMilli(), model.CreatedAt)

	out, err := m.ToDomain(model)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestTicketMapper_RejectsUnknownStoredValues(t *testing.T) {
	m := NewTicketMapper()

	_, err := m.ToDomain(&models.TicketModel{ID: 1, Priority: "urgent", Status: "open"})
	assert.ErrorContains(t, err, "ticket 1")

	_, err = m.ToDomain(&models.TicketModel{ID: 2, Priority: "low", Status: "resolved"})
	assert.ErrorContains(t, err, "invalid ticket status")
}

func TestCommentMapper(t *testing.T) {
	m := NewCommentMapper()
	in := &ticket.Comment{ID: 9, TicketID: 4, Author: "alice@example.com", Content: "hi", CreatedAt: ts}

	out, err := m.ToDomain(m.ToModel(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestUserMapper(t *testing.T) {
	m := NewUserMapper()
	in := &user.User{ID: 2, Email: "root@example.com", Role: authorization.RoleAdmin, CreatedAt: ts}

	out, err := m.ToDomain(m.ToModel(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)

	_, err = m.ToDomain(&models.UserModel{ID: 3, Email: "x@example.com", Role: "owner"})
	assert.Error(t, err)
}
