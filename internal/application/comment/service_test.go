package comment

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corycamp/support-ticket-backend/internal/infrastructure/memstore"
	apperrors "github.com/corycamp/support-ticket-backend/internal/shared/errors"
	"github.com/corycamp/support-ticket-backend/internal/shared/logger"
)

func newTestService() *Service {
	return NewService(memstore.NewCommentStore(), logger.Discard())
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name    string
		cmd     CreateCommentCommand
		wantErr bool
	}{
		{name: "valid", cmd: CreateCommentCommand{TicketID: 1, Author: "a@x.io", Content: "hello"}},
		{name: "orphan ticket id accepted", cmd: CreateCommentCommand{TicketID: 999, Author: "a@x.io", Content: "hello"}},
		{name: "multibyte content at limit", cmd: CreateCommentCommand{TicketID: 1, Author: "zoë", Content: strings.Repeat("é", 5000)}},
		{name: "zero ticket id", cmd: CreateCommentCommand{Author: "a@x.io", Content: "hello"}, wantErr: true},
		{name: "missing author", cmd: CreateCommentCommand{TicketID: 1, Content: "hello"}, wantErr: true},
		{name: "missing content", cmd: CreateCommentCommand{TicketID: 1, Author: "a@x.io"}, wantErr: true},
		{name: "content too long", cmd: CreateCommentCommand{TicketID: 1, Author: "a", Content: strings.Repeat("c", 5001)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService()

			got, err := svc.Create(context.Background(), tt.cmd)
			if tt.wantErr {
				assert.True(t, apperrors.IsValidationError(err), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint(1), got.ID)
			assert.Equal(t, tt.cmd.TicketID, got.TicketID)
			assert.False(t, got.CreatedAt.IsZero())
		})
	}
}

func TestService_ListForTicket(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	for _, cmd := range []CreateCommentCommand{
		{TicketID: 1, Author: "a", Content: "C1"},
		{TicketID: 2, Author: "b", Content: "other"},
		{TicketID: 1, Author: "c", Content: "C2"},
	} {
		_, err := svc.Create(ctx, cmd)
		require.NoError(t, err)
	}

	got, err := svc.ListForTicket(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "C1", got[0].Content)
	assert.Equal(t, "C2", got[1].Content)

	none, err := svc.ListForTicket(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	created, err := svc.Create(ctx, CreateCommentCommand{TicketID: 4, Author: "a", Content: "draft"})
	require.NoError(t, err)

	updated, err := svc.UpdateContent(ctx, created.ID, "final")
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Content)
	assert.Equal(t, "a", updated.Author)
	assert.Equal(t, uint(4), updated.TicketID)

	_, err = svc.UpdateContent(ctx, created.ID, "")
	assert.True(t, apperrors.IsValidationError(err))

	missing, err := svc.UpdateContent(ctx, 50, "x")
	require.NoError(t, err)
	assert.Nil(t, missing)

	deleted, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "final", deleted.Content)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
