package ticket

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corycamp/support-ticket-backend/internal/domain/shared/store"
	domain "github.com/corycamp/support-ticket-backend/internal/domain/ticket"
	vo "github.com/corycamp/support-ticket-backend/internal/domain/ticket/valueobjects"
	"github.com/corycamp/support-ticket-backend/internal/infrastructure/memstore"
	apperrors "github.com/corycamp/support-ticket-backend/internal/shared/errors"
	"github.com/corycamp/support-ticket-backend/internal/shared/logger"
)

func newTestService(opts ...Option) *Service {
	return NewService(memstore.NewTicketStore(), logger.Discard(), opts...)
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name         string
		cmd          CreateTicketCommand
		wantPriority vo.Priority
		wantStatus   vo.TicketStatus
		wantErr      bool
	}{
		{
			name:         "defaults priority and status",
			cmd:          CreateTicketCommand{Title: "Printer jam", Description: "Floor 3"},
			wantPriority: vo.PriorityMedium,
			wantStatus:   vo.StatusOpen,
		},
		{
			name:         "explicit values",
			cmd:          CreateTicketCommand{Title: "Outage", Priority: "high", Status: "in_progress"},
			wantPriority: vo.PriorityHigh,
			wantStatus:   vo.StatusInProgress,
		},
		{
			name:         "multibyte title at limit",
			cmd:          CreateTicketCommand{Title: strings.Repeat("é", 200), Description: strings.Repeat("ß", 5000)},
			wantPriority: vo.PriorityMedium,
			wantStatus:   vo.StatusOpen,
		},
		{name: "missing title", cmd: CreateTicketCommand{Description: "x"}, wantErr: true},
		{name: "blank title", cmd: CreateTicketCommand{Title: "   "}, wantErr: true},
		{name: "multibyte title too long", cmd: CreateTicketCommand{Title: strings.Repeat("é", 201)}, wantErr: true},
		{name: "title too long", cmd: CreateTicketCommand{Title: strings.Repeat("a", 201)}, wantErr: true},
		{name: "description too long", cmd: CreateTicketCommand{Title: "t", Description: strings.Repeat("a", 5001)}, wantErr: true},
		{name: "unknown priority", cmd: CreateTicketCommand{Title: "t", Priority: "urgent"}, wantErr: true},
		{name: "unknown status", cmd: CreateTicketCommand{Title: "t", Status: "resolved"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService()

			got, err := svc.Create(context.Background(), tt.cmd)
			if tt.wantErr {
				assert.True(t, apperrors.IsValidationError(err), "got %v", err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint(1), got.ID)
			assert.Equal(t, tt.wantPriority, got.Priority)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.False(t, got.CreatedAt.IsZero())
			assert.Equal(t, "UTC", got.CreatedAt.Location().String())
		})
	}
}

func TestService_Create_Notifier(t *testing.T) {
	t.Run("notified once", func(t *testing.T) {
		n := &mockNotifier{}
		svc := newTestService(WithNotifier(n))

		_, err := svc.Create(context.Background(), CreateTicketCommand{Title: "t"})
		require.NoError(t, err)
		assert.Equal(t, 1, n.calls)
	})

	t.Run("notification failure is not returned", func(t *testing.T) {
		n := &mockNotifier{
			TicketCreatedFunc: func(ctx context.Context, tk *domain.Ticket) error {
				return errors.New("smtp down")
			},
		}
		svc := newTestService(WithNotifier(n))

		got, err := svc.Create(context.Background(), CreateTicketCommand{Title: "t"})
		require.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("not notified on validation failure", func(t *testing.T) {
		n := &mockNotifier{}
		svc := newTestService(WithNotifier(n))

		_, err := svc.Create(context.Background(), CreateTicketCommand{})
		require.Error(t, err)
		assert.Zero(t, n.calls)
	})
}

func TestService_Get_Enrichment(t *testing.T) {
	ctx := context.Background()
	comments := map[uint][]*domain.Comment{
		1: {
			{ID: 1, TicketID: 1, Author: "a@x.io", Content: "C1"},
			{ID: 2, TicketID: 1, Author: "b@x.io", Content: "C2"},
		},
		2: {
			{ID: 3, TicketID: 2, Author: "c@x.io", Content: "C3"},
		},
	}
	lister := &mockCommentLister{
		ListForTicketFunc: func(ctx context.Context, ticketID uint) ([]*domain.Comment, error) {
			return comments[ticketID], nil
		},
	}
	svc := newTestService(WithCommentLister(lister))

	_, err := svc.Create(ctx, CreateTicketCommand{Title: "first"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateTicketCommand{Title: "second"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got.Comments, 2)
	assert.Equal(t, "C1", got.Comments[0].Content)
	assert.Equal(t, "C2", got.Comments[1].Content)

	missing, err := svc.Get(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestService_Get_NoLister(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.Create(ctx, CreateTicketCommand{Title: "t"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, got.Comments)
	assert.Empty(t, got.Comments)
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	lister := &mockCommentLister{
		ListForTicketFunc: func(ctx context.Context, ticketID uint) ([]*domain.Comment, error) {
			if ticketID == 2 {
				return []*domain.Comment{{ID: 7, TicketID: 2, Content: "only on two"}}, nil
			}
			return nil, nil
		},
	}
	svc := newTestService(WithCommentLister(lister))

	for _, title := range []string{"a", "b", "c"} {
		_, err := svc.Create(ctx, CreateTicketCommand{Title: title})
		require.NoError(t, err)
	}
	_, err := svc.Delete(ctx, 1)
	require.NoError(t, err)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint(2), got[0].ID)
	assert.Equal(t, uint(3), got[1].ID)
	assert.Len(t, got[0].Comments, 1)
	assert.Empty(t, got[1].Comments)
}

func TestService_List_CommentFailure(t *testing.T) {
	ctx := context.Background()
	lister := &mockCommentLister{
		ListForTicketFunc: func(ctx context.Context, ticketID uint) ([]*domain.Comment, error) {
			return nil, &store.StorageError{Op: "find", Entity: "comment", Err: errors.New("boom")}
		},
	}
	svc := newTestService(WithCommentLister(lister))
	_, err := svc.Create(ctx, CreateTicketCommand{Title: "t"})
	require.NoError(t, err)

	_, err = svc.List(ctx)
	assert.True(t, store.IsStorageError(err))
}

func TestService_Updates(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	created, err := svc.Create(ctx, CreateTicketCommand{Title: "Printer", Description: "jammed", Priority: "low"})
	require.NoError(t, err)

	updated, err := svc.UpdateTitle(ctx, created.ID, "Printer on floor 3")
	require.NoError(t, err)
	assert.Equal(t, "Printer on floor 3", updated.Title)
	assert.Equal(t, "jammed", updated.Description)
	assert.Equal(t, vo.PriorityLow, updated.Priority)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	updated, err = svc.UpdateDescription(ctx, created.ID, "")
	require.NoError(t, err)
	assert.Empty(t, updated.Description)

	updated, err = svc.UpdateStatus(ctx, created.ID, "closed")
	require.NoError(t, err)
	assert.Equal(t, vo.StatusClosed, updated.Status)
	assert.Equal(t, "Printer on floor 3", updated.Title)

	updated, err = svc.UpdatePriority(ctx, created.ID, "high")
	require.NoError(t, err)
	assert.Equal(t, vo.PriorityHigh, updated.Priority)
	assert.Equal(t, vo.StatusClosed, updated.Status)

	t.Run("invalid values", func(t *testing.T) {
		_, err := svc.UpdateTitle(ctx, created.ID, "")
		assert.True(t, apperrors.IsValidationError(err))
		_, err = svc.UpdateTitle(ctx, created.ID, "  \t")
		assert.True(t, apperrors.IsValidationError(err))
		_, err = svc.UpdateStatus(ctx, created.ID, "resolved")
		assert.True(t, apperrors.IsValidationError(err))
		_, err = svc.UpdatePriority(ctx, created.ID, "urgent")
		assert.True(t, apperrors.IsValidationError(err))
		_, err = svc.UpdateDescription(ctx, created.ID, strings.Repeat("d", 5001))
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("missing ticket", func(t *testing.T) {
		got, err := svc.UpdateTitle(ctx, 42, "x")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

// A title accepted by Create is also accepted by UpdateTitle, and the other
// way round.
func TestService_TitleLengthCountsCharacters(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	title := strings.Repeat("é", 150)

	created, err := svc.Create(ctx, CreateTicketCommand{Title: title})
	require.NoError(t, err)
	assert.Equal(t, title, created.Title)

	updated, err := svc.UpdateTitle(ctx, created.ID, strings.Repeat("ü", 200))
	require.NoError(t, err)
	require.NotNil(t, updated)

	_, err = svc.UpdateTitle(ctx, created.ID, strings.Repeat("ü", 201))
	assert.True(t, apperrors.IsValidationError(err))
}

func TestService_UpdatePatchesOneColumn(t *testing.T) {
	var columns []string
	st := &mockTicketStore{
		UpdateFunc: func(ctx context.Context, id uint, patch store.Patch[domain.Ticket]) (*domain.Ticket, error) {
			columns = patch.Columns
			return &domain.Ticket{ID: id}, nil
		},
	}
	svc := NewService(st, logger.Discard())

	_, err := svc.UpdatePriority(context.Background(), 5, "low")
	require.NoError(t, err)
	assert.Equal(t, []string{"priority"}, columns)
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	created, err := svc.Create(ctx, CreateTicketCommand{Title: "t"})
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	again, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, again)
}

func TestService_StorageErrorPropagates(t *testing.T) {
	storageErr := &store.StorageError{Op: "save", Entity: "ticket", Err: errors.New("disk full")}
	st := &mockTicketStore{
		SaveFunc: func(ctx context.Context, tk *domain.Ticket) (*domain.Ticket, error) {
			return nil, storageErr
		},
		GetFunc: func(ctx context.Context, id uint) (*domain.Ticket, error) {
			return nil, storageErr
		},
	}
	n := &mockNotifier{}
	svc := NewService(st, logger.Discard(), WithNotifier(n))

	_, err := svc.Create(context.Background(), CreateTicketCommand{Title: "t"})
	assert.ErrorIs(t, err, storageErr)
	assert.Zero(t, n.calls)

	_, err = svc.Get(context.Background(), 1)
	assert.True(t, store.IsStorageError(err))
}
