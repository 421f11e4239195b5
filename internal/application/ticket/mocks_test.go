package ticket

import (
	"context"

	"github.com/corycamp/support-ticket-backend/internal/domain/shared/store"
	domain "github.com/corycamp/support-ticket-backend/internal/domain/ticket"
)

type mockTicketStore struct {
	SaveFunc   func(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error)
	GetFunc    func(ctx context.Context, id uint) (*domain.Ticket, error)
	ListFunc   func(ctx context.Context) ([]*domain.Ticket, error)
	UpdateFunc func(ctx context.Context, id uint, patch store.Patch[domain.Ticket]) (*domain.Ticket, error)
	DeleteFunc func(ctx context.Context, id uint) (*domain.Ticket, error)
}

func (m *mockTicketStore) Save(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return t, nil
}

func (m *mockTicketStore) Get(ctx context.Context, id uint) (*domain.Ticket, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketStore) List(ctx context.Context) ([]*domain.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockTicketStore) Update(ctx context.Context, id uint, patch store.Patch[domain.Ticket]) (*domain.Ticket, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, patch)
	}
	return nil, nil
}

func (m *mockTicketStore) Delete(ctx context.Context, id uint) (*domain.Ticket, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketStore) Find(ctx context.Context, cond store.Condition[domain.Ticket]) ([]*domain.Ticket, error) {
	return nil, nil
}

type mockCommentLister struct {
	ListForTicketFunc func(ctx context.Context, ticketID uint) ([]*domain.Comment, error)
}

func (m *mockCommentLister) ListForTicket(ctx context.Context, ticketID uint) ([]*domain.Comment, error) {
	if m.ListForTicketFunc != nil {
		return m.ListForTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockNotifier struct {
	calls             int
	TicketCreatedFunc func(ctx context.Context, t *domain.Ticket) error
}

func (m *mockNotifier) TicketCreated(ctx context.Context, t *domain.Ticket) error {
	m.calls++
	if m.TicketCreatedFunc != nil {
		return m.TicketCreatedFunc(ctx, t)
	}
	return nil
}
