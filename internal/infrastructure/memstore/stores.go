package memstore

import (
	"github.com/corycamp/support-ticket-backend/internal/domain/shared/store"
	"github.com/corycamp/support-ticket-backend/internal/domain/ticket"
	"github.com/corycamp/support-ticket-backend/internal/domain/user"
)

func NewTicketStore() store.Store[ticket.Ticket] {
	return New[ticket.Ticket, *ticket.Ticket](WithName[ticket.Ticket]("ticket"))
}

func NewCommentStore() store.Store[ticket.Comment] {
	return New[ticket.Comment, *ticket.Comment](WithName[ticket.Comment]("comment"))
}

// NewUserStore enforces one record per email.
func NewUserStore() store.Store[user.User] {
	return New[user.User, *user.User](
		WithName[user.User]("user"),
		WithUnique("email", func(u *user.User) string { return u.Email }),
	)
}
