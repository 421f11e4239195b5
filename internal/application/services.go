// Package application wires the entity stores into the ticket, comment and
// user services.
package application

import (
	"github.com/corycamp/support-ticket-backend/internal/application/comment"
	"github.com/corycamp/support-ticket-backend/internal/application/ticket"
	"github.com/corycamp/support-ticket-backend/internal/application/ticket/dto"
	"github.com/corycamp/support-ticket-backend/internal/application/user"
	"github.com/corycamp/support-ticket-backend/internal/domain/shared/store"
	ticketdomain "github.com/corycamp/support-ticket-backend/internal/domain/ticket"
	userdomain "github.com/corycamp/support-ticket-backend/internal/domain/user"
	"github.com/corycamp/support-ticket-backend/internal/shared/logger"
)

// Stores holds one store per entity type. All three must come from the same
// backend.
type Stores struct {
	Tickets  store.Store[ticketdomain.Ticket]
	Comments store.Store[ticketdomain.Comment]
	Users    store.Store[userdomain.User]
}

// Options carries the optional collaborators of the services.
type Options struct {
	Notifier ticket.Notifier
	Renderer dto.Renderer
}

type Services struct {
	Tickets  *ticket.Service
	Comments *comment.Service
	Users    *user.Service
}

// NewServices builds the services once. The comment service backs ticket
// enrichment.
func NewServices(stores Stores, log logger.Interface, opts Options) *Services {
	comments := comment.NewService(stores.Comments, log.Named("comment"))

	ticketOpts := []ticket.Option{ticket.WithCommentLister(comments)}
	if opts.Notifier != nil {
		ticketOpts = append(ticketOpts, ticket.WithNotifier(opts.Notifier))
	}
	if opts.Renderer != nil {
		ticketOpts = append(ticketOpts, ticket.WithRenderer(opts.Renderer))
	}

	return &Services{
		Tickets:  ticket.NewService(stores.Tickets, log.Named("ticket"), ticketOpts...),
		Comments: comments,
		Users:    user.NewService(stores.Users, log.Named("user")),
	}
}
