package repository

import (
	"gorm.io/gorm"

	"github.com/corycamp/support-ticket-backend/internal/domain/ticket"
	"github.com/corycamp/support-ticket-backend/internal/domain/user"
	"github.com/corycamp/support-ticket-backend/internal/infrastructure/persistence/mappers"
	"github.com/corycamp/support-ticket-backend/internal/infrastructure/persistence/models"
)

type (
	TicketStore  = GormStore[ticket.Ticket, models.TicketModel]
	CommentStore = GormStore[ticket.Comment, models.CommentModel]
	UserStore    = GormStore[user.User, models.UserModel]
)

func NewTicketStore(gdb *gorm.DB) *TicketStore {
	return NewGormStore(gdb, "ticket", mappers.NewTicketMapper())
}

func NewCommentStore(gdb *gorm.DB) *CommentStore {
	return NewGormStore(gdb, "comment", mappers.NewCommentMapper())
}

// NewUserStore relies on the unique index on users.email for duplicate
// detection.
func NewUserStore(gdb *gorm.DB) *UserStore {
	return NewGormStore(gdb, "user", mappers.NewUserMapper())
}
