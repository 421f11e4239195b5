// Package user holds the user record. A user is identified by its
// normalized email; the numeric id is storage bookkeeping only.
package user

import (
	"fmt"
	"time"

	vo "github.com/corycamp/support-ticket-backend/internal/domain/user/valueobjects"
	"github.com/corycamp/support-ticket-backend/internal/shared/authorization"
	"github.com/corycamp/support-ticket-backend/internal/shared/biztime"
)

type User struct {
	ID        uint                   `json:"-"`
	Email     string                 `json:"email"`
	Role      authorization.UserRole `json:"role"`
	CreatedAt time.Time              `json:"created_at"`
}

func (u *User) GetID() uint   { return u.ID }
func (u *User) SetID(id uint) { u.ID = id }

// NewUser builds an unsaved user with a normalized email. An empty role
// becomes RoleUser.
func NewUser(email string, role authorization.UserRole) (*User, error) {
	addr, err := vo.NewEmail(email)
	if err != nil {
		return nil, err
	}
	if role == "" {
		role = authorization.RoleUser
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		Email:     addr.String(),
		Role:      role,
		CreatedAt: biztime.NowUTC(),
	}, nil
}
