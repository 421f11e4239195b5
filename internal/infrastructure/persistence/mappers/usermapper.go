package mappers

import (
	"fmt"

	"github.com/corycamp/support-ticket-backend/internal/domain/user"
	"github.com/corycamp/support-ticket-backend/internal/infrastructure/persistence/models"
	"github.com/corycamp/support-ticket-backend/internal/shared/authorization"
	"github.com/corycamp/support-ticket-backend/internal/shared/biztime"
)

type UserMapper struct{}

func NewUserMapper() Mapper[user.User, models.UserModel] {
	return UserMapper{}
}

func (UserMapper) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role.String(),
		CreatedAt: biztime.ToMillis(u.CreatedAt),
	}
}

func (UserMapper) ToDomain(model *models.UserModel) (*user.User, error) {
	role, err := authorization.NewUserRole(model.Role)
	if err != nil {
		return nil, fmt.Errorf("user %d: %w", model.ID, err)
	}
	return &user.User{
		ID:        model.ID,
		Email:     model.Email,
		Role:      role,
		CreatedAt: biztime.FromMillis(model.CreatedAt),
	}, nil
}
