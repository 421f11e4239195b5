// Package user implements the user use cases. Users are addressed by email;
// every email argument is normalized before it reaches the store.
package user

import (
	"context"
	stderrors "errors"

	"github.com/corycamp/support-ticket-backend/internal/domain/shared/store"
	domain "github.com/corycamp/support-ticket-backend/internal/domain/user"
	vo "github.com/corycamp/support-ticket-backend/internal/domain/user/valueobjects"
	"github.com/corycamp/support-ticket-backend/internal/shared/authorization"
	"github.com/corycamp/support-ticket-backend/internal/shared/errors"
	"github.com/corycamp/support-ticket-backend/internal/shared/logger"
	"github.com/corycamp/support-ticket-backend/internal/shared/utils"
)

type CreateUserCommand struct {
	Email string `json:"email" validate:"required,email,max=255"`
	Role  string `json:"role" validate:"omitempty,oneof=admin user"`
}

type Service struct {
	store  store.Store[domain.User]
	logger logger.Interface
}

func NewService(st store.Store[domain.User], log logger.Interface) *Service {
	return &Service{
		store:  st,
		logger: log,
	}
}

// Create stores a new user. An email that is already registered yields a
// conflict error.
func (s *Service) Create(ctx context.Context, cmd CreateUserCommand) (*domain.User, error) {
	cmd.Email = vo.NormalizeEmail(cmd.Email)
	s.logger.Infow("executing create user use case", "email", utils.MaskEmail(cmd.Email))

	if err := utils.ValidateStruct(cmd); err != nil {
		s.logger.Warnw("invalid create user command", "error", err)
		return nil, err
	}

	existing, err := s.findByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("user already exists", cmd.Email)
	}

	u, err := domain.NewUser(cmd.Email, authorization.UserRole(cmd.Role))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	saved, err := s.store.Save(ctx, u)
	if err != nil {
		if stderrors.Is(err, store.ErrDuplicate) {
			return nil, errors.NewConflictError("user already exists", cmd.Email)
		}
		s.logger.Errorw("failed to save user", "email", utils.MaskEmail(cmd.Email), "error", err)
		return nil, err
	}

	s.logger.Infow("user created successfully", "email", utils.MaskEmail(saved.Email), "role", saved.Role)
	return saved, nil
}

// Get returns the user with the given email, or nil when none exists.
func (s *Service) Get(ctx context.Context, email string) (*domain.User, error) {
	return s.findByEmail(ctx, vo.NormalizeEmail(email))
}

func (s *Service) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.store.List(ctx)
	if err != nil {
		s.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

// UpdateRole changes the role of the user with the given email. Returns nil
// when none exists.
func (s *Service) UpdateRole(ctx context.Context, email, role string) (*domain.User, error) {
	newRole, err := authorization.NewUserRole(role)
	if err != nil {
		return nil, errors.NewValidationError("Validation failed", "role must be one of [admin user]")
	}

	u, err := s.Get(ctx, email)
	if err != nil || u == nil {
		return nil, err
	}

	updated, err := s.store.Update(ctx, u.ID, store.Set("role", func(u *domain.User) { u.Role = newRole }))
	if err != nil {
		s.logger.Errorw("failed to update user role", "email", utils.MaskEmail(u.Email), "error", err)
		return nil, err
	}
	if updated != nil {
		s.logger.Infow("user role updated", "email", utils.MaskEmail(updated.Email), "role", updated.Role)
	}
	return updated, nil
}

// Delete removes the user with the given email and returns its last value,
// or nil when none exists.
func (s *Service) Delete(ctx context.Context, email string) (*domain.User, error) {
	u, err := s.Get(ctx, email)
	if err != nil || u == nil {
		return nil, err
	}

	deleted, err := s.store.Delete(ctx, u.ID)
	if err != nil {
		s.logger.Errorw("failed to delete user", "email", utils.MaskEmail(u.Email), "error", err)
		return nil, err
	}
	return deleted, nil
}

func (s *Service) findByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := s.store.Find(ctx, store.Where("email", email, func(u *domain.User) bool {
		return u.Email == email
	}))
	if err != nil {
		s.logger.Errorw("failed to find user", "email", utils.MaskEmail(email), "error", err)
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return users[0], nil
}
