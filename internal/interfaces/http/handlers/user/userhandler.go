package user

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	userapp "github.com/corycamp/support-ticket-backend/internal/application/user"
	domain "github.com/corycamp/support-ticket-backend/internal/domain/user"
	"github.com/corycamp/support-ticket-backend/internal/shared/constants"
	"github.com/corycamp/support-ticket-backend/internal/shared/errors"
	"github.com/corycamp/support-ticket-backend/internal/shared/logger"
	"github.com/corycamp/support-ticket-backend/internal/shared/utils"
)

type UserService interface {
	Create(ctx context.Context, cmd userapp.CreateUserCommand) (*domain.User, error)
	Get(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	UpdateRole(ctx context.Context, email, role string) (*domain.User, error)
	Delete(ctx context.Context, email string) (*domain.User, error)
}

type CreateUserRequest struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

type UpdateRoleRequest struct {
	Role string `json:"role"`
}

type UserDTO struct {
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserDTO(u *domain.User) *UserDTO {
	return &UserDTO{
		Email:     u.Email,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
	}
}

type Handler struct {
	users  UserService
	logger logger.Interface
}

func NewHandler(users UserService, logger logger.Interface) *Handler {
	return &Handler{
		users:  users,
		logger: logger,
	}
}

// CreateUser handles POST /users
// @Summary Create user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "User"
// @Success 201 {object} utils.APIResponse{data=UserDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /users [post]
func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(constants.ErrMsgInvalidRequestBody, err.Error()))
		return
	}

	u, err := h.users.Create(c.Request.Context(), userapp.CreateUserCommand{
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toUserDTO(u), "User created successfully")
}

// ListUsers handles GET /users
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]UserDTO}
// @Router /users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result := make([]*UserDTO, 0, len(users))
	for _, u := range users {
		result = append(result, toUserDTO(u))
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetUser handles GET /users/:email
// @Summary Get user by email
// @Tags Users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} utils.APIResponse{data=UserDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /users/{email} [get]
func (h *Handler) GetUser(c *gin.Context) {
	u, err := h.users.Get(c.Request.Context(), c.Param("email"))
	h.respond(c, u, err, "")
}

// UpdateRole handles PUT /users/:email/role
// @Summary Update user role
// @Tags Users
// @Accept json
// @Produce json
// @Param email path string true "User email"
// @Param request body UpdateRoleRequest true "Role"
// @Success 200 {object} utils.APIResponse{data=UserDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /users/{email}/role [put]
func (h *Handler) UpdateRole(c *gin.Context) {
	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(constants.ErrMsgInvalidRequestBody, err.Error()))
		return
	}

	u, err := h.users.UpdateRole(c.Request.Context(), c.Param("email"), req.Role)
	h.respond(c, u, err, "User role updated successfully")
}

// DeleteUser handles DELETE /users/:email
// @Summary Delete user
// @Tags Users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} utils.APIResponse{data=UserDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /users/{email} [delete]
func (h *Handler) DeleteUser(c *gin.Context) {
	u, err := h.users.Delete(c.Request.Context(), c.Param("email"))
	h.respond(c, u, err, "User deleted successfully")
}

func (h *Handler) respond(c *gin.Context, u *domain.User, err error, message string) {
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if u == nil {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError(constants.ErrMsgUserNotFound))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, message, toUserDTO(u))
}
