package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/corycamp/support-ticket-backend/internal/infrastructure/auth"
	"github.com/corycamp/support-ticket-backend/internal/shared/constants"
	"github.com/corycamp/support-ticket-backend/internal/shared/errors"
	"github.com/corycamp/support-ticket-backend/internal/shared/logger"
	"github.com/corycamp/support-ticket-backend/internal/shared/utils"
)

type TokenIssuer interface {
	Login(username, password string) (*auth.Token, error)
}

type TokenRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthHandler struct {
	issuer TokenIssuer
	logger logger.Interface
}

func NewAuthHandler(issuer TokenIssuer, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		issuer: issuer,
		logger: logger,
	}
}

// IssueToken handles POST /auth/token
// @Summary Issue an access token for a configured account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Credentials"
// @Success 200 {object} utils.APIResponse{data=auth.Token}
// @Failure 401 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Router /auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(constants.ErrMsgInvalidRequestBody, err.Error()))
		return
	}

	token, err := h.issuer.Login(req.Username, req.Password)
	if err != nil {
		if errors.ShouldLogAuthError(err) {
			h.logger.Warnw("token request failed", "username", req.Username, "error", err)
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("access token issued", "username", req.Username)
	utils.SuccessResponse(c, http.StatusOK, "", token)
}
