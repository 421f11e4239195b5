package ticket

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	commentapp "github.com/corycamp/support-ticket-backend/internal/application/comment"
	"github.com/corycamp/support-ticket-backend/internal/application/ticket/dto"
	domain "github.com/corycamp/support-ticket-backend/internal/domain/ticket"
	"github.com/corycamp/support-ticket-backend/internal/shared/constants"
	"github.com/corycamp/support-ticket-backend/internal/shared/errors"
	"github.com/corycamp/support-ticket-backend/internal/shared/logger"
	"github.com/corycamp/support-ticket-backend/internal/shared/utils"
)

type CommentService interface {
	Create(ctx context.Context, cmd commentapp.CreateCommentCommand) (*domain.Comment, error)
	Get(ctx context.Context, id uint) (*domain.Comment, error)
	List(ctx context.Context) ([]*domain.Comment, error)
	ListForTicket(ctx context.Context, ticketID uint) ([]*domain.Comment, error)
	UpdateContent(ctx context.Context, id uint, content string) (*domain.Comment, error)
	Delete(ctx context.Context, id uint) (*domain.Comment, error)
}

type CommentHandler struct {
	comments CommentService
	renderer dto.Renderer
	logger   logger.Interface
}

func NewCommentHandler(comments CommentService, renderer dto.Renderer, logger logger.Interface) *CommentHandler {
	return &CommentHandler{
		comments: comments,
		renderer: renderer,
		logger:   logger,
	}
}

// CreateComment handles POST /comments
// @Summary Create comment
// @Tags Comments
// @Accept json
// @Produce json
// @Param request body CreateCommentRequest true "Comment"
// @Success 201 {object} utils.APIResponse{data=dto.CommentDTO}
// @Failure 400 {object} utils.APIResponse
// @Router /comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req CreateCommentRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create comment", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	comment, err := h.comments.Create(c.Request.Context(), commentapp.CreateCommentCommand{
		TicketID: req.TicketID,
		Author:   req.Author,
		Content:  req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.ToCommentDTO(comment, h.renderer), "Comment created successfully")
}

// ListComments handles GET /comments
// @Summary List comments
// @Tags Comments
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]dto.CommentDTO}
// @Router /comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	comments, err := h.comments.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result := dto.ToCommentDTOs(comments, h.renderer)
	if result == nil {
		result = []*dto.CommentDTO{}
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetComment handles GET /comments/:id
// @Summary Get comment
// @Tags Comments
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} utils.APIResponse{data=dto.CommentDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /comments/{id} [get]
func (h *CommentHandler) GetComment(c *gin.Context) {
	commentID, err := parseCommentID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	comment, err := h.comments.Get(c.Request.Context(), commentID)
	h.respond(c, comment, err, "")
}

// UpdateContent handles PUT /comments/:id/content
// @Summary Update comment content
// @Tags Comments
// @Accept json
// @Produce json
// @Param id path int true "Comment ID"
// @Param request body UpdateContentRequest true "Content"
// @Success 200 {object} utils.APIResponse{data=dto.CommentDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /comments/{id}/content [put]
func (h *CommentHandler) UpdateContent(c *gin.Context) {
	commentID, err := parseCommentID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateContentRequest
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	comment, err := h.comments.UpdateContent(c.Request.Context(), commentID, req.Content)
	h.respond(c, comment, err, "Comment updated successfully")
}

// DeleteComment handles DELETE /comments/:id
// @Summary Delete comment
// @Tags Comments
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} utils.APIResponse{data=dto.CommentDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := parseCommentID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	comment, err := h.comments.Delete(c.Request.Context(), commentID)
	h.respond(c, comment, err, "Comment deleted successfully")
}

func (h *CommentHandler) respond(c *gin.Context, comment *domain.Comment, err error, message string) {
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if comment == nil {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError(constants.ErrMsgCommentNotFound))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, message, dto.ToCommentDTO(comment, h.renderer))
}
