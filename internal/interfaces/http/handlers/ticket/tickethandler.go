package ticket

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	ticketapp "github.com/corycamp/support-ticket-backend/internal/application/ticket"
	"github.com/corycamp/support-ticket-backend/internal/application/ticket/dto"
	domain "github.com/corycamp/support-ticket-backend/internal/domain/ticket"
	"github.com/corycamp/support-ticket-backend/internal/shared/constants"
	"github.com/corycamp/support-ticket-backend/internal/shared/errors"
	"github.com/corycamp/support-ticket-backend/internal/shared/logger"
	"github.com/corycamp/support-ticket-backend/internal/shared/utils"
)

type TicketService interface {
	Create(ctx context.Context, cmd ticketapp.CreateTicketCommand) (*domain.Ticket, error)
	Get(ctx context.Context, id uint) (*dto.TicketDTO, error)
	List(ctx context.Context) ([]*dto.TicketDTO, error)
	UpdateTitle(ctx context.Context, id uint, title string) (*domain.Ticket, error)
	UpdateDescription(ctx context.Context, id uint, description string) (*domain.Ticket, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*domain.Ticket, error)
	UpdatePriority(ctx context.Context, id uint, priority string) (*domain.Ticket, error)
	Delete(ctx context.Context, id uint) (*domain.Ticket, error)
}

type TicketHandler struct {
	tickets  TicketService
	comments CommentService
	renderer dto.Renderer
	logger   logger.Interface
}

func NewTicketHandler(tickets TicketService, comments CommentService, renderer dto.Renderer, logger logger.Interface) *TicketHandler {
	return &TicketHandler{
		tickets:  tickets,
		comments: comments,
		renderer: renderer,
		logger:   logger,
	}
}

// CreateTicket handles POST /tickets
// @Summary Create ticket
// @Tags Tickets
// @Accept json
// @Produce json
// @Param request body CreateTicketRequest true "Ticket"
// @Success 201 {object} utils.APIResponse{data=dto.TicketRecordDTO}
// @Failure 400 {object} utils.APIResponse
// @Router /tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	t, err := h.tickets.Create(c.Request.Context(), ticketapp.CreateTicketCommand{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.ToTicketRecordDTO(t, h.renderer), "Ticket created successfully")
}

// ListTickets handles GET /tickets
// @Summary List tickets with their comments
// @Tags Tickets
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]dto.TicketDTO}
// @Router /tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	tickets, err := h.tickets.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", tickets)
}

// GetTicket handles GET /tickets/:id
// @Summary Get ticket with its comments
// @Tags Tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse{data=dto.TicketDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	t, err := h.tickets.Get(c.Request.Context(), ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if t == nil {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError(constants.ErrMsgTicketNotFound))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", t)
}

// ListTicketComments handles GET /tickets/:id/comments
// @Summary List the comments of a ticket
// @Tags Tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse{data=[]dto.CommentDTO}
// @Router /tickets/{id}/comments [get]
func (h *TicketHandler) ListTicketComments(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	comments, err := h.comments.ListForTicket(c.Request.Context(), ticketID)
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

// UpdateTitle handles PUT /tickets/:id/title
// @Summary Update ticket title
// @Tags Tickets
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param request body UpdateTitleRequest true "Title"
// @Success 200 {object} utils.APIResponse{data=dto.TicketRecordDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{id}/title [put]
func (h *TicketHandler) UpdateTitle(c *gin.Context) {
	var req UpdateTitleRequest
	h.update(c, &req, func(ctx context.Context, id uint) (*domain.Ticket, error) {
		return h.tickets.UpdateTitle(ctx, id, req.Title)
	})
}

// UpdateDescription handles PUT /tickets/:id/description
// @Summary Update ticket description
// @Tags Tickets
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param request body UpdateDescriptionRequest true "Description"
// @Success 200 {object} utils.APIResponse{data=dto.TicketRecordDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{id}/description [put]
func (h *TicketHandler) UpdateDescription(c *gin.Context) {
	var req UpdateDescriptionRequest
	h.update(c, &req, func(ctx context.Context, id uint) (*domain.Ticket, error) {
		return h.tickets.UpdateDescription(ctx, id, req.Description)
	})
}

// UpdateStatus handles PUT /tickets/:id/status
// @Summary Update ticket status
// @Tags Tickets
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param request body UpdateStatusRequest true "Status"
// @Success 200 {object} utils.APIResponse{data=dto.TicketRecordDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{id}/status [put]
func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	h.update(c, &req, func(ctx context.Context, id uint) (*domain.Ticket, error) {
		return h.tickets.UpdateStatus(ctx, id, req.Status)
	})
}

// UpdatePriority handles PUT /tickets/:id/priority
// @Summary Update ticket priority
// @Tags Tickets
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param request body UpdatePriorityRequest true "Priority"
// @Success 200 {object} utils.APIResponse{data=dto.TicketRecordDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{id}/priority [put]
func (h *TicketHandler) UpdatePriority(c *gin.Context) {
	var req UpdatePriorityRequest
	h.update(c, &req, func(ctx context.Context, id uint) (*domain.Ticket, error) {
		return h.tickets.UpdatePriority(ctx, id, req.Priority)
	})
}

// DeleteTicket handles DELETE /tickets/:id
// @Summary Delete ticket
// @Tags Tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse{data=dto.TicketRecordDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{id} [delete]
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	t, err := h.tickets.Delete(c.Request.Context(), ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if t == nil {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError(constants.ErrMsgTicketNotFound))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket deleted successfully", dto.ToTicketRecordDTO(t, h.renderer))
}

func (h *TicketHandler) update(c *gin.Context, req any, apply func(ctx context.Context, id uint) (*domain.Ticket, error)) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := bindJSON(c, req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	t, err := apply(c.Request.Context(), ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if t == nil {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError(constants.ErrMsgTicketNotFound))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", dto.ToTicketRecordDTO(t, h.renderer))
}
