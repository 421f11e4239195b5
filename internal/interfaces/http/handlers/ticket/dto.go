package ticket

import (
	"github.com/gin-gonic/gin"

	"github.com/corycamp/support-ticket-backend/internal/shared/constants"
	"github.com/corycamp/support-ticket-backend/internal/shared/errors"
	"github.com/corycamp/support-ticket-backend/internal/shared/utils"
)

type CreateTicketRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority,omitempty"`
	Status      string `json:"status,omitempty"`
}

type UpdateTitleRequest struct {
	Title string `json:"title"`
}

type UpdateDescriptionRequest struct {
	Description string `json:"description"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type UpdatePriorityRequest struct {
	Priority string `json:"priority"`
}

type CreateCommentRequest struct {
	TicketID uint   `json:"ticket_id"`
	Author   string `json:"author"`
	Content  string `json:"content"`
}

type UpdateContentRequest struct {
	Content string `json:"content"`
}

// bindJSON decodes the body. Field rules are enforced by the services so
// that the HTTP and seed paths report the same messages.
func bindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return errors.NewBadRequestError(constants.ErrMsgInvalidRequestBody, err.Error())
	}
	return nil
}

func parseTicketID(c *gin.Context) (uint, error) {
	return utils.ParseUintParam(c, "id", "ticket")
}

func parseCommentID(c *gin.Context) (uint, error) {
	return utils.ParseUintParam(c, "id", "comment")
}
