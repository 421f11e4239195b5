package ticket

import (
	"context"
	stderrors "errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corycamp/support-ticket-backend/internal/application"
	"github.com/corycamp/support-ticket-backend/internal/application/ticket/dto"
	"github.com/corycamp/support-ticket-backend/internal/domain/shared/store"
	"github.com/corycamp/support-ticket-backend/internal/infrastructure/memstore"
	"github.com/corycamp/support-ticket-backend/internal/interfaces/http/handlers/testutil"
	"github.com/corycamp/support-ticket-backend/internal/shared/logger"
)

type upperRenderer struct{}

func (upperRenderer) Render(s string) string { return strings.ToUpper(s) }

func newHandlers() (*TicketHandler, *CommentHandler) {
	svc := application.NewServices(application.Stores{
		Tickets:  memstore.NewTicketStore(),
		Comments: memstore.NewCommentStore(),
		Users:    memstore.NewUserStore(),
	}, logger.Discard(), application.Options{})
	return NewTicketHandler(svc.Tickets, svc.Comments, nil, logger.Discard()),
		NewCommentHandler(svc.Comments, nil, logger.Discard())
}

func createTicket(t *testing.T, h *TicketHandler, body any) dto.TicketRecordDTO {
	t.Helper()
	c, w := testutil.NewTestContext(http.MethodPost, "/tickets", body)
	h.CreateTicket(c)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var rec dto.TicketRecordDTO
	_, err := testutil.DecodeData(w, &rec)
	require.NoError(t, err)
	return rec
}

func createComment(t *testing.T, h *CommentHandler, ticketID uint, content string) dto.CommentDTO {
	t.Helper()
	c, w := testutil.NewTestContext(http.MethodPost, "/comments", CreateCommentRequest{
		TicketID: ticketID,
		Author:   "agent@example.com",
		Content:  content,
	})
	h.CreateComment(c)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var rec dto.CommentDTO
	_, err := testutil.DecodeData(w, &rec)
	require.NoError(t, err)
	return rec
}

func TestCreateTicket(t *testing.T) {
	th, _ := newHandlers()

	rec := createTicket(t, th, CreateTicketRequest{Title: "Printer jam", Description: "Floor 3"})
	assert.Equal(t, uint(1), rec.ID)
	assert.Equal(t, "Printer jam", rec.Title)
	assert.Equal(t, "medium", rec.Priority)
	assert.Equal(t, "open", rec.Status)
}

func TestCreateTicket_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		body     any
		wantType string
	}{
		{name: "malformed json", body: `{"title":`, wantType: "bad_request"},
		{name: "missing title", body: CreateTicketRequest{Description: "x"}, wantType: "validation_error"},
		{name: "unknown priority", body: CreateTicketRequest{Title: "t", Priority: "urgent"}, wantType: "validation_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th, _ := newHandlers()
			c, w := testutil.NewTestContext(http.MethodPost, "/tickets", tt.body)
			th.CreateTicket(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp, err := testutil.DecodeData(w, nil)
			require.NoError(t, err)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantType, resp.Error.Type)
		})
	}
}

func TestGetTicket_IncludesComments(t *testing.T) {
	th, ch := newHandlers()
	rec := createTicket(t, th, CreateTicketRequest{Title: "VPN down"})
	createComment(t, ch, rec.ID, "C1")
	createComment(t, ch, rec.ID, "C2")

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets/1", nil)
	testutil.SetURLParam(c, "id", "1")
	th.GetTicket(c)
	require.Equal(t, http.StatusOK, w.Code)

	var got dto.TicketDTO
	_, err := testutil.DecodeData(w, &got)
	require.NoError(t, err)
	assert.Equal(t, "VPN down", got.Title)
	require.Len(t, got.Comments, 2)
	assert.Equal(t, "C1", got.Comments[0].Content)
	assert.Equal(t, "C2", got.Comments[1].Content)
}

func TestGetTicket_Errors(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		wantCode int
	}{
		{name: "absent", id: "42", wantCode: http.StatusNotFound},
		{name: "not a number", id: "abc", wantCode: http.StatusBadRequest},
		{name: "zero", id: "0", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th, _ := newHandlers()
			c, w := testutil.NewTestContext(http.MethodGet, "/tickets/"+tt.id, nil)
			testutil.SetURLParam(c, "id", tt.id)
			th.GetTicket(c)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestListTickets_EmptyIsArray(t *testing.T) {
	th, _ := newHandlers()
	c, w := testutil.NewTestContext(http.MethodGet, "/tickets", nil)
	th.ListTickets(c)

	require.Equal(t, http.StatusOK, w.Code)
	resp, err := testutil.DecodeData(w, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(resp.Data))
}

func TestListTicketComments(t *testing.T) {
	th, ch := newHandlers()
	first := createTicket(t, th, CreateTicketRequest{Title: "one"})
	second := createTicket(t, th, CreateTicketRequest{Title: "two"})
	createComment(t, ch, first.ID, "for one")
	createComment(t, ch, second.ID, "for two")

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets/2/comments", nil)
	testutil.SetURLParam(c, "id", "2")
	th.ListTicketComments(c)
	require.Equal(t, http.StatusOK, w.Code)

	var got []dto.CommentDTO
	_, err := testutil.DecodeData(w, &got)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "for two", got[0].Content)
}

func TestUpdateTicketFields(t *testing.T) {
	th, _ := newHandlers()
	createTicket(t, th, CreateTicketRequest{Title: "old", Description: "keep me"})

	c, w := testutil.NewTestContext(http.MethodPut, "/tickets/1/title", UpdateTitleRequest{Title: "new"})
	testutil.SetURLParam(c, "id", "1")
	th.UpdateTitle(c)
	require.Equal(t, http.StatusOK, w.Code)

	c, w = testutil.NewTestContext(http.MethodPut, "/tickets/1/status", UpdateStatusRequest{Status: "closed"})
	testutil.SetURLParam(c, "id", "1")
	th.UpdateStatus(c)
	require.Equal(t, http.StatusOK, w.Code)

	c, w = testutil.NewTestContext(http.MethodPut, "/tickets/1/priority", UpdatePriorityRequest{Priority: "high"})
	testutil.SetURLParam(c, "id", "1")
	th.UpdatePriority(c)
	require.Equal(t, http.StatusOK, w.Code)

	var rec dto.TicketRecordDTO
	_, err := testutil.DecodeData(w, &rec)
	require.NoError(t, err)
	assert.Equal(t, "new", rec.Title)
	assert.Equal(t, "keep me", rec.Description)
	assert.Equal(t, "closed", rec.Status)
	assert.Equal(t, "high", rec.Priority)
}

func TestUpdateTicket_Errors(t *testing.T) {
	th, _ := newHandlers()
	createTicket(t, th, CreateTicketRequest{Title: "t"})

	c, w := testutil.NewTestContext(http.MethodPut, "/tickets/9/description", UpdateDescriptionRequest{Description: "x"})
	testutil.SetURLParam(c, "id", "9")
	th.UpdateDescription(c)
	assert.Equal(t, http.StatusNotFound, w.Code)

	c, w = testutil.NewTestContext(http.MethodPut, "/tickets/1/status", UpdateStatusRequest{Status: "resolved"})
	testutil.SetURLParam(c, "id", "1")
	th.UpdateStatus(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteTicket(t *testing.T) {
	th, _ := newHandlers()
	createTicket(t, th, CreateTicketRequest{Title: "gone soon"})

	c, w := testutil.NewTestContext(http.MethodDelete, "/tickets/1", nil)
	testutil.SetURLParam(c, "id", "1")
	th.DeleteTicket(c)
	require.Equal(t, http.StatusOK, w.Code)

	c, w = testutil.NewTestContext(http.MethodDelete, "/tickets/1", nil)
	testutil.SetURLParam(c, "id", "1")
	th.DeleteTicket(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

type failingTicketService struct {
	TicketService
}

func (failingTicketService) List(context.Context) ([]*dto.TicketDTO, error) {
	return nil, &store.StorageError{Op: "list", Entity: "ticket", Err: stderrors.New("database is locked")}
}

func TestListTickets_StorageFailureHidesDetails(t *testing.T) {
	_, ch := newHandlers()
	th := NewTicketHandler(failingTicketService{}, ch.comments, nil, logger.Discard())

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets", nil)
	th.ListTickets(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "database is locked")
}

func TestCommentLifecycle(t *testing.T) {
	th, ch := newHandlers()
	rec := createTicket(t, th, CreateTicketRequest{Title: "t"})
	created := createComment(t, ch, rec.ID, "first draft")
	assert.Equal(t, rec.ID, created.TicketID)

	c, w := testutil.NewTestContext(http.MethodPut, "/comments/1/content", UpdateContentRequest{Content: "final"})
	testutil.SetURLParam(c, "id", "1")
	ch.UpdateContent(c)
	require.Equal(t, http.StatusOK, w.Code)

	c, w = testutil.NewTestContext(http.MethodGet, "/comments/1", nil)
	testutil.SetURLParam(c, "id", "1")
	ch.GetComment(c)
	require.Equal(t, http.StatusOK, w.Code)
	var got dto.CommentDTO
	_, err := testutil.DecodeData(w, &got)
	require.NoError(t, err)
	assert.Equal(t, "final", got.Content)

	c, w = testutil.NewTestContext(http.MethodDelete, "/comments/1", nil)
	testutil.SetURLParam(c, "id", "1")
	ch.DeleteComment(c)
	require.Equal(t, http.StatusOK, w.Code)

	c, w = testutil.NewTestContext(http.MethodGet, "/comments", nil)
	ch.ListComments(c)
	require.Equal(t, http.StatusOK, w.Code)
	resp, err := testutil.DecodeData(w, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(resp.Data))
}

func TestCreateComment_Rejected(t *testing.T) {
	_, ch := newHandlers()
	c, w := testutil.NewTestContext(http.MethodPost, "/comments", CreateCommentRequest{TicketID: 1, Author: "a@example.com"})
	ch.CreateComment(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCommentHandler_RendersMarkdown(t *testing.T) {
	_, base := newHandlers()
	ch := NewCommentHandler(base.comments, upperRenderer{}, logger.Discard())

	created := createComment(t, ch, 1, "shout")
	assert.Equal(t, "SHOUT", created.ContentHTML)
}
