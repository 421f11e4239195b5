package email

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/corycamp/support-ticket-backend/internal/domain/ticket"
	vo "github.com/corycamp/support-ticket-backend/internal/domain/ticket/valueobjects"
	"github.com/corycamp/support-ticket-backend/internal/shared/config"
	"github.com/corycamp/support-ticket-backend/internal/shared/logger"
)

type mockSender struct {
	sent []*gomail.Message
	err  error
}

func (m *mockSender) DialAndSend(msgs ...*gomail.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msgs...)
	return nil
}

var testEmailConfig = config.EmailConfig{
	SMTPHost:      "smtp.example.com",
	SMTPPort:      587,
	FromAddress:   "desk@example.com",
	FromName:      "Support Desk",
	NotifyAddress: "team@example.com",
}

func TestNewTicketNotifier_Disabled(t *testing.T) {
	assert.Nil(t, NewTicketNotifier(config.EmailConfig{}, "desk", nil, logger.Discard()))
	assert.Nil(t, NewTicketNotifier(config.EmailConfig{SMTPHost: "smtp.example.com"}, "desk", nil, logger.Discard()))
	assert.NotNil(t, NewTicketNotifier(testEmailConfig, "desk", nil, logger.Discard()))
}

func TestTicketNotifier_TicketCreated(t *testing.T) {
	sender := &mockSender{}
	n := newTicketNotifier(sender, testEmailConfig, "Support Desk", nil, logger.Discard())

	tk := &ticket.Ticket{ID: 7, Title: "VPN <down>", Description: "since 9am", Priority: vo.PriorityHigh, Status: vo.StatusOpen}
	require.NoError(t, n.TicketCreated(context.Background(), tk))

	require.Len(t, sender.sent, 1)
	m := sender.sent[0]
	assert.Equal(t, []string{"team@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"[Support Desk] New ticket #7: VPN <down>"}, m.GetHeader("Subject"))
	require.Len(t, m.GetHeader("From"), 1)
	assert.Contains(t, m.GetHeader("From")[0], "desk@example.com")
}

func TestTicketNotifier_SendFailure(t *testing.T) {
	sender := &mockSender{err: errors.New("connection refused")}
	n := newTicketNotifier(sender, testEmailConfig, "desk", nil, logger.Discard())

	err := n.TicketCreated(context.Background(), &ticket.Ticket{ID: 1, Title: "t"})
	assert.ErrorContains(t, err, "connection refused")
}

func TestTicketNotifier_CancelledContext(t *testing.T) {
	sender := &mockSender{}
	n := newTicketNotifier(sender, testEmailConfig, "desk", nil, logger.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, n.TicketCreated(ctx, &ticket.Ticket{ID: 1, Title: "t"}), context.Canceled)
	assert.Empty(t, sender.sent)
}
