// Package email sends ticket notifications over SMTP.
package email

import (
	"context"
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"github.com/corycamp/support-ticket-backend/internal/domain/ticket"
	"github.com/corycamp/support-ticket-backend/internal/shared/config"
	"github.com/corycamp/support-ticket-backend/internal/shared/logger"
)

// Sender delivers messages. *gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type Renderer interface {
	Render(source string) string
}

// TicketNotifier mails a summary of every new ticket to one address.
type TicketNotifier struct {
	sender   Sender
	from     string
	fromName string
	to       string
	appName  string
	renderer Renderer
	logger   logger.Interface
}

// NewTicketNotifier returns nil when the configuration has no SMTP host or
// no recipient.
func NewTicketNotifier(cfg config.EmailConfig, appName string, renderer Renderer, log logger.Interface) *TicketNotifier {
	if !cfg.NotificationsEnabled() {
		return nil
	}
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	return newTicketNotifier(dialer, cfg, appName, renderer, log)
}

func newTicketNotifier(sender Sender, cfg config.EmailConfig, appName string, renderer Renderer, log logger.Interface) *TicketNotifier {
	return &TicketNotifier{
		sender:   sender,
		from:     cfg.FromAddress,
		fromName: cfg.FromName,
		to:       cfg.NotifyAddress,
		appName:  appName,
		renderer: renderer,
		logger:   log,
	}
}

func (n *TicketNotifier) TicketCreated(ctx context.Context, t *ticket.Ticket) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := n.buildMessage(t)
	if err := n.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	n.logger.Debugw("ticket notification sent", "ticket_id", t.ID)
	return nil
}

func (n *TicketNotifier) buildMessage(t *ticket.Ticket) *gomail.Message {
	subject := fmt.Sprintf("[%s] New ticket #%d: %s", n.appName, t.ID, t.Title)

	description := html.EscapeString(t.Description)
	if n.renderer != nil {
		description = n.renderer.Render(t.Description)
	}

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Ticket #%d: %s</h2>
			<p>Priority: %s<br>Status: %s</p>
			%s
		</body>
		</html>
	`, t.ID, html.EscapeString(t.Title), t.Priority, t.Status, description)

	plainBody := fmt.Sprintf(`
Ticket #%d: %s

Priority: %s
Status: %s

%s
	`, t.ID, t.Title, t.Priority, t.Status, t.Description)

	m := gomail.NewMessage()
	m.SetAddressHeader("From", n.from, n.fromName)
	m.SetHeader("To", n.to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)
	return m
}
