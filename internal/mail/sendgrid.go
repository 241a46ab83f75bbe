// Package mail delivers transactional email through SendGrid.
package mail

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// template is the shared HTML shell for every outgoing message. Placeholders
// are replaced per send.
const template = `<html>
<body style="font-family: sans-serif;">
  <h2>{{TITLE}}</h2>
  <div>{{BODY}}</div>
  <hr>
  <p>{{CONTACT}}</p>
</body>
</html>`

// Config holds the SendGrid credentials and sender identity.
type Config struct {
	APIKey   string
	FromMail string
	FromName string
}

// sendClient is the slice of the SendGrid client used here. Narrowed for tests.
type sendClient interface {
	SendWithContext(ctx context.Context, email *sgmail.SGMailV3) (*rest.Response, error)
}

// Sender implements domain.EmailSender over SendGrid.
type Sender struct {
	client   sendClient
	fromMail string
	fromName string
}

// NewSender creates a Sender from the given configuration. A missing API key
// is not an error here: delivery failures surface per send, where every
// caller treats them as non-fatal.
func NewSender(cfg Config) *Sender {
	return &Sender{
		client:   sendgrid.NewSendClient(cfg.APIKey),
		fromMail: cfg.FromMail,
		fromName: cfg.FromName,
	}
}

// SendTemplated renders the shared template with the given title, body, and
// contact fragments and delivers it to the recipient.
func (s *Sender) SendTemplated(ctx context.Context, to, title, bodyHTML, contactHTML string) error {
	html := strings.NewReplacer(
		"{{TITLE}}", title,
		"{{BODY}}", bodyHTML,
		"{{CONTACT}}", contactHTML,
	).Replace(template)

	msg := sgmail.NewSingleEmail(
		sgmail.NewEmail(s.fromName, s.fromMail),
		title,
		sgmail.NewEmail("", to),
		bodyHTML,
		html,
	)

	resp, err := s.client.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("send mail to %s: status %d", to, resp.StatusCode)
	}
	return nil
}
