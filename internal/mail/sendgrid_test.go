package mail

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sendgrid/rest"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type fakeSendClient struct {
	sent   *sgmail.SGMailV3
	status int
	err    error
}

func (f *fakeSendClient) SendWithContext(ctx context.Context, email *sgmail.SGMailV3) (*rest.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = email
	return &rest.Response{StatusCode: f.status}, nil
}

func TestSendTemplated(t *testing.T) {
	fake := &fakeSendClient{status: 202}
	sender := &Sender{client: fake, fromMail: "no-reply@ong.com", fromName: "Somos Mas"}

	err := sender.SendTemplated(context.Background(), "user@ong.com", "Welcome", "<p>Hi there</p>", "<a href=\"/contact\">Reach us</a>")
	if err != nil {
		t.Fatal(err)
	}
	if fake.sent == nil {
		t.Fatal("nothing was sent")
	}

	if fake.sent.From.Address != "no-reply@ong.com" || fake.sent.From.Name != "Somos Mas" {
		t.Errorf("from = %+v", fake.sent.From)
	}
	if got := fake.sent.Personalizations[0].To[0].Address; got != "user@ong.com" {
		t.Errorf("to = %q", got)
	}
	if fake.sent.Subject != "Welcome" {
		t.Errorf("subject = %q", fake.sent.Subject)
	}

	var html string
	for _, c := range fake.sent.Content {
		if c.Type == "text/html" {
			html = c.Value
		}
	}
	for _, fragment := range []string{"<h2>Welcome</h2>", "<p>Hi there</p>", "Reach us"} {
		if !strings.Contains(html, fragment) {
			t.Errorf("rendered html is missing %q", fragment)
		}
	}
	if strings.Contains(html, "{{") {
		t.Error("rendered html still contains placeholders")
	}
}

func TestSendTemplatedFailures(t *testing.T) {
	t.Run("transport error", func(t *testing.T) {
		sender := &Sender{client: &fakeSendClient{err: errors.New("dns")}, fromMail: "a@b.c"}
		if err := sender.SendTemplated(context.Background(), "x@y.z", "t", "b", ""); err == nil {
			t.Error("expected an error")
		}
	})

	t.Run("rejection status", func(t *testing.T) {
		sender := &Sender{client: &fakeSendClient{status: 401}, fromMail: "a@b.c"}
		err := sender.SendTemplated(context.Background(), "x@y.z", "t", "b", "")
		if err == nil || !strings.Contains(err.Error(), "status 401") {
			t.Errorf("err = %v, want status in message", err)
		}
	})
}
