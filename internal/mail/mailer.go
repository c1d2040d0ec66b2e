package mail

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/smtp"
	"time"

	gomail "github.com/emersion/go-message/mail"

	"task-reminder/internal/config"
)

// Transport sends a rendered email to one recipient.
type Transport interface {
	Send(ctx context.Context, to, subject, html string) error
}

// SMTPMailer delivers mail over plain SMTP with optional auth.
type SMTPMailer struct {
	cfg config.SMTP
}

func NewSMTPMailer(cfg config.SMTP) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send builds an HTML MIME message and submits it to the configured
// relay. The ctx is honored up to the point the SMTP dialog starts.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, html string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg, err := buildMessage(m.cfg.From, to, subject, html)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}
	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

func buildMessage(from, to, subject, html string) ([]byte, error) {
	var header gomail.Header
	header.SetDate(time.Now())
	header.SetAddressList("From", []*gomail.Address{{Address: from}})
	header.SetAddressList("To", []*gomail.Address{{Address: to}})
	header.SetSubject(subject)
	header.SetContentType("text/html", map[string]string{"charset": "utf-8"})

	var buf bytes.Buffer
	w, err := gomail.CreateSingleInlineWriter(&buf, header)
	if err != nil {
		return nil, fmt.Errorf("build message: %w", err)
	}
	if _, err := io.WriteString(w, html); err != nil {
		w.Close()
		return nil, fmt.Errorf("write message body: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finish message: %w", err)
	}
	return buf.Bytes(), nil
}
