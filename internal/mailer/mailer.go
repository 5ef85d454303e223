package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

// Mailer sends verification codes over SMTP.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// New creates a Mailer. Host and from address are required.
func New(host string, port int, username, password, from string) (*Mailer, error) {
	if host == "" {
		return nil, fmt.Errorf("SMTP host is required")
	}
	if from == "" {
		return nil, fmt.Errorf("SMTP from address is required")
	}

	return &Mailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}, nil
}

// SendCode emails a verification code to the given address.
func (m *Mailer) SendCode(ctx context.Context, toEmail, code string) error {
	msg := mail.NewMsg()

	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("setting from address: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("setting to address: %w", err)
	}

	msg.Subject("Verify Your Account")
	msg.SetBodyString(mail.TypeTextPlain,
		fmt.Sprintf("Hey there, please verify your account before moving on. Your code is %s", code))

	opts := []mail.Option{
		mail.WithPort(m.port),
	}
	if m.username != "" && m.password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.username),
			mail.WithPassword(m.password),
		)
	}

	client, err := mail.NewClient(m.host, opts...)
	if err != nil {
		return fmt.Errorf("creating mail client: %w", err)
	}

	return client.DialAndSendWithContext(ctx, msg)
}
