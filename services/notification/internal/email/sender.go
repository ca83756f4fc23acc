// Package email доставка писем: отправители и асинхронный диспетчер
package email

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=Sender --dir=. --output=./mocks --outpkg=mocks

// Mail готовое к отправке письмо
type Mail struct {
	To      string
	Subject string
	HTML    string
}

// Sender доставляет письмо получателю
type Sender interface {
	Send(ctx context.Context, m Mail) error
}

// SMTPConfig параметры SMTP-сервера
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// SMTPSender отправляет письма через SMTP
type SMTPSender struct {
	logger *zap.Logger
	cfg    SMTPConfig
}

// NewSMTPSender создаёт SMTP sender
func NewSMTPSender(logger *zap.Logger, cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{
		logger: logger,
		cfg:    cfg,
	}
}

// Send отправляет письмо; соединение открывается на каждое письмо
func (s *SMTPSender) Send(ctx context.Context, m Mail) error {
	msg, err := buildMessage(s.cfg.From, m)
	if err != nil {
		return err
	}

	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if s.cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(s.cfg.Timeout))
	}
	if s.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}

	client, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Debug("email sent", zap.String("to", m.To), zap.String("subject", m.Subject))
	return nil
}

func buildMessage(from string, m Mail) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(m.To); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(m.Subject)
	msg.SetBodyString(mail.TypeTextHTML, m.HTML)
	return msg, nil
}

// NoOpSender ничего не отправляет, только пишет в лог (почта отключена)
type NoOpSender struct {
	logger *zap.Logger
}

// NewNoOpSender создаёт no-op sender
func NewNoOpSender(logger *zap.Logger) *NoOpSender {
	return &NoOpSender{
		logger: logger,
	}
}

// Send только логирует письмо
func (s *NoOpSender) Send(ctx context.Context, m Mail) error {
	s.logger.Info("no-op sender: email not sent",
		zap.String("to", m.To),
		zap.String("subject", m.Subject),
		zap.String("body_preview", truncate(m.HTML, 50)),
	)
	return nil
}

// truncate обрезает s до maxLen символов (рун)
func truncate(s string, maxLen int) string {
	n := 0
	for i := range s {
		if n == maxLen {
			return s[:i] + "..."
		}
		n++
	}
	return s
}
