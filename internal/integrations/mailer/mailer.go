package mailer

import (
	"fmt"
	"net/smtp"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config настройки SMTP-подключения
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

// Mailer отправляет HTML-письма через SMTP
type Mailer struct {
	cfg Config
	log Logger
}

// NewMailer создает новый экземпляр SMTP-мейлера
func NewMailer(cfg Config, log Logger) *Mailer {
	return &Mailer{cfg: cfg, log: log}
}

// Send отправляет HTML-письмо одному получателю
func (m *Mailer) Send(to, subject, htmlBody string) error {
	var auth smtp.Auth
	if m.cfg.Username != "" && m.cfg.Password != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	msg := []byte(
		fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n", m.cfg.Sender, to, subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=UTF-8\r\n\r\n" +
			htmlBody,
	)

	if err := smtp.SendMail(addr, auth, m.cfg.Sender, []string{to}, msg); err != nil {
		m.log.Error("SMTP send to %s via %s failed: %v", to, addr, err)
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	m.log.Info("Email sent to %s via %s", to, addr)
	return nil
}
