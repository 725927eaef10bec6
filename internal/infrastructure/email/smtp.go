package email

import (
	"fmt"
	"html"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/deskhub/deskhub/internal/shared/config"
)

type SMTPConfig struct {
	Enabled     bool
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

func ConfigFrom(cfg config.EmailConfig) SMTPConfig {
	return SMTPConfig{
		Enabled:     cfg.Enabled,
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		Username:    cfg.SMTPUser,
		Password:    cfg.SMTPPassword,
		FromAddress: cfg.FromAddress,
		FromName:    cfg.FromName,
	}
}

// dialer is the part of gomail.Dialer the service uses.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPEmailService sends the email copy of notifications.
type SMTPEmailService struct {
	config SMTPConfig
	dialer dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	return &SMTPEmailService{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

// IsEnabled is false unless SMTP is switched on and has a host and sender.
func (s *SMTPEmailService) IsEnabled() bool {
	return s.config.Enabled && s.config.Host != "" && s.config.FromAddress != ""
}

func (s *SMTPEmailService) Send(to, subject, plainBody string) error {
	if !s.IsEnabled() {
		return fmt.Errorf("email delivery is disabled")
	}
	if err := s.dialer.DialAndSend(s.buildMessage(to, subject, plainBody)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *SMTPEmailService) buildMessage(to, subject, plainBody string) *gomail.Message {
	m := gomail.NewMessage()
	if s.config.FromName != "" {
		m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	} else {
		m.SetHeader("From", s.config.FromAddress)
	}
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", renderHTML(subject, plainBody))
	return m
}

func renderHTML(subject, plainBody string) string {
	var b strings.Builder
	b.WriteString("<html><body>")
	b.WriteString("<h2>" + html.EscapeString(subject) + "</h2>")
	for _, line := range strings.Split(plainBody, "\n") {
		b.WriteString("<p>" + html.EscapeString(line) + "</p>")
	}
	b.WriteString("<p style=\"color:#888\">You receive this because notifications are enabled in your DeskHub profile.</p>")
	b.WriteString("</body></html>")
	return b.String()
}
