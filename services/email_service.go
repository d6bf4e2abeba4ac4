package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"contenthub-api/config"
)

// EmailService sends transactional mail through the configured SMTP relay.
type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	return &EmailService{
		config: cfg,
		dialer: dialer,
	}
}

// SendWelcomeEmail greets a freshly registered user. Failures are the
// caller's problem to log; registration itself must not depend on mail.
func (es *EmailService) SendWelcomeEmail(email, name string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Welcome to ContentHub")

	body := fmt.Sprintf(`
		<h2>Welcome, %s!</h2>
		<p>Your account is ready. You can start writing posts, attaching
		content blocks and commenting right away.</p>
		<p>— The ContentHub team</p>`, name)
	m.SetBody("text/html", body)

	return es.dialer.DialAndSend(m)
}
