package email

import (
	"fmt"

	"jobboard_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPProvider реализует Provider через gomail
type SMTPProvider struct {
	cfg *config.Config
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", p.cfg.Email.FromEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

func (p *SMTPProvider) SendWelcome(to, fullname string) error {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your account has been created. You can now browse and apply to jobs.</p>",
		fullname,
	)
	return p.Send(to, "Welcome to the job board", body)
}

func (p *SMTPProvider) SendApplicationStatus(to, fullname, jobTitle, status string) error {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your application for <b>%s</b> has been <b>%s</b>.</p>",
		fullname, jobTitle, status,
	)
	return p.Send(to, fmt.Sprintf("Application update: %s", jobTitle), body)
}
