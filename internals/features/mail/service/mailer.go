package service

import (
	"fmt"
	"strconv"

	"buildops_backend/internals/configs"

	gomail "gopkg.in/gomail.v2"
)

// Mailer wraps the SMTP dialer. Send is an interface point so the scheduler
// and controllers can be tested with a fake.
type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
}

type Sender interface {
	Send(to, subject, body string) error
}

func NewMailerFromEnv() *Mailer {
	port, err := strconv.Atoi(configs.GetEnv("SMTP_PORT", "587"))
	if err != nil {
		port = 587
	}
	return &Mailer{
		host: configs.SMTPHost,
		port: port,
		user: configs.SMTPUser,
		pass: configs.GetEnv("SMTP_PASS"),
		from: configs.GetEnv("MAIL_FROM", configs.SMTPUser),
	}
}

func (m *Mailer) Send(to, subject, body string) error {
	if m.host == "" {
		return fmt.Errorf("smtp not configured")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	return d.DialAndSend(msg)
}
