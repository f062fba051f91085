package utils

import (
	"gopkg.in/gomail.v2"

	"tourism-api/configs"
)

// Mailer is the outbound mail channel. Handlers receive it as a parameter so
// tests can substitute a recording fake.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// SMTPMailer delivers through an SMTP relay. A dialer is built per send;
// message volume is low enough that pooling the connection is not worth it.
type SMTPMailer struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func NewSMTPMailerFromEnv() *SMTPMailer {
	return &SMTPMailer{
		Host:     configs.EnvSMTPHost(),
		Port:     configs.EnvSMTPPort(),
		Username: configs.EnvSMTPUser(),
		Password: configs.EnvSMTPPassword(),
		From:     configs.EnvMailFrom(),
	}
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(m.Host, m.Port, m.Username, m.Password)
	return dialer.DialAndSend(msg)
}
