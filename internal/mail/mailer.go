package mail

import "gopkg.in/gomail.v2"

// Mailer sends a single plaintext message. Delivery errors propagate to the
// caller; there are no retries.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer delivers through an SMTP relay with one sender credential.
// The sender address doubles as the From header.
type SMTPMailer struct {
	Host     string
	Port     int
	User     string
	Password string
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.User)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.Host, m.Port, m.User, m.Password)
	return d.DialAndSend(msg)
}
