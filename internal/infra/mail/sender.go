package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

var welcomeTemplate = template.Must(template.New("welcome").Parse(
	`<p>Hi,</p>
<p>Your CRM dashboard account <b>{{.Email}}</b> is ready. Log in to start working your leads.</p>`,
))

// SendWelcome mails a signup confirmation. Failures are the caller's to
// log; signup never depends on this succeeding.
func (s *EmailSender) SendWelcome(to string) error {
	var body bytes.Buffer
	if err := welcomeTemplate.Execute(&body, struct{ Email string }{Email: to}); err != nil {
		return fmt.Errorf("rendering welcome mail: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Welcome to your CRM dashboard")
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("sending welcome mail: %w", err)
	}

	return nil
}
