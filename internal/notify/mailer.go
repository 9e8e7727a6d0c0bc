package notify

import (
	"fmt"
	"os"
	"strconv"

	// Load .env file to environments
	_ "github.com/joho/godotenv/autoload"
	"gopkg.in/gomail.v2"
)

// Mailer sends one application notification to the employer.
type Mailer interface {
	Send(n ApplicationNotification) error
}

// SMTPMailer delivers notification mail through an SMTP relay using gomail.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer builds a mailer from SMTP_HOST, SMTP_PORT, SMTP_USERNAME,
// SMTP_PASSWORD and MAIL_FROM environment variables.
func NewSMTPMailer() *SMTPMailer {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "localhost"
	}
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	from := os.Getenv("MAIL_FROM")
	if from == "" {
		from = "Talent Bridge <noreply@talentbridge.com>"
	}

	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD")),
		from:   from,
	}
}

// Send builds the fixed-template multipart message and pushes it to the relay.
func (m *SMTPMailer) Send(n ApplicationNotification) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", n.EmployerEmail)
	msg.SetHeader("Subject", subjectLine(n))
	msg.SetBody("text/plain", textBody(n))
	msg.AddAlternative("text/html", htmlBody(n))

	return m.dialer.DialAndSend(msg)
}

func subjectLine(n ApplicationNotification) string {
	return fmt.Sprintf("New Application: %s", n.JobTitle)
}

// textBody is the plain version for simple email clients
func textBody(n ApplicationNotification) string {
	return fmt.Sprintf("Hi! A new candidate (%s) has applied for your position: %s.", n.CandidateEmail, n.JobTitle)
}

func htmlBody(n ApplicationNotification) string {
	return fmt.Sprintf(`<h3>New Application Received!</h3>
<p>You have a new applicant for <strong>%s</strong>.</p>
<p><strong>Candidate Email:</strong> %s</p>
<p>Log in to your dashboard to review their cover letter and profile.</p>
<br>
<p>Best regards,<br>Talent Bridge Team</p>`, n.JobTitle, n.CandidateEmail)
}
