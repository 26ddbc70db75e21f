package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/hossamaboassi/Busylancer/config"
)

// Service sends notification emails via SMTP. Delivery is fire-and-forget:
// callers log failures but never abort the request on them.
type Service struct {
	host     string
	port     string
	username string
	password string
	from     string
	fromName string
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFromEmail,
		fromName: cfg.SMTPFromName,
	}
}

const welcomeTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Welcome to Busylancer</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h1 style="color: #0066cc;">Welcome to Busylancer, {{.FirstName}}!</h1>
        <p>Your {{.UserType}} account has been created.</p>
        <p>Please verify your email address to unlock all features.</p>
        <p style="color: #888; font-size: 12px;">If you did not register, you can ignore this email.</p>
    </div>
</body>
</html>`

const newApplicationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Application</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h1 style="color: #0066cc;">New application received</h1>
        <p><b>{{.CandidateName}}</b> applied to your job <b>{{.JobTitle}}</b>.</p>
        <p>Log in to your dashboard to review the application.</p>
    </div>
</body>
</html>`

func (s *Service) SendWelcome(to, firstName, userType string) error {
	body, err := render("welcome", welcomeTemplate, map[string]string{
		"FirstName": firstName,
		"UserType":  userType,
	})
	if err != nil {
		return err
	}
	return s.send(to, "Welcome to Busylancer", body)
}

func (s *Service) SendNewApplication(to, candidateName, jobTitle string) error {
	body, err := render("new_application", newApplicationTemplate, map[string]string{
		"CandidateName": candidateName,
		"JobTitle":      jobTitle,
	})
	if err != nil {
		return err
	}
	return s.send(to, fmt.Sprintf("New application for %s", jobTitle), body)
}

func (s *Service) send(to, subject, htmlBody string) error {
	msg := []byte(fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromName,
		s.from,
		to,
		subject,
		htmlBody,
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.from, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// IsConfigured checks if the service has valid SMTP configuration
func (s *Service) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

func render(name, tmpl string, data interface{}) (string, error) {
	t, err := template.New(name).Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse email template: %w", err)
	}
	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}
