package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"ticketd/internal/shared/config"
)

// SMTPNotifier delivers notification mail over SMTP.
type SMTPNotifier struct {
	config config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPNotifier(cfg config.EmailConfig) *SMTPNotifier {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &SMTPNotifier{
		config: cfg,
		dialer: dialer,
	}
}

func (s *SMTPNotifier) SendWelcomeEmail(to, name string) error {
	subject := "Welcome to Ticketd"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome, %s!</h2>
			<p>Your account has been created. You can now sign in and start
			tracking tickets.</p>
			<p>If you didn't create an account, please ignore this email.</p>
		</body>
		</html>
	`, name)

	plainBody := fmt.Sprintf(`
Welcome, %s!

Your account has been created. You can now sign in and start tracking tickets.

If you didn't create an account, please ignore this email.
	`, name)

	return s.send(to, subject, htmlBody, plainBody)
}

func (s *SMTPNotifier) SendTicketAssignedEmail(to, ticketName string) error {
	subject := fmt.Sprintf("Ticket assigned to you: %s", ticketName)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>You have a new ticket</h2>
			<p>The ticket <strong>%s</strong> has been assigned to you.</p>
		</body>
		</html>
	`, ticketName)

	plainBody := fmt.Sprintf(`
You have a new ticket.

The ticket %q has been assigned to you.
	`, ticketName)

	return s.send(to, subject, htmlBody, plainBody)
}

func (s *SMTPNotifier) send(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	return nil
}
