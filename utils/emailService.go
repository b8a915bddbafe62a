package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailService sends transactional mail through SendGrid
type EmailService struct {
	client     *sendgrid.Client
	senderMail string
	senderName string
}

// NewEmailService builds the mailer from the SendGrid API key
func NewEmailService(apiKey, senderMail string) *EmailService {
	return &EmailService{
		client:     sendgrid.NewSendClient(apiKey),
		senderMail: senderMail,
		senderName: "StudyNotion",
	}
}

// Send delivers a single HTML email and blocks until the provider responds
func (s *EmailService) Send(ctx context.Context, to, subject, htmlBody string) error {
	from := mail.NewEmail(s.senderName, s.senderMail)
	message := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), "", getEmailTemplate(subject, htmlBody))

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// SendAsync delivers mail in the background. The returned channel reports the
// outcome; a failed send is logged and never fails the caller's request.
func (s *EmailService) SendAsync(to, subject, htmlBody string) <-chan error {
	result := make(chan error, 1)

	go func() {
		defer close(result)

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		err := s.Send(ctx, to, subject, htmlBody)
		if err != nil {
			log.Printf("Error sending email to %s: %v", to, err)
		}
		result <- err
	}()

	return result
}

// getEmailTemplate wraps the body in the shared HTML shell
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #000814; padding: 30px; text-align: center; }
			.header h1 { color: #FFD60A; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #000814; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>STUDYNOTION</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 StudyNotion. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// SendEnrollmentEmail confirms a successful course enrollment
func (s *EmailService) SendEnrollmentEmail(email, name, courseName string) {
	subject := "Enrollment Confirmed: " + courseName
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congratulations! You are now enrolled in <strong>%s</strong>.</p>
		<p>Head over to your dashboard to start learning.</p>
	`, name, courseName)

	s.SendAsync(email, subject, body)
}

// SendOTPEmail delivers a signup verification code
func (s *EmailService) SendOTPEmail(email, code string) {
	subject := "Verify your email"
	body := fmt.Sprintf(`
		<p>Your StudyNotion verification code is:</p>
		<h1 style="letter-spacing: 4px;">%s</h1>
		<p>The code expires in 5 minutes.</p>
	`, code)

	s.SendAsync(email, subject, body)
}

// SendWalletEmail notifies the user about a wallet balance change
func (s *EmailService) SendWalletEmail(email, name string, amount, balance float64, credited bool) {
	verb := "debited from"
	subject := "Wallet Debited"
	if credited {
		verb = "credited to"
		subject = "Funds Added to Wallet"
	}
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p><strong>%.2f</strong> has been %s your wallet.</p>
		<p>Your current balance is <strong>%.2f</strong>.</p>
	`, name, amount, verb, balance)

	s.SendAsync(email, subject, body)
}

// SendContactEmail forwards a contact-us submission to the support inbox
func (s *EmailService) SendContactEmail(supportInbox, fromEmail, name, phoneNo, message string) {
	subject := "New enquiry from " + name
	body := fmt.Sprintf(`
		<p>From: %s (%s, %s)</p>
		<blockquote>%s</blockquote>
	`, name, fromEmail, phoneNo, message)

	s.SendAsync(supportInbox, subject, body)
}
