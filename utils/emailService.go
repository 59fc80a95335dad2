package utils

import (
	"fmt"
	"learnhub/config"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends a single HTML email through SendGrid.
func SendEmail(toEmail, toName, subject, htmlBody string) error {
	if config.AppConfig == nil || config.AppConfig.SendGridKey == "" {
		log.Printf("Email skipped (no SendGrid key configured): %s -> %s", subject, toEmail)
		return nil
	}

	from := mail.NewEmail("LearnHub", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("SendGrid rejected email to %s: status %d", toEmail, resp.StatusCode)
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}

	return nil
}

// SendOTPEmail sends the email verification code.
func SendOTPEmail(toEmail, toName, code string) error {
	body := getEmailTemplate("Verify your email", fmt.Sprintf(`
		<h2>Hello %s,</h2>
		<p>Your LearnHub verification code is:</p>
		<div class="info-box"><strong style="font-size:24px;letter-spacing:4px;">%s</strong></div>
		<p>The code is valid for 10 minutes.</p>`, toName, code))
	return SendEmail(toEmail, toName, "Your LearnHub verification code", body)
}

// SendCertificateEmail notifies a learner that their certificate was issued.
func SendCertificateEmail(toEmail, toName, courseTitle, certificateNumber string) {
	body := getEmailTemplate("Certificate issued", fmt.Sprintf(`
		<h2>Congratulations %s!</h2>
		<p>You completed <strong>%s</strong> and your certificate has been issued.</p>
		<div class="info-box">Certificate number: <strong>%s</strong></div>
		<p>You can download the certificate from your profile.</p>`, toName, courseTitle, certificateNumber))
	if err := SendEmail(toEmail, toName, "Your course certificate is ready", body); err != nil {
		log.Printf("Error sending certificate email to %s: %v", toEmail, err)
	}
}

// SendEventReminderEmail reminds a user of an upcoming calendar event.
func SendEventReminderEmail(toEmail, toName, eventTitle, dueAt string) error {
	body := getEmailTemplate("Upcoming reminder", fmt.Sprintf(`
		<h2>Hello %s,</h2>
		<p>This is a reminder for your upcoming item:</p>
		<div class="info-box"><strong>%s</strong><br/>Due: %s</div>`, toName, eventTitle, dueAt))
	return SendEmail(toEmail, toName, "Reminder: "+eventTitle, body)
}

// getEmailTemplate wraps body content in the shared HTML layout.
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A237E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A237E; line-height: 1.6; }
			.content h2 { color: #1A237E; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #5C6BC0; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>LearnHub</h1>
			</div>
			<div class="content">
				%s
			</div>
			<div class="footer">
				%s &middot; You are receiving this email because you have a LearnHub account.
			</div>
		</div>
	</body>
	</html>`, bodyContent, title)
}
