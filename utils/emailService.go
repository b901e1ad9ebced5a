package utils

import (
	"fitscore/config"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendTransactionalEmail delivers HTML mail through SendGrid. Skips silently
// when no API key is configured so local setups still work.
func sendTransactionalEmail(toName, toEmail, subject, htmlBody string) error {
	if config.AppConfig.SendGridApiKey == "" {
		log.Printf("SendGrid disabled, skipping email to %s (%s)", toEmail, subject)
		return nil
	}

	from := mail.NewEmail("FitScore", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", getEmailTemplate(subject, htmlBody))

	client := sendgrid.NewSendClient(config.AppConfig.SendGridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 300 {
		log.Printf("SendGrid rejected email to %s: %d %s", toEmail, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}

// HTML wrapper for a consistent look across transactional mails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A1A40; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A1A40; line-height: 1.6; }
			.content h2 { color: #1A1A40; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #4CAF50; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.tier-badge { display: inline-block; padding: 4px 8px; border-radius: 4px; font-size: 12px; font-weight: bold; color: white; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>FITSCORE</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 FitScore. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// SendWelcomeEmail greets a new user after signup
func SendWelcomeEmail(email, name string) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to FitScore! Your account is ready.</p>
		<p>Set up your company profile, build your evaluation questions, and start scoring accounts.</p>
		<a class="btn" href="%s">Open FitScore</a>
	`, name, config.AppConfig.FrontendURL)

	if err := sendTransactionalEmail(name, email, "Welcome to FitScore", body); err != nil {
		log.Printf("Failed to send welcome email to %s: %v", email, err)
	}
}

// SendReportExportEmail notifies the owner that a CSV export completed
func SendReportExportEmail(email, name, companyName, exportID string, rowCount int) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your evaluation report for <strong>%s</strong> was exported successfully.</p>
		<p>Export reference: <strong>%s</strong><br>Accounts included: <strong>%d</strong></p>
	`, name, companyName, exportID, rowCount)

	if err := sendTransactionalEmail(name, email, "Your FitScore report export", body); err != nil {
		log.Printf("Failed to send export email to %s: %v", email, err)
	}
}
