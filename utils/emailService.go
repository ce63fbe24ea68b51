package utils

import (
	"fmt"
	"log"

	"eduportal/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendContactMail forwards a contact-form submission to the support inbox.
func SendContactMail(name, email, subject, message, refID string) error {
	from := mail.NewEmail("EduManager", config.AppConfig.EmailSender)
	to := mail.NewEmail("EduManager Support", config.AppConfig.ContactRecipient)

	fullSubject := fmt.Sprintf("[Contact %s] %s", refID, subject)
	plain := fmt.Sprintf("From: %s <%s>\n\n%s", name, email, message)
	body := fmt.Sprintf(`
		<h2>New contact message</h2>
		<div class="info-box">
			<p><strong>From:</strong> %s &lt;%s&gt;</p>
			<p><strong>Reference:</strong> %s</p>
		</div>
		<p>%s</p>`, name, email, refID, message)

	msg := mail.NewSingleEmail(from, fullSubject, to, plain, getEmailTemplate(subject, body))

	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)
	resp, err := client.Send(msg)
	if err != nil {
		log.Printf("Error sending contact mail: %v", err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("SendGrid rejected contact mail: %d %s", resp.StatusCode, resp.Body)
		return fmt.Errorf("mail delivery failed with status %d", resp.StatusCode)
	}
	return nil
}

// HTML wrapper shared by outgoing portal mail
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #14532D; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1F2937; line-height: 1.6; }
			.content h2 { color: #14532D; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #ECFDF5; padding: 15px; border-radius: 4px; border-left: 4px solid #FACC15; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>EDUMANAGER</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 EduManager. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}
