package mailer

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendOrderConfirmation(toEmail, name, receipt string) error
	SendContactMessage(inboxEmail, fromName, fromEmail, subject, body string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderEmail, senderName string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

// SendOrderConfirmation delivers the receipt the assistant promised. The
// receipt text is preformatted; it goes into a <pre> block verbatim.
func (s *emailService) SendOrderConfirmation(toEmail, name, receipt string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your EchoSee Pre-Order Confirmation")

	greetName := strings.TrimSpace(name)
	if greetName == "" {
		greetName = "there"
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Thank you for your pre-order, %s!</h2>
			<p>Your EchoSee Smart Glasses pre-order has been received. Here is your receipt:</p>
			<pre style="background: #f5f5f5; padding: 16px; border-radius: 8px; font-size: 13px;">%s</pre>
			<p>Our team will contact you before dispatch. Delivery takes 7-10 business days across Pakistan.</p>
			<p>If you didn't place this order, please ignore this email.</p>
		</div>
	`, greetName, receipt)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send order confirmation to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Order confirmation sent to %s\n", toEmail)
	return nil
}

// SendContactMessage relays a contact-form submission to the support inbox.
func (s *emailService) SendContactMessage(inboxEmail, fromName, fromEmail, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", inboxEmail)
	m.SetHeader("Reply-To", fromEmail)
	m.SetHeader("Subject", fmt.Sprintf("[Contact] %s", subject))

	html := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New contact form message</h2>
			<p><strong>From:</strong> %s &lt;%s&gt;</p>
			<p>%s</p>
		</div>
	`, fromName, fromEmail, body)

	m.SetBody("text/html", html)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to relay contact message from %s: %v\n", fromEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Contact message relayed for %s\n", fromEmail)
	return nil
}
