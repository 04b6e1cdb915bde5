package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"
)

// Config holds SMTP configuration
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
	SellerURL    string
}

// Enabled reports whether an SMTP host has been configured
func (c Config) Enabled() bool {
	return c.SMTPHost != "" && c.FromEmail != ""
}

// SendFunc delivers a raw message; it matches smtp.SendMail.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Notifier sends transactional emails to sellers
type Notifier struct {
	config Config
	send   SendFunc
	tmpl   *template.Template
}

// NewNotifier creates a notifier that delivers through SMTP
func NewNotifier(config Config) *Notifier {
	return &Notifier{
		config: config,
		send:   smtp.SendMail,
		tmpl:   template.Must(template.New("seller_verified").Parse(sellerVerifiedTemplate)),
	}
}

// WithSender swaps the delivery function
func (n *Notifier) WithSender(send SendFunc) *Notifier {
	n.send = send
	return n
}

// SellerVerified tells a seller their storefront is now live
func (n *Notifier) SellerVerified(toEmail, businessName string) error {
	if toEmail == "" {
		return fmt.Errorf("seller has no email address")
	}

	body, err := n.render(businessName)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("%s is now verified", businessName)
	return n.deliver(toEmail, n.buildHTMLEmail(toEmail, subject, body))
}

func (n *Notifier) deliver(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", n.config.SMTPHost, n.config.SMTPPort)

	var auth smtp.Auth
	if n.config.SMTPUsername != "" {
		auth = smtp.PlainAuth("", n.config.SMTPUsername, n.config.SMTPPassword, n.config.SMTPHost)
	}

	if err := n.send(addr, auth, n.config.FromEmail, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (n *Notifier) buildHTMLEmail(to, subject, htmlBody string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n",
		n.config.FromName,
		n.config.FromEmail,
		to,
		strings.NewReplacer("\r", "", "\n", "").Replace(subject),
	)
	return []byte(headers + htmlBody)
}

func (n *Notifier) render(businessName string) (string, error) {
	data := struct {
		BusinessName string
		SellerURL    string
		AppName      string
	}{
		BusinessName: businessName,
		SellerURL:    n.config.SellerURL,
		AppName:      n.config.FromName,
	}

	var buf bytes.Buffer
	if err := n.tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const sellerVerifiedTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Your store is verified</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f4f7fa;">
    <table role="presentation" style="max-width: 600px; margin: 40px auto; background-color: #ffffff; border-radius: 12px;">
        <tr>
            <td style="padding: 40px 30px;">
                <h2 style="color: #1a1a2e; margin: 0 0 20px 0;">{{.BusinessName}} is verified</h2>
                <p style="color: #4a5568; font-size: 16px; line-height: 1.6;">
                    Your seller profile has been reviewed and verified. Your products can now be listed in the shop.
                </p>
                {{if .SellerURL}}
                <p style="color: #4a5568; font-size: 16px; line-height: 1.6;">
                    <a href="{{.SellerURL}}" style="color: #667eea;">Open the seller dashboard</a>
                </p>
                {{end}}
                <p style="color: #a0aec0; font-size: 14px; margin-top: 30px;">Sent by {{.AppName}}</p>
            </td>
        </tr>
    </table>
</body>
</html>
`
