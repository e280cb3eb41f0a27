package notifications

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/url"

	"github.com/you/authnsvc/domain"
	"gopkg.in/gomail.v2"
)

var activationTmpl = template.Must(template.New("activation").Parse(`
<p>Welcome! Activate your account by following the link below.</p>
<p><a href="{{.Link}}">Activate account</a></p>
<p>The link expires in 15 minutes.</p>`))

var otpTmpl = template.Must(template.New("otp").Parse(`
<p>Your one-time login code is:</p>
<h2>{{.Code}}</h2>
<p>It expires in 3 minutes.</p>`))

// SMTPServiceImpl implements domain.NotificationService over SMTP
type SMTPServiceImpl struct {
	dialer  *gomail.Dialer
	from    string
	baseURL string
}

// NewSMTPService creates a new SMTP notification service. With no host
// configured it logs the messages instead of dialing, which keeps local
// development working without a mail server.
func NewSMTPService(host string, port int, username, password, from, baseURL string) domain.NotificationService {
	svc := &SMTPServiceImpl{from: from, baseURL: baseURL}
	if host != "" {
		svc.dialer = gomail.NewDialer(host, port, username, password)
	}
	return svc
}

// SendActivationEmail implements domain.NotificationService. The link carries
// the same query parameters the activation endpoint expects.
func (s *SMTPServiceImpl) SendActivationEmail(to, code, accountID string) error {
	q := url.Values{}
	q.Set("activation_token", code)
	q.Set("email", to)
	q.Set("id", accountID)
	link := fmt.Sprintf("%s/activate_email?%s", s.baseURL, q.Encode())

	var body bytes.Buffer
	if err := activationTmpl.Execute(&body, struct{ Link string }{Link: link}); err != nil {
		return fmt.Errorf("failed to render activation email: %w", err)
	}

	return s.send(to, "Activate your account", body.String())
}

// SendOTPEmail implements domain.NotificationService
func (s *SMTPServiceImpl) SendOTPEmail(to, code string) error {
	var body bytes.Buffer
	if err := otpTmpl.Execute(&body, struct{ Code string }{Code: code}); err != nil {
		return fmt.Errorf("failed to render OTP email: %w", err)
	}

	return s.send(to, "Your one-time login code", body.String())
}

func (s *SMTPServiceImpl) send(to, subject, html string) error {
	if s.dialer == nil {
		log.Printf("[MOCK EMAIL] To: %s, Subject: %s", to, subject)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
