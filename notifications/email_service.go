package notifications

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	config "github.com/saanviyoga/yoga_studio/configs"
	"github.com/saanviyoga/yoga_studio/models"
	"github.com/saanviyoga/yoga_studio/monitoring"
)

const mailgunBaseURL = "https://api.mailgun.net/v3"

// EmailService delivers transactional email through the Mailgun HTTP API.
// When credentials are absent it runs in dry-run mode: every send is logged
// and skipped without touching the network, so local and preview deployments
// work without a Mailgun account. Only a configured-but-rejected call is an
// error.
type EmailService struct {
	apiKey        string
	domain        string
	fromEmail     string
	operatorEmail string
	baseURL       string
	client        *http.Client
}

func NewEmailService() *EmailService {
	s := &EmailService{
		apiKey:        config.Config("MAILGUN_API_KEY"),
		domain:        config.Config("MAILGUN_DOMAIN"),
		fromEmail:     config.Config("FROM_EMAIL"),
		operatorEmail: config.Config("STUDIO_EMAIL"),
		baseURL:       mailgunBaseURL,
		client:        &http.Client{Timeout: 10 * time.Second},
	}
	if s.fromEmail == "" {
		s.fromEmail = "noreply@saanviyoga.com"
	}
	if s.operatorEmail == "" {
		s.operatorEmail = "hello@saanviyoga.com"
	}

	if s.configured() {
		log.Info("✅ Email service initialized successfully")
	} else {
		log.Info("⚠️ Mailgun not configured, emails will be logged and skipped")
	}
	return s
}

func (s *EmailService) configured() bool {
	return s.apiKey != "" && s.domain != ""
}

// SendContactConfirmation emails the submitter a confirmation and the studio
// an alert about the new inquiry.
func (s *EmailService) SendContactConfirmation(contact *models.Contact) error {
	if err := s.send(contact.Email, "Message Received - Saanvi Yoga Studio", contactConfirmationHTML(contact)); err != nil {
		return err
	}
	subject := fmt.Sprintf("New Contact Form Submission - %s %s", contact.FirstName, contact.LastName)
	return s.send(s.operatorEmail, subject, contactNotificationHTML(contact))
}

// SendBookingConfirmation emails the submitter their consultation details and
// the studio an alert carrying the booking reference.
func (s *EmailService) SendBookingConfirmation(booking *models.Booking) error {
	subject := fmt.Sprintf("Consultation Confirmed - Booking ID: %s - Saanvi Yoga Studio", booking.BookingID)
	if err := s.send(booking.Email, subject, bookingConfirmationHTML(booking)); err != nil {
		return err
	}
	return s.send(s.operatorEmail, fmt.Sprintf("New Consultation Booking - %s", booking.BookingID), bookingNotificationHTML(booking))
}

func (s *EmailService) send(to, subject, html string) error {
	if !s.configured() {
		log.WithFields(log.Fields{"to": to, "subject": subject}).Info("Mailgun not configured, skipping email")
		monitoring.Emails.WithLabelValues("skipped").Inc()
		return nil
	}

	form := url.Values{}
	form.Set("from", fmt.Sprintf("Saanvi Yoga Studio <%s>", s.fromEmail))
	form.Set("to", to)
	form.Set("subject", subject)
	form.Set("html", html)

	endpoint := fmt.Sprintf("%s/%s/messages", s.baseURL, s.domain)
	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth("api", s.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		monitoring.Emails.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		monitoring.Emails.WithLabelValues("error").Inc()
		return fmt.Errorf("mailgun api error: status %d, body: %s", resp.StatusCode, body)
	}

	monitoring.Emails.WithLabelValues("sent").Inc()
	log.Infof("✅ Email sent successfully to %s", to)
	return nil
}
