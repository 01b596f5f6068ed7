package notifications

import (
	"fmt"
	"html"

	"github.com/saanviyoga/yoga_studio/models"
)

func contactConfirmationHTML(c *models.Contact) string {
	return fmt.Sprintf(`
<div style="font-family: Georgia, serif; max-width: 600px; margin: 0 auto; color: #3d3d3d;">
  <h1 style="color: #7c6a8f;">Namaste, %s!</h1>
  <p>Thank you for reaching out to Saanvi Yoga Studio. We have received your message and will respond within 24 hours.</p>
  <table style="border-collapse: collapse; width: 100%%;">
    <tr><td style="padding: 6px 12px; font-weight: bold;">Interested in</td><td style="padding: 6px 12px;">%s</td></tr>
    <tr><td style="padding: 6px 12px; font-weight: bold;">Your message</td><td style="padding: 6px 12px;">%s</td></tr>
  </table>
  <p>With gratitude,<br>Saanvi Yoga Studio</p>
</div>`,
		html.EscapeString(c.FirstName),
		html.EscapeString(c.InterestedIn),
		html.EscapeString(c.Message),
	)
}

func contactNotificationHTML(c *models.Contact) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>New Contact Form Submission</h2>
  <table style="border-collapse: collapse; width: 100%%;">
    <tr><td style="padding: 6px 12px; font-weight: bold;">Name</td><td style="padding: 6px 12px;">%s %s</td></tr>
    <tr><td style="padding: 6px 12px; font-weight: bold;">Email</td><td style="padding: 6px 12px;">%s</td></tr>
    <tr><td style="padding: 6px 12px; font-weight: bold;">Phone</td><td style="padding: 6px 12px;">%s</td></tr>
    <tr><td style="padding: 6px 12px; font-weight: bold;">Interested in</td><td style="padding: 6px 12px;">%s</td></tr>
    <tr><td style="padding: 6px 12px; font-weight: bold;">Message</td><td style="padding: 6px 12px;">%s</td></tr>
  </table>
</div>`,
		html.EscapeString(c.FirstName),
		html.EscapeString(c.LastName),
		html.EscapeString(c.Email),
		html.EscapeString(c.Phone),
		html.EscapeString(c.InterestedIn),
		html.EscapeString(c.Message),
	)
}

func bookingConfirmationHTML(b *models.Booking) string {
	specialRequests := "None"
	if b.SpecialRequests != nil {
		specialRequests = html.EscapeString(*b.SpecialRequests)
	}
	return fmt.Sprintf(`
<div style="font-family: Georgia, serif; max-width: 600px; margin: 0 auto; color: #3d3d3d;">
  <h1 style="color: #7c6a8f;">Your Consultation is Booked!</h1>
  <p>Namaste %s, your free consultation with Saanvi Yoga Studio has been scheduled. Keep your booking ID handy.</p>
  <table style="border-collapse: collapse; width: 100%%;">
    <tr><td style="padding: 6px 12px; font-weight: bold;">Booking ID</td><td style="padding: 6px 12px;">%s</td></tr>
    <tr><td style="padding: 6px 12px; font-weight: bold;">Consultation type</td><td style="padding: 6px 12px;">%s</td></tr>
    <tr><td style="padding: 6px 12px; font-weight: bold;">Preferred date</td><td style="padding: 6px 12px;">%s</td></tr>
    <tr><td style="padding: 6px 12px; font-weight: bold;">Preferred time</td><td style="padding: 6px 12px;">%s</td></tr>
    <tr><td style="padding: 6px 12px; font-weight: bold;">Special requests</td><td style="padding: 6px 12px;">%s</td></tr>
  </table>
  <p>We will confirm your slot shortly. With gratitude,<br>Saanvi Yoga Studio</p>
</div>`,
		html.EscapeString(b.FirstName),
		html.EscapeString(b.BookingID),
		html.EscapeString(b.ConsultationType),
		html.EscapeString(b.PreferredDate),
		html.EscapeString(b.PreferredTime),
		specialRequests,
	)
}

func bookingNotificationHTML(b *models.Booking) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>New Consultation Booking - %s</h2>
  <table style="border-collapse: collapse; width: 100%%;">
    <tr><td style="padding: 6px 12px; font-weight: bold;">Name</td><td style="padding: 6px 12px;">%s %s</td></tr>
    <tr><td style="padding: 6px 12px; font-weight: bold;">Email</td><td style="padding: 6px 12px;">%s</td></tr>
    <tr><td style="padding: 6px 12px; font-weight: bold;">Phone</td><td style="padding: 6px 12px;">%s</td></tr>
    <tr><td style="padding: 6px 12px; font-weight: bold;">Type</td><td style="padding: 6px 12px;">%s</td></tr>
    <tr><td style="padding: 6px 12px; font-weight: bold;">Date / time</td><td style="padding: 6px 12px;">%s at %s</td></tr>
    <tr><td style="padding: 6px 12px; font-weight: bold;">Experience</td><td style="padding: 6px 12px;">%s</td></tr>
    <tr><td style="padding: 6px 12px; font-weight: bold;">Goals</td><td style="padding: 6px 12px;">%s</td></tr>
  </table>
</div>`,
		html.EscapeString(b.BookingID),
		html.EscapeString(b.FirstName),
		html.EscapeString(b.LastName),
		html.EscapeString(b.Email),
		html.EscapeString(b.Phone),
		html.EscapeString(b.ConsultationType),
		html.EscapeString(b.PreferredDate),
		html.EscapeString(b.PreferredTime),
		html.EscapeString(b.Experience),
		html.EscapeString(b.Goals),
	)
}
