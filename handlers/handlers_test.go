package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/saanviyoga/yoga_studio/models"
	"github.com/saanviyoga/yoga_studio/storage"
)

type stubNotifier struct {
	err      error
	contacts int
	bookings int
}

func (s *stubNotifier) SendContactConfirmation(*models.Contact) error {
	s.contacts++
	return s.err
}

func (s *stubNotifier) SendBookingConfirmation(*models.Booking) error {
	s.bookings++
	return s.err
}

func newTestApp(mailer Notifier) (*fiber.App, storage.Storage) {
	store := storage.NewMemoryBackend()
	app := fiber.New()

	api := app.Group("/api")
	contact := NewContactHandler(store, mailer)
	api.Post("/contact", contact.Create)
	api.Get("/contacts", contact.List)
	booking := NewBookingHandler(store, mailer)
	api.Post("/bookings", booking.Create)
	api.Get("/bookings", booking.List)

	return app, store
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	resp.Body.Close()
}

func validBookingPayload() map[string]any {
	return map[string]any{
		"firstName":        "Asha",
		"lastName":         "Rao",
		"email":            "asha@example.com",
		"phone":            "9876543210",
		"consultationType": "initial",
		"preferredDate":    "2025-03-01",
		"preferredTime":    "9:00 AM",
		"experience":       "beginner",
		"goals":            "reduce stress and improve flexibility",
	}
}

func TestCreateContactReturnsID(t *testing.T) {
	mailer := &stubNotifier{}
	app, _ := newTestApp(mailer)

	resp := postJSON(t, app, "/api/contact", map[string]any{
		"firstName":    "Maya",
		"lastName":     "Kapoor",
		"email":        "maya@example.com",
		"phone":        "9812345670",
		"interestedIn": "hatha",
		"message":      "Do you run morning classes?",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Message string `json:"message"`
		ID      string `json:"id"`
	}
	decodeBody(t, resp, &body)
	require.Equal(t, "Contact form submitted successfully", body.Message)
	require.NotEmpty(t, body.ID)
	require.Equal(t, 1, mailer.contacts)
}

func TestCreateContactRejectsInvalidPayload(t *testing.T) {
	mailer := &stubNotifier{}
	app, _ := newTestApp(mailer)

	resp := postJSON(t, app, "/api/contact", map[string]any{
		"firstName": "Maya",
		"email":     "not-an-email",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Message string `json:"message"`
	}
	decodeBody(t, resp, &body)
	require.Equal(t, "Invalid form data", body.Message)
	require.Zero(t, mailer.contacts)
}

func TestCreateContactSucceedsWhenNotifierFails(t *testing.T) {
	mailer := &stubNotifier{err: errors.New("mailgun is down")}
	app, _ := newTestApp(mailer)

	resp := postJSON(t, app, "/api/contact", map[string]any{
		"firstName":    "Maya",
		"lastName":     "Kapoor",
		"email":        "maya@example.com",
		"phone":        "9812345670",
		"interestedIn": "vinyasa",
		"message":      "Please call me back.",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		ID string `json:"id"`
	}
	decodeBody(t, resp, &body)
	require.NotEmpty(t, body.ID)
	require.Equal(t, 1, mailer.contacts)
}

func TestBookingScenario(t *testing.T) {
	mailer := &stubNotifier{}
	app, _ := newTestApp(mailer)

	resp := postJSON(t, app, "/api/bookings", validBookingPayload())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var created struct {
		Message   string `json:"message"`
		ID        string `json:"id"`
		BookingID string `json:"bookingId"`
	}
	decodeBody(t, resp, &created)
	require.Equal(t, "Booking submitted successfully", created.Message)
	require.NotEmpty(t, created.ID)
	require.Regexp(t, `^SY`, created.BookingID)
	require.Equal(t, 1, mailer.bookings)

	listResp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/bookings", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	var bookings []models.Booking
	decodeBody(t, listResp, &bookings)
	require.Len(t, bookings, 1)
	require.Equal(t, created.BookingID, bookings[0].BookingID)
	require.Equal(t, "pending", bookings[0].Status)
	require.Nil(t, bookings[0].SpecialRequests)
}

func TestCreateBookingRejectsMissingFields(t *testing.T) {
	app, _ := newTestApp(&stubNotifier{})

	payload := validBookingPayload()
	delete(payload, "goals")
	resp := postJSON(t, app, "/api/bookings", payload)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListContactsNewestFirst(t *testing.T) {
	app, store := newTestApp(&stubNotifier{})

	_, err := store.CreateContact(models.ContactInput{
		FirstName: "Old", LastName: "One", Email: "old@example.com",
		Phone: "1", InterestedIn: "hatha", Message: "first",
	})
	require.NoError(t, err)
	newest, err := store.CreateContact(models.ContactInput{
		FirstName: "New", LastName: "One", Email: "new@example.com",
		Phone: "2", InterestedIn: "hatha", Message: "second",
	})
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/contacts", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var contacts []models.Contact
	decodeBody(t, resp, &contacts)
	require.Len(t, contacts, 2)
	require.Equal(t, newest.ID, contacts[0].ID)
}

func TestBookingEndpointWithFallbackStore(t *testing.T) {
	// Wire the handlers the way main does, but with a durable backend that
	// can never connect. Submissions must still succeed end to end.
	store := storage.NewManager(
		storage.NewPostgresBackend("postgres://nowhere.invalid/db"),
		storage.NewMemoryBackend(),
	)
	app := fiber.New()
	booking := NewBookingHandler(store, &stubNotifier{})
	app.Post("/api/bookings", booking.Create)
	app.Get("/api/bookings", booking.List)

	resp := postJSON(t, app, "/api/bookings", validBookingPayload())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	listResp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/bookings", nil), -1)
	require.NoError(t, err)

	var bookings []models.Booking
	decodeBody(t, listResp, &bookings)
	require.Len(t, bookings, 1)
}
