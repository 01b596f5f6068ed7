package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/saanviyoga/yoga_studio/models"
	"github.com/saanviyoga/yoga_studio/monitoring"
	"github.com/saanviyoga/yoga_studio/storage"
)

var validate = validator.New()

// Notifier dispatches the submitter confirmation and operator alert for a
// persisted submission. Delivery failures never fail the request; handlers
// catch and log them at the call site.
type Notifier interface {
	SendContactConfirmation(contact *models.Contact) error
	SendBookingConfirmation(booking *models.Booking) error
}

type ContactHandler struct {
	store  storage.Storage
	mailer Notifier
}

func NewContactHandler(store storage.Storage, mailer Notifier) *ContactHandler {
	return &ContactHandler{store: store, mailer: mailer}
}

type CreateContactRequest struct {
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required"`
	InterestedIn string `json:"interestedIn" validate:"required"`
	Message      string `json:"message" validate:"required"`
}

func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var req CreateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid form data"})
	}
	if err := validate.Struct(req); err != nil {
		log.Errorf("Contact form error: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid form data"})
	}

	contact, err := h.store.CreateContact(models.ContactInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		InterestedIn: req.InterestedIn,
		Message:      req.Message,
	})
	if err != nil {
		log.Errorf("Failed to save contact: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to submit contact form"})
	}

	if err := h.mailer.SendContactConfirmation(contact); err != nil {
		// Email failure must never fail a submission that was persisted.
		log.Errorf("Failed to send contact confirmation email: %v", err)
	}

	monitoring.FormSubmissions.WithLabelValues("contact").Inc()
	return c.JSON(fiber.Map{
		"message": "Contact form submitted successfully",
		"id":      contact.ID,
	})
}

func (h *ContactHandler) List(c *fiber.Ctx) error {
	contacts, err := h.store.GetContacts()
	if err != nil {
		log.Errorf("Get contacts error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch contacts"})
	}
	return c.JSON(contacts)
}
