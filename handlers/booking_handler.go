package handlers

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/saanviyoga/yoga_studio/models"
	"github.com/saanviyoga/yoga_studio/monitoring"
	"github.com/saanviyoga/yoga_studio/storage"
)

type BookingHandler struct {
	store  storage.Storage
	mailer Notifier
}

func NewBookingHandler(store storage.Storage, mailer Notifier) *BookingHandler {
	return &BookingHandler{store: store, mailer: mailer}
}

type CreateBookingRequest struct {
	FirstName        string `json:"firstName" validate:"required"`
	LastName         string `json:"lastName" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone" validate:"required"`
	ConsultationType string `json:"consultationType" validate:"required"`
	PreferredDate    string `json:"preferredDate" validate:"required"`
	PreferredTime    string `json:"preferredTime" validate:"required"`
	Experience       string `json:"experience" validate:"required"`
	Goals            string `json:"goals" validate:"required"`
	SpecialRequests  string `json:"specialRequests"`
}

func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid form data"})
	}
	if err := validate.Struct(req); err != nil {
		log.Errorf("Booking form error: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid form data"})
	}

	booking, err := h.store.CreateBooking(models.BookingInput{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		ConsultationType: req.ConsultationType,
		PreferredDate:    req.PreferredDate,
		PreferredTime:    req.PreferredTime,
		Experience:       req.Experience,
		Goals:            req.Goals,
		SpecialRequests:  req.SpecialRequests,
	})
	if err != nil {
		log.Errorf("Failed to save booking: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to submit booking"})
	}

	if err := h.mailer.SendBookingConfirmation(booking); err != nil {
		// Email failure must never fail a submission that was persisted.
		log.Errorf("Failed to send booking confirmation email: %v", err)
	}

	monitoring.FormSubmissions.WithLabelValues("booking").Inc()
	return c.JSON(fiber.Map{
		"message":   "Booking submitted successfully",
		"id":        booking.ID,
		"bookingId": booking.BookingID,
	})
}

func (h *BookingHandler) List(c *fiber.Ctx) error {
	bookings, err := h.store.GetBookings()
	if err != nil {
		log.Errorf("Get bookings error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch bookings"})
	}
	return c.JSON(bookings)
}
