package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/saanviyoga/yoga_studio/handlers"
	"github.com/saanviyoga/yoga_studio/storage"
)

func ApiRoutes(app *fiber.App, store storage.Storage, mailer handlers.Notifier) {
	api := app.Group("/api")

	contact := handlers.NewContactHandler(store, mailer)
	api.Post("/contact", contact.Create)
	api.Get("/contacts", contact.List)

	booking := handlers.NewBookingHandler(store, mailer)
	api.Post("/bookings", booking.Create)
	api.Get("/bookings", booking.List)
}
