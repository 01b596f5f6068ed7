package storage

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/saanviyoga/yoga_studio/models"
)

// Storage is the capability interface satisfied by both physical backends and
// by the fallback Manager that fronts them. Lookups return (nil, nil) when no
// record matches.
type Storage interface {
	GetUser(id string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	CreateUser(input models.UserInput) (*models.User, error)
	CreateContact(input models.ContactInput) (*models.Contact, error)
	GetContacts() ([]models.Contact, error)
	CreateBooking(input models.BookingInput) (*models.Booking, error)
	GetBookings() ([]models.Booking, error)
	UpdateBookingStatus(id, status string) error
}

func newUserID() string {
	return uuid.NewString()
}

func hashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Absent or empty special requests are stored as null, matching the column
// being nullable while every other field is not.
func normalizeSpecialRequests(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
