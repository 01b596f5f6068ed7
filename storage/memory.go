package storage

import (
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/saanviyoga/yoga_studio/models"
	"github.com/saanviyoga/yoga_studio/utils"
)

// MemoryBackend is the volatile store the Manager falls back to. Everything
// lives in process memory and is lost on restart; the trade-off is that the
// site keeps accepting submissions while the database is unreachable.
type MemoryBackend struct {
	mu            sync.Mutex
	users         map[string]models.User
	contacts      map[string]models.Contact
	bookings      map[string]models.Booking
	nextContactID int
	nextBookingID int
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		users:         make(map[string]models.User),
		contacts:      make(map[string]models.Contact),
		bookings:      make(map[string]models.Booking),
		nextContactID: 1,
		nextBookingID: 1,
	}
}

func (m *MemoryBackend) GetUser(id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user, ok := m.users[id]; ok {
		return &user, nil
	}
	return nil, nil
}

func (m *MemoryBackend) GetUserByUsername(username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (m *MemoryBackend) CreateUser(input models.UserInput) (*models.User, error) {
	hashed, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	user := models.User{
		ID:       newUserID(),
		Username: input.Username,
		Password: hashed,
	}
	m.users[user.ID] = user
	return &user, nil
}

func (m *MemoryBackend) CreateContact(input models.ContactInput) (*models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	contact := models.Contact{
		ID:           strconv.Itoa(m.nextContactID),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Phone:        input.Phone,
		InterestedIn: input.InterestedIn,
		Message:      input.Message,
		CreatedAt:    time.Now(),
	}
	m.nextContactID++
	m.contacts[contact.ID] = contact
	return &contact, nil
}

func (m *MemoryBackend) GetContacts() ([]models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Contact, 0, len(m.contacts))
	for _, contact := range m.contacts {
		out = append(out, contact)
	}
	sort.Slice(out, func(i, j int) bool {
		return newerFirst(out[i].CreatedAt, out[i].ID, out[j].CreatedAt, out[j].ID)
	})
	return out, nil
}

func (m *MemoryBackend) CreateBooking(input models.BookingInput) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	bookingID := utils.GenerateBookingID(func(candidate string) bool {
		for _, b := range m.bookings {
			if b.BookingID == candidate {
				return true
			}
		}
		return false
	})

	booking := models.Booking{
		ID:               strconv.Itoa(m.nextBookingID),
		BookingID:        bookingID,
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Email:            input.Email,
		Phone:            input.Phone,
		ConsultationType: input.ConsultationType,
		PreferredDate:    input.PreferredDate,
		PreferredTime:    input.PreferredTime,
		Experience:       input.Experience,
		Goals:            input.Goals,
		SpecialRequests:  normalizeSpecialRequests(input.SpecialRequests),
		Status:           "pending",
		CreatedAt:        time.Now(),
	}
	m.nextBookingID++
	m.bookings[booking.ID] = booking
	return &booking, nil
}

func (m *MemoryBackend) GetBookings() ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Booking, 0, len(m.bookings))
	for _, booking := range m.bookings {
		out = append(out, booking)
	}
	sort.Slice(out, func(i, j int) bool {
		return newerFirst(out[i].CreatedAt, out[i].ID, out[j].CreatedAt, out[j].ID)
	})
	return out, nil
}

func (m *MemoryBackend) UpdateBookingStatus(id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if booking, ok := m.bookings[id]; ok {
		booking.Status = status
		m.bookings[id] = booking
	}
	return nil
}

// newerFirst orders newest-first, breaking same-timestamp ties by the numeric
// id so records created within the same millisecond still list in reverse
// creation order.
func newerFirst(aAt time.Time, aID string, bAt time.Time, bID string) bool {
	if !aAt.Equal(bAt) {
		return aAt.After(bAt)
	}
	ai, _ := strconv.Atoi(aID)
	bi, _ := strconv.Atoi(bID)
	return ai > bi
}
