package storage

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/saanviyoga/yoga_studio/models"
	"github.com/saanviyoga/yoga_studio/monitoring"
)

// Manager fronts the durable backend and downgrades to the volatile one the
// first time a durable operation fails. The failed operation is re-issued
// against the volatile backend, so the caller only sees an error if that one
// fails too. The downgrade is one-directional for the lifetime of the
// process: the site prefers accepting every submission over persisting
// durably, and never tries to reconnect.
type Manager struct {
	durable  Storage
	volatile Storage

	mu       sync.Mutex
	degraded bool
}

func NewManager(durable, volatile Storage) *Manager {
	return &Manager{durable: durable, volatile: volatile}
}

func (m *Manager) active() Storage {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.degraded {
		return m.volatile
	}
	return m.durable
}

func (m *Manager) degrade(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.degraded {
		return
	}
	m.degraded = true
	monitoring.StorageFallbackActive.Set(1)
	log.Warnf("⚠️ Durable storage failed, falling back to in-memory storage: %v", err)
}

func execute[T any](m *Manager, op func(Storage) (T, error)) (T, error) {
	backend := m.active()
	out, err := op(backend)
	if err != nil && backend != m.volatile {
		m.degrade(err)
		return op(m.volatile)
	}
	return out, err
}

func (m *Manager) GetUser(id string) (*models.User, error) {
	return execute(m, func(s Storage) (*models.User, error) {
		return s.GetUser(id)
	})
}

func (m *Manager) GetUserByUsername(username string) (*models.User, error) {
	return execute(m, func(s Storage) (*models.User, error) {
		return s.GetUserByUsername(username)
	})
}

func (m *Manager) CreateUser(input models.UserInput) (*models.User, error) {
	return execute(m, func(s Storage) (*models.User, error) {
		return s.CreateUser(input)
	})
}

func (m *Manager) CreateContact(input models.ContactInput) (*models.Contact, error) {
	return execute(m, func(s Storage) (*models.Contact, error) {
		return s.CreateContact(input)
	})
}

func (m *Manager) GetContacts() ([]models.Contact, error) {
	return execute(m, func(s Storage) ([]models.Contact, error) {
		return s.GetContacts()
	})
}

func (m *Manager) CreateBooking(input models.BookingInput) (*models.Booking, error) {
	return execute(m, func(s Storage) (*models.Booking, error) {
		return s.CreateBooking(input)
	})
}

func (m *Manager) GetBookings() ([]models.Booking, error) {
	return execute(m, func(s Storage) ([]models.Booking, error) {
		return s.GetBookings()
	})
}

func (m *Manager) UpdateBookingStatus(id, status string) error {
	_, err := execute(m, func(s Storage) (struct{}, error) {
		return struct{}{}, s.UpdateBookingStatus(id, status)
	})
	return err
}
