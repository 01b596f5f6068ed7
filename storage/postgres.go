package storage

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/saanviyoga/yoga_studio/models"
	"github.com/saanviyoga/yoga_studio/utils"
)

// PostgresBackend is the durable store. The connection is established lazily
// on first use, so a missing or malformed DATABASE_URL surfaces as an error
// on the very first operation, which the Manager turns into the in-memory
// fallback instead of a crash at startup.
type PostgresBackend struct {
	dsn string
	mu  sync.Mutex
	db  *gorm.DB
}

func NewPostgresBackend(dsn string) *PostgresBackend {
	return &PostgresBackend{dsn: dsn}
}

func (p *PostgresBackend) conn() (*gorm.DB, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db != nil {
		return p.db, nil
	}
	if !strings.Contains(p.dsn, "supabase.") {
		return nil, fmt.Errorf("DATABASE_URL is not a supabase connection string")
	}

	db, err := gorm.Open(postgres.Open(p.dsn), &gorm.Config{
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Contact{}, &models.Booking{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Info("✅ Database connected successfully")
	p.db = db
	return db, nil
}

func (p *PostgresBackend) GetUser(id string) (*models.User, error) {
	db, err := p.conn()
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (p *PostgresBackend) GetUserByUsername(username string) (*models.User, error) {
	db, err := p.conn()
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := db.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (p *PostgresBackend) CreateUser(input models.UserInput) (*models.User, error) {
	db, err := p.conn()
	if err != nil {
		return nil, err
	}

	hashed, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:       newUserID(),
		Username: input.Username,
		Password: hashed,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (p *PostgresBackend) CreateContact(input models.ContactInput) (*models.Contact, error) {
	db, err := p.conn()
	if err != nil {
		return nil, err
	}

	contact := models.Contact{
		ID:           timeDerivedID(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Phone:        input.Phone,
		InterestedIn: input.InterestedIn,
		Message:      input.Message,
		CreatedAt:    time.Now(),
	}
	if err := db.Create(&contact).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

func (p *PostgresBackend) GetContacts() ([]models.Contact, error) {
	db, err := p.conn()
	if err != nil {
		return nil, err
	}

	var contacts []models.Contact
	if err := db.Order("created_at desc").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (p *PostgresBackend) CreateBooking(input models.BookingInput) (*models.Booking, error) {
	db, err := p.conn()
	if err != nil {
		return nil, err
	}

	bookingID := utils.GenerateBookingID(func(candidate string) bool {
		var count int64
		db.Model(&models.Booking{}).Where("booking_id = ?", candidate).Count(&count)
		return count > 0
	})

	booking := models.Booking{
		ID:               timeDerivedID(),
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
	if err := db.Create(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (p *PostgresBackend) GetBookings() ([]models.Booking, error) {
	db, err := p.conn()
	if err != nil {
		return nil, err
	}

	var bookings []models.Booking
	if err := db.Order("created_at desc").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (p *PostgresBackend) UpdateBookingStatus(id, status string) error {
	db, err := p.conn()
	if err != nil {
		return err
	}

	// Silent no-op when the id does not exist; gorm reports zero rows
	// affected without an error.
	return db.Model(&models.Booking{}).Where("id = ?", id).Update("status", status).Error
}

func timeDerivedID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}
