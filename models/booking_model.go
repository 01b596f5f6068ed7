package models

import "time"

type Booking struct {
	ID               string    `gorm:"primaryKey" json:"id"`
	BookingID        string    `gorm:"size:20;not null;unique" json:"bookingId"`
	FirstName        string    `gorm:"size:255;not null" json:"firstName"`
	LastName         string    `gorm:"size:255;not null" json:"lastName"`
	Email            string    `gorm:"size:255;not null" json:"email"`
	Phone            string    `gorm:"size:20;not null" json:"phone"`
	ConsultationType string    `gorm:"size:50;not null" json:"consultationType"`
	PreferredDate    string    `gorm:"size:20;not null" json:"preferredDate"`
	PreferredTime    string    `gorm:"size:20;not null" json:"preferredTime"`
	Experience       string    `gorm:"size:50;not null" json:"experience"`
	Goals            string    `gorm:"type:text;not null" json:"goals"`
	SpecialRequests  *string   `gorm:"type:text" json:"specialRequests"`
	Status           string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

// BookingInput is the validated form payload handed to the store.
// An empty SpecialRequests is normalized to null at creation time.
type BookingInput struct {
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	ConsultationType string
	PreferredDate    string
	PreferredTime    string
	Experience       string
	Goals            string
	SpecialRequests  string
}
