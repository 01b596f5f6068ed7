package models

import "time"

type Contact struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	FirstName    string    `gorm:"size:255;not null" json:"firstName"`
	LastName     string    `gorm:"size:255;not null" json:"lastName"`
	Email        string    `gorm:"size:255;not null" json:"email"`
	Phone        string    `gorm:"size:20;not null" json:"phone"`
	InterestedIn string    `gorm:"size:100;not null" json:"interestedIn"`
	Message      string    `gorm:"type:text;not null" json:"message"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ContactInput is the validated form payload handed to the store.
type ContactInput struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	InterestedIn string
	Message      string
}
