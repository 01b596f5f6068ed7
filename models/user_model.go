package models

// User exists for completeness of the auth-adjacent users table.
// No exposed endpoint reads or writes it.
type User struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:255;not null;unique" json:"username"`
	Password string `gorm:"not null" json:"-"`
}

type UserInput struct {
	Username string
	Password string
}
