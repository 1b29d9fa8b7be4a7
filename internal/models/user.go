package models

import "time"

// User represents a registered account. The password column always holds a
// bcrypt hash and is never serialized in responses.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	Password  string    `json:"-" gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RegisterInput is a validated registration payload.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput is a validated login payload.
type LoginInput struct {
	Email    string
	Password string
}
