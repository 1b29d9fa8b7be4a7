package models

import "time"

// Product represents an inventory item in the catalog.
type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text"`
	Price       float64   `json:"price" gorm:"not null"`
	Category    string    `json:"category" gorm:"type:varchar(255);not null"`
	Stock       int       `json:"stock" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProductInput is a fully validated, normalized payload for creating a product.
// Description stays nil when the client omitted it.
type ProductInput struct {
	Name        string
	Description *string
	Price       float64
	Category    string
	Stock       int
}

// ProductUpdate is a validated partial update. Nil fields are left untouched
// by the persistence layer.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	Stock       *int
}
