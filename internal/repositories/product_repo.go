package repositories

import (
	"github.com/CFBruna/fullstack-product-manager/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	Create(product *models.Product) error
	FindAll() ([]models.Product, error)
	FindByID(id uint) (*models.Product, error)
	Update(id uint, update models.ProductUpdate) (*models.Product, error)
	Delete(id uint) error
}
