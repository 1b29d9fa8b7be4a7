package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/CFBruna/fullstack-product-manager/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// Create inserts a new product. The database assigns the ID and timestamps.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// FindAll retrieves every product, most recently created first.
func (r *GORMProductRepository) FindAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// FindByID retrieves a single product by its ID, or ErrNotFound.
func (r *GORMProductRepository) FindByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return &product, nil
}

// Update applies only the supplied fields and returns the updated record.
func (r *GORMProductRepository) Update(id uint, update models.ProductUpdate) (*models.Product, error) {
	changes := map[string]interface{}{}
	if update.Name != nil {
		changes["name"] = *update.Name
	}
	if update.Description != nil {
		changes["description"] = *update.Description
	}
	if update.Price != nil {
		changes["price"] = *update.Price
	}
	if update.Category != nil {
		changes["category"] = *update.Category
	}
	if update.Stock != nil {
		changes["stock"] = *update.Stock
	}

	if len(changes) > 0 {
		res := r.db.Model(&models.Product{}).Where("id = ?", id).Updates(changes)
		if res.Error != nil {
			return nil, fmt.Errorf("failed to update product %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}

	return r.FindByID(id)
}

// Delete removes a product by its ID, or returns ErrNotFound.
func (r *GORMProductRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
