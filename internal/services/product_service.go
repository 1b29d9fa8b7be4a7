package services

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/CFBruna/fullstack-product-manager/internal/apperrors"
	"github.com/CFBruna/fullstack-product-manager/internal/models"
	"github.com/CFBruna/fullstack-product-manager/internal/repositories"
	"github.com/CFBruna/fullstack-product-manager/pkg/rabbitmq"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo     repositories.ProductRepository
	mqClient *rabbitmq.Client // optional, may be nil
}

// NewProductService creates a new ProductService. mqClient may be nil, in
// which case lifecycle events are skipped.
func NewProductService(repo repositories.ProductRepository, mqClient *rabbitmq.Client) *ProductService {
	return &ProductService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// CreateProduct persists a validated product and returns the created record.
func (s *ProductService) CreateProduct(input models.ProductInput) (*models.Product, error) {
	product := &models.Product{
		Name:     input.Name,
		Price:    input.Price,
		Category: input.Category,
		Stock:    input.Stock,
	}
	if input.Description != nil {
		product.Description = *input.Description
	}

	if err := s.repo.Create(product); err != nil {
		return nil, err
	}

	s.publishEvent("product.created", product)
	return product, nil
}

// ListProducts retrieves all products, most recently created first.
func (s *ProductService) ListProducts() ([]models.Product, error) {
	return s.repo.FindAll()
}

// GetProductByID retrieves a single product, mapping a missing record to 404.
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	product, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.New("Product not found", http.StatusNotFound)
		}
		return nil, err
	}
	return product, nil
}

// UpdateProduct applies a partial update. The existence check runs first so a
// nonexistent id always yields 404 without touching the write path. The check
// is advisory: a delete racing in between surfaces as a repository error.
func (s *ProductService) UpdateProduct(id uint, update models.ProductUpdate) (*models.Product, error) {
	if _, err := s.GetProductByID(id); err != nil {
		return nil, err
	}

	product, err := s.repo.Update(id, update)
	if err != nil {
		return nil, err
	}

	s.publishEvent("product.updated", product)
	return product, nil
}

// DeleteProduct removes a product after the same existence check as update.
func (s *ProductService) DeleteProduct(id uint) error {
	product, err := s.GetProductByID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.publishEvent("product.deleted", product)
	return nil
}

// publishEvent emits a product lifecycle event. Publishing is best effort;
// failures are logged and never propagated to the caller.
func (s *ProductService) publishEvent(eventType string, product *models.Product) {
	if s.mqClient == nil {
		return
	}

	message := map[string]interface{}{
		"event":     eventType,
		"productId": product.ID,
		"name":      product.Name,
		"category":  product.Category,
	}
	body, err := json.Marshal(message)
	if err != nil {
		log.Printf("Failed to marshal %s event for product %d: %v", eventType, product.ID, err)
		return
	}

	if err := s.mqClient.PublishProductEvent(eventType, body); err != nil {
		log.Printf("Warning: failed to publish %s event for product %d: %v", eventType, product.ID, err)
	}
}
