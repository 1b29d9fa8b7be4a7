package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/CFBruna/fullstack-product-manager/internal/apperrors"
	"github.com/CFBruna/fullstack-product-manager/internal/services"
	"github.com/CFBruna/fullstack-product-manager/internal/validation"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service   *services.ProductService
	validator *validation.Validator
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, validator *validation.Validator) *ProductHandler {
	return &ProductHandler{
		service:   service,
		validator: validator,
	}
}

// RegisterRoutes registers the product routes. Reads are public; mutations go
// through the auth guard.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Post("/", authRequired, h.HandleCreateProduct)
	productRoutes.Put("/:id", authRequired, h.HandleUpdateProduct)
	productRoutes.Delete("/:id", authRequired, h.HandleDeleteProduct)
}

// HandleListProducts retrieves all products, newest first.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts()
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// HandleGetProduct retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	id, err := parseProductID(c)
	if err != nil {
		return err
	}

	product, err := h.service.GetProductByID(id)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product from a validated payload.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var payload validation.ProductPayload
	if err := c.BodyParser(&payload); err != nil {
		return apperrors.New("Invalid request body", fiber.StatusBadRequest)
	}

	input, err := h.validator.CreateProduct(payload)
	if err != nil {
		return err
	}

	product, err := h.service.CreateProduct(input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct applies a partial update to an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := parseProductID(c)
	if err != nil {
		return err
	}

	var payload validation.ProductUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return apperrors.New("Invalid request body", fiber.StatusBadRequest)
	}

	update, err := h.validator.UpdateProduct(payload)
	if err != nil {
		return err
	}

	product, err := h.service.UpdateProduct(id, update)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := parseProductID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteProduct(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseProductID rejects non-numeric identifiers before any store access.
func parseProductID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, apperrors.New("Invalid ID", fiber.StatusBadRequest)
	}
	return uint(id), nil
}
