package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/CFBruna/fullstack-product-manager/internal/apperrors"
	"github.com/CFBruna/fullstack-product-manager/internal/models"
)

// ProductPayload is the raw create-product request body. Pointer fields let us
// tell an omitted field apart from a zero value before any rule runs. Stock is
// capped at MaxInt32 so the float64 value always converts to int without
// overflow, on 32-bit platforms included.
type ProductPayload struct {
	Name        *string  `json:"name" validate:"required,notblank"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"required,finite,gte=0"`
	Category    *string  `json:"category" validate:"required,notblank"`
	Stock       *float64 `json:"stock" validate:"required,finite,gte=0,lte=2147483647,wholenumber"`
}

// ProductUpdatePayload is the raw partial-update request body. Every field is
// optional; a present field is held to the same rules as on creation.
type ProductUpdatePayload struct {
	Name        *string  `json:"name" validate:"omitempty,notblank"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,finite,gte=0"`
	Category    *string  `json:"category" validate:"omitempty,notblank"`
	Stock       *float64 `json:"stock" validate:"omitempty,finite,gte=0,lte=2147483647,wholenumber"`
}

// RegisterPayload is the raw registration request body.
type RegisterPayload struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginPayload is the raw login request body.
type LoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Validator turns raw request payloads into normalized, typed inputs or fails
// with an apperrors.ValidationError listing every violated field.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the custom rules registered.
func New() *Validator {
	v := validator.New()

	// Report violations under the field's JSON name, not the Go name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("notblank", notBlank)
	v.RegisterValidation("finite", finite)
	v.RegisterValidation("wholenumber", wholeNumber)

	return &Validator{validate: v}
}

// FormatText trims surrounding whitespace, then capitalizes the first rune and
// lower-cases the rest. An all-whitespace input collapses to the empty string.
// Applying it twice yields the same result as applying it once.
func FormatText(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return trimmed
	}
	first, size := utf8.DecodeRuneInString(trimmed)
	return string(unicode.ToUpper(first)) + strings.ToLower(trimmed[size:])
}

// CreateProduct validates a create payload and returns the normalized input.
func (v *Validator) CreateProduct(p ProductPayload) (models.ProductInput, error) {
	if err := v.check(p); err != nil {
		return models.ProductInput{}, err
	}

	input := models.ProductInput{
		Name:     FormatText(*p.Name),
		Price:    *p.Price,
		Category: FormatText(*p.Category),
		Stock:    int(*p.Stock),
	}
	if p.Description != nil {
		desc := FormatText(*p.Description)
		input.Description = &desc
	}
	return input, nil
}

// UpdateProduct validates a partial-update payload. Fields the client omitted
// stay nil so the persistence layer leaves them untouched.
func (v *Validator) UpdateProduct(p ProductUpdatePayload) (models.ProductUpdate, error) {
	if err := v.check(p); err != nil {
		return models.ProductUpdate{}, err
	}

	var update models.ProductUpdate
	if p.Name != nil {
		name := FormatText(*p.Name)
		update.Name = &name
	}
	if p.Description != nil {
		desc := FormatText(*p.Description)
		update.Description = &desc
	}
	if p.Price != nil {
		price := *p.Price
		update.Price = &price
	}
	if p.Category != nil {
		category := FormatText(*p.Category)
		update.Category = &category
	}
	if p.Stock != nil {
		stock := int(*p.Stock)
		update.Stock = &stock
	}
	return update, nil
}

// Register validates a registration payload.
func (v *Validator) Register(p RegisterPayload) (models.RegisterInput, error) {
	if err := v.check(p); err != nil {
		return models.RegisterInput{}, err
	}
	return models.RegisterInput{
		Name:     p.Name,
		Email:    p.Email,
		Password: p.Password,
	}, nil
}

// Login validates a login payload.
func (v *Validator) Login(p LoginPayload) (models.LoginInput, error) {
	if err := v.check(p); err != nil {
		return models.LoginInput{}, err
	}
	return models.LoginInput{
		Email:    p.Email,
		Password: p.Password,
	}, nil
}

// check runs struct validation and converts the result into the application's
// validation error carrying every violated field.
func (v *Validator) check(payload interface{}) error {
	err := v.validate.Struct(payload)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// validator.InvalidValidationError, only reachable on non-struct input.
		return err
	}

	fields := make([]apperrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperrors.FieldError{
			Field:   fe.Field(),
			Message: violationMessage(fe),
		})
	}
	return apperrors.NewValidationError(fields)
}

// notBlank requires at least one non-space character after trimming.
func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// finite rejects NaN and both infinities. A plain gte=0 check would let +Inf
// through and is therefore not enough on its own.
func finite(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// wholeNumber rejects fractional values on numeric fields that must be integers.
func wholeNumber(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return f == math.Trunc(f)
}

// violationMessage maps a failed rule to the client-facing message.
func violationMessage(fe validator.FieldError) string {
	field := labelFor(fe.Field())
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", field)
	case "finite":
		return fmt.Sprintf("%s must be a finite number", field)
	case "gte":
		return fmt.Sprintf("%s cannot be negative", field)
	case "lte":
		return fmt.Sprintf("%s is too large", field)
	case "wholenumber":
		return fmt.Sprintf("%s must be an integer", field)
	case "email":
		return "Invalid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	}
	return fmt.Sprintf("%s is invalid", field)
}

// labelFor capitalizes a JSON field name for use in a message.
func labelFor(field string) string {
	if field == "" {
		return field
	}
	first, size := utf8.DecodeRuneInString(field)
	return string(unicode.ToUpper(first)) + field[size:]
}
