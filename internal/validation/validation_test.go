package validation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CFBruna/fullstack-product-manager/internal/apperrors"
	"github.com/CFBruna/fullstack-product-manager/internal/validation"
)

func strPtr(s string) *string { return &s }
func numPtr(f float64) *float64 { return &f }

func TestFormatText(t *testing.T) {
	cases := map[string]string{
		"  iphone 15  ": "Iphone 15",
		"SMARTPHONES":   "Smartphones",
		"laptop":        "Laptop",
		"   ":           "",
		"":              "",
		"x":             "X",
	}

	for input, expected := range cases {
		assert.Equal(t, expected, validation.FormatText(input))
	}
}

func TestFormatText_Idempotent(t *testing.T) {
	inputs := []string{"  iphone 15  ", "SMARTPHONES", "", "   ", "MiXeD CaSe", "é accent"}
	for _, s := range inputs {
		once := validation.FormatText(s)
		assert.Equal(t, once, validation.FormatText(once), "FormatText must be idempotent for %q", s)
	}
}

func TestCreateProduct_NormalizesTextFields(t *testing.T) {
	v := validation.New()

	input, err := v.CreateProduct(validation.ProductPayload{
		Name:        strPtr("  iphone 15  "),
		Description: strPtr("  LATEST model  "),
		Price:       numPtr(999),
		Category:    strPtr("  smartphones  "),
		Stock:       numPtr(5),
	})

	assert.NoError(t, err)
	assert.Equal(t, "Iphone 15", input.Name)
	assert.Equal(t, "Smartphones", input.Category)
	assert.Equal(t, 999.0, input.Price)
	assert.Equal(t, 5, input.Stock)
	if assert.NotNil(t, input.Description) {
		assert.Equal(t, "Latest model", *input.Description)
	}
}

func TestCreateProduct_OptionalDescription(t *testing.T) {
	v := validation.New()

	input, err := v.CreateProduct(validation.ProductPayload{
		Name:     strPtr("Mouse"),
		Price:    numPtr(25),
		Category: strPtr("Accessories"),
		Stock:    numPtr(10),
	})

	assert.NoError(t, err)
	assert.Nil(t, input.Description)
}

func TestCreateProduct_CollectsEveryViolation(t *testing.T) {
	v := validation.New()

	// Name blank, category missing, price negative, stock fractional.
	_, err := v.CreateProduct(validation.ProductPayload{
		Name:  strPtr("   "),
		Price: numPtr(-1),
		Stock: numPtr(2.5),
	})

	var valErr *apperrors.ValidationError
	if assert.ErrorAs(t, err, &valErr) {
		fields := map[string]string{}
		for _, fe := range valErr.Fields {
			fields[fe.Field] = fe.Message
		}
		assert.Len(t, valErr.Fields, 4)
		assert.Equal(t, "Name is required", fields["name"])
		assert.Equal(t, "Category is required", fields["category"])
		assert.Equal(t, "Price cannot be negative", fields["price"])
		assert.Equal(t, "Stock must be an integer", fields["stock"])
	}
}

func TestCreateProduct_RejectsNonFiniteNumbers(t *testing.T) {
	v := validation.New()

	for _, price := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		_, err := v.CreateProduct(validation.ProductPayload{
			Name:     strPtr("x"),
			Price:    numPtr(price),
			Category: strPtr("y"),
			Stock:    numPtr(1),
		})

		var valErr *apperrors.ValidationError
		if assert.ErrorAs(t, err, &valErr, "price %v must be rejected", price) {
			assert.Len(t, valErr.Fields, 1)
			assert.Equal(t, "price", valErr.Fields[0].Field)
			assert.Equal(t, "Price must be a finite number", valErr.Fields[0].Message)
		}
	}

	_, err := v.CreateProduct(validation.ProductPayload{
		Name:     strPtr("x"),
		Price:    numPtr(1),
		Category: strPtr("y"),
		Stock:    numPtr(math.Inf(1)),
	})
	var valErr *apperrors.ValidationError
	if assert.ErrorAs(t, err, &valErr) {
		assert.Equal(t, "stock", valErr.Fields[0].Field)
		assert.Equal(t, "Stock must be a finite number", valErr.Fields[0].Message)
	}
}

func TestCreateProduct_RejectsStockAboveIntRange(t *testing.T) {
	v := validation.New()

	// 1e19 is finite, whole and non-negative, but does not fit an int; it
	// must fail validation instead of wrapping around to a negative stock.
	input, err := v.CreateProduct(validation.ProductPayload{
		Name:     strPtr("x"),
		Price:    numPtr(1),
		Category: strPtr("y"),
		Stock:    numPtr(1e19),
	})

	var valErr *apperrors.ValidationError
	if assert.ErrorAs(t, err, &valErr) {
		assert.Len(t, valErr.Fields, 1)
		assert.Equal(t, "stock", valErr.Fields[0].Field)
		assert.Equal(t, "Stock is too large", valErr.Fields[0].Message)
	}
	assert.GreaterOrEqual(t, input.Stock, 0)

	// The cap itself is still accepted.
	input, err = v.CreateProduct(validation.ProductPayload{
		Name:     strPtr("x"),
		Price:    numPtr(1),
		Category: strPtr("y"),
		Stock:    numPtr(2147483647),
	})
	assert.NoError(t, err)
	assert.Equal(t, 2147483647, input.Stock)
}

func TestUpdateProduct_RejectsStockAboveIntRange(t *testing.T) {
	v := validation.New()

	_, err := v.UpdateProduct(validation.ProductUpdatePayload{
		Stock: numPtr(1e19),
	})

	var valErr *apperrors.ValidationError
	if assert.ErrorAs(t, err, &valErr) {
		assert.Len(t, valErr.Fields, 1)
		assert.Equal(t, "stock", valErr.Fields[0].Field)
		assert.Equal(t, "Stock is too large", valErr.Fields[0].Message)
	}
}

func TestUpdateProduct_AllFieldsOptional(t *testing.T) {
	v := validation.New()

	update, err := v.UpdateProduct(validation.ProductUpdatePayload{})
	assert.NoError(t, err)
	assert.Nil(t, update.Name)
	assert.Nil(t, update.Description)
	assert.Nil(t, update.Price)
	assert.Nil(t, update.Category)
	assert.Nil(t, update.Stock)
}

func TestUpdateProduct_PresentFieldsFollowCreateRules(t *testing.T) {
	v := validation.New()

	update, err := v.UpdateProduct(validation.ProductUpdatePayload{
		Name:  strPtr("  new NAME  "),
		Price: numPtr(10),
	})
	assert.NoError(t, err)
	if assert.NotNil(t, update.Name) {
		assert.Equal(t, "New name", *update.Name)
	}
	if assert.NotNil(t, update.Price) {
		assert.Equal(t, 10.0, *update.Price)
	}
	assert.Nil(t, update.Category)

	_, err = v.UpdateProduct(validation.ProductUpdatePayload{
		Category: strPtr("   "),
		Price:    numPtr(math.NaN()),
	})
	var valErr *apperrors.ValidationError
	if assert.ErrorAs(t, err, &valErr) {
		assert.Len(t, valErr.Fields, 2)
	}
}

func TestRegister_Rules(t *testing.T) {
	v := validation.New()

	input, err := v.Register(validation.RegisterPayload{
		Name:     "Bruna",
		Email:    "bruna@example.com",
		Password: "secret123",
	})
	assert.NoError(t, err)
	assert.Equal(t, "bruna@example.com", input.Email)

	_, err = v.Register(validation.RegisterPayload{
		Name:     "B",
		Email:    "not-an-email",
		Password: "short",
	})
	var valErr *apperrors.ValidationError
	if assert.ErrorAs(t, err, &valErr) {
		fields := map[string]string{}
		for _, fe := range valErr.Fields {
			fields[fe.Field] = fe.Message
		}
		assert.Equal(t, "Name must be at least 2 characters", fields["name"])
		assert.Equal(t, "Invalid email address", fields["email"])
		assert.Equal(t, "Password must be at least 6 characters", fields["password"])
	}
}

func TestLogin_Rules(t *testing.T) {
	v := validation.New()

	_, err := v.Login(validation.LoginPayload{Email: "user@example.com", Password: "123456"})
	assert.NoError(t, err)

	_, err = v.Login(validation.LoginPayload{Email: "", Password: "12345"})
	var valErr *apperrors.ValidationError
	if assert.ErrorAs(t, err, &valErr) {
		assert.Len(t, valErr.Fields, 2)
	}
}
