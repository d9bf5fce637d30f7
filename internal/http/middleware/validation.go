package middleware

import (
	"errors"
	"io"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/iyhunko/product-catalog-api/internal/apperror"
)

// productPayload mirrors the product body loosely so that type mismatches reach the validator.
type productPayload struct {
	Name     any `json:"name" validate:"required,text"`
	Price    any `json:"price" validate:"required,positive_number"`
	Category any `json:"category" validate:"required,text"`
}

var fieldMessages = map[string]string{
	"Name":     "Name is required and must be text",
	"Price":    "Price must be a positive number",
	"Category": "Category is required and must be text",
}

var productValidator = newProductValidator()

func newProductValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("text", isText)
	_ = v.RegisterValidation("positive_number", isPositiveNumber)
	return v
}

func isText(fl validator.FieldLevel) bool {
	f := fl.Field()
	return f.Kind() == reflect.String && f.String() != ""
}

// JSON numbers decode into any as float64.
func isPositiveNumber(fl validator.FieldLevel) bool {
	f := fl.Field()
	return f.Kind() == reflect.Float64 && f.Float() > 0
}

// ValidateProduct checks name, price and category of the JSON body. Every failed rule
// is reported, in field order. The body stays available to later handlers through
// ShouldBindBodyWith.
func ValidateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload productPayload
		if err := c.ShouldBindBodyWith(&payload, binding.JSON); err != nil && !errors.Is(err, io.EOF) {
			abortWithError(c, apperror.Validation("Invalid JSON body"))
			return
		}

		if details := validateProduct(payload); len(details) > 0 {
			abortWithError(c, apperror.Validation("Validation failed", details...))
			return
		}
		c.Next()
	}
}

func validateProduct(payload productPayload) []string {
	err := productValidator.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, fieldMessages[fe.StructField()])
	}
	return details
}
