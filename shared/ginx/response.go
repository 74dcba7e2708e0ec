package ginx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Detail is the uniform error body: a human-readable message plus
// optional per-field validation errors.
type Detail struct {
	Detail string       `json:"detail"`
	Errors []FieldError `json:"errors,omitempty"`
}

// BadRequest writes a 400 response. Binding errors produced by the
// validator are expanded into field-level details.
func BadRequest(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]FieldError, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			details = append(details, FieldError{
				Field:   fieldErr.Field(),
				Message: messageFor(fieldErr),
			})
		}
		c.JSON(http.StatusBadRequest, Detail{Detail: "Validation failed", Errors: details})
		return
	}

	c.JSON(http.StatusBadRequest, Detail{Detail: err.Error()})
}

// Error writes a plain detail body with the given status.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Detail{Detail: message})
}

func messageFor(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fieldErr.Field() + " is required"
	case "oneof":
		return fieldErr.Field() + " must be one of: " + fieldErr.Param()
	case "min", "gte":
		return fieldErr.Field() + " must be at least " + fieldErr.Param()
	case "max", "lte":
		return fieldErr.Field() + " must be at most " + fieldErr.Param()
	case "gt":
		return fieldErr.Field() + " must be greater than " + fieldErr.Param()
	default:
		return fieldErr.Field() + " is invalid"
	}
}
