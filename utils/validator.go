package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"soulsrpg/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Closed enums: invalid values are rejected here, not by the database.
	validate.RegisterValidation("gamecategory", func(fl validator.FieldLevel) bool {
		return models.Category(fl.Field().String()).Valid()
	})
	validate.RegisterValidation("subgenre", func(fl validator.FieldLevel) bool {
		return models.SubGenre(fl.Field().String()).Valid()
	})
	validate.RegisterValidation("platform", func(fl validator.FieldLevel) bool {
		return models.Platform(fl.Field().String()).Valid()
	})
}

// ValidateStruct validates a struct against its validate tags.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidationErrorResponse sends a 400 envelope with per-field messages.
func ValidationErrorResponse(c *gin.Context, err error) {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		errs := make(map[string]string)
		for _, e := range validationErrors {
			errs[e.Field()] = formatValidationError(e)
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Validation failed",
			"errors":  errs,
		})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
}

func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gte":
		return e.Field() + " must be greater than or equal to " + e.Param()
	case "lte":
		return e.Field() + " must be less than or equal to " + e.Param()
	case "gamecategory":
		return e.Field() + " must be one of: action-rpg, jrpg, crpg"
	case "subgenre":
		return e.Field() + " is not a valid sub-genre"
	case "platform":
		return e.Field() + " is not a valid platform"
	case "http_url":
		return e.Field() + " must be a valid http(s) URL"
	default:
		return e.Field() + " is invalid"
	}
}
