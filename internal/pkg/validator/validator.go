package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidations()
}

func registerCustomValidations() {
	// Currency validation (ISO-4217 subset the platform pays out in)
	validate.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		currency := fl.Field().String()
		validCurrencies := []string{"USD", "EUR", "GBP", ""}
		for _, c := range validCurrencies {
			if currency == c {
				return true
			}
		}
		return false
	})

	// Device type validation for offer eligibility
	validate.RegisterValidation("device_type", func(fl validator.FieldLevel) bool {
		device := fl.Field().String()
		validDevices := []string{"mobile", "desktop", "tablet"}
		for _, d := range validDevices {
			if device == d {
				return true
			}
		}
		return false
	})
}

// Validate validates a struct and returns a map of field errors
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errors[field] = "This field is required"
		case "email":
			errors[field] = "Invalid email format"
		case "min":
			errors[field] = "Value is too short (min: " + err.Param() + ")"
		case "max":
			errors[field] = "Value is too long (max: " + err.Param() + ")"
		case "gte":
			errors[field] = "Value must be at least " + err.Param()
		case "lte":
			errors[field] = "Value must be at most " + err.Param()
		case "url":
			errors[field] = "Invalid URL format"
		case "oneof":
			errors[field] = "Must be one of: " + err.Param()
		case "currency":
			errors[field] = "Invalid currency. Must be: USD, EUR, or GBP"
		case "device_type":
			errors[field] = "Invalid device type. Must be: mobile, desktop, or tablet"
		default:
			errors[field] = "Invalid value"
		}
	}

	return errors
}

// ValidateVar validates a single variable
func ValidateVar(field interface{}, tag string) error {
	return validate.Var(field, tag)
}
