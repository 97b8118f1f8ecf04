package middleware

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// hexIDPattern matches 0x-prefixed lowercase-or-uppercase hex identifiers
// as used for claimant addresses and item IDs. The length cap keeps
// identifiers within the store's column width.
var hexIDPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{1,126}$`)

// SetupValidator configures the request validator with custom tags.
// Must be called once before the router starts serving.
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// Use JSON tag names for field names in errors
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			return name
		})

		_ = v.RegisterValidation("hexid", func(fl validator.FieldLevel) bool {
			return hexIDPattern.MatchString(fl.Field().String())
		})
	}
}

// FormatValidationError renders a binding error as a single human-readable
// message. Non-validator errors (malformed JSON, type mismatches) pass
// through unchanged.
func FormatValidationError(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	parts := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		parts = append(parts, e.Field()+": "+validationMessage(e))
	}
	return strings.Join(parts, "; ")
}

// validationMessage returns a human-readable validation message
func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "this field is required"
	case "hexid":
		return "must be a 0x-prefixed hex identifier"
	case "min":
		if e.Type().Kind() == reflect.Slice {
			return "must contain at least " + e.Param() + " items"
		}
		return "must be at least " + e.Param()
	case "max":
		if e.Type().Kind() == reflect.Slice {
			return "must contain at most " + e.Param() + " items"
		}
		return "must be at most " + e.Param()
	default:
		return "invalid value"
	}
}
