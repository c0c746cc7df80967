package portfolio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(experienceDetail, Experience{})
	return v
}

// experienceDetail enforces that a card has exactly one of Detail or Highlights.
func experienceDetail(sl validator.StructLevel) {
	e := sl.Current().Interface().(Experience)
	hasDetail := strings.TrimSpace(e.Detail) != ""
	hasList := len(e.Highlights) > 0
	switch {
	case hasDetail && hasList:
		sl.ReportError(e.Detail, "Detail", "detail", "detail_xor_highlights", "")
	case !hasDetail && !hasList:
		sl.ReportError(e.Detail, "Detail", "detail", "detail_or_highlights", "")
	}
}

// Validate checks the shape of every record. It is run once at startup.
func (s *Site) Validate() error {
	if err := validate.Struct(s); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func formatValidationErrors(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		msgs = append(msgs, formatFieldError(e))
	}
	return &ContentError{Problems: msgs}
}

func formatFieldError(e validator.FieldError) string {
	field := strings.TrimPrefix(e.Namespace(), "Site.")

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must have at least %s entries", field, e.Param())
	case "hexcolor":
		return fmt.Sprintf("%s must be a hex colour, got %q", field, e.Value())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "detail_xor_highlights":
		return fmt.Sprintf("%s and highlights are mutually exclusive", field)
	case "detail_or_highlights":
		return fmt.Sprintf("%s or highlights is required", field)
	default:
		return fmt.Sprintf("%s failed validation: %s", field, e.Tag())
	}
}
