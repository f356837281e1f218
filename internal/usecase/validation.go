package usecase

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors lets a whole validation pass travel as a single error
// value. Handlers translate it to a 422 envelope.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, v := range e {
		msgs = append(msgs, v.Error())
	}
	return strings.Join(msgs, "; ")
}

func AsValidationErrors(err error) (ValidationErrors, bool) {
	v, ok := err.(ValidationErrors)
	return v, ok
}

func ValidateNewsletterInput(input NewsletterInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if !isValidEmail(input.Email) {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	return errors
}

func ValidateSpecsheetRequestInput(input SpecsheetRequestInput) []ValidationError {
	var errors []ValidationError

	if input.ProductID <= 0 {
		errors = append(errors, ValidationError{"product_id", "must be a positive integer"})
	}
	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if !isValidEmail(input.Email) {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	return errors
}

func ValidateProductEnquiryInput(input ProductEnquiryInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	}
	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if !isValidEmail(input.Email) {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}
	if input.Phone != "" && !isValidPhoneNumber(input.Phone) {
		errors = append(errors, ValidationError{"phone", "must be a valid phone number"})
	}

	if len(input.CartItems) == 0 {
		errors = append(errors, ValidationError{"cart_items", "must contain at least one item"})
	}
	for i, item := range input.CartItems {
		if item.ID <= 0 {
			errors = append(errors, ValidationError{fmt.Sprintf("cart_items[%d].id", i), "must be a positive integer"})
		}
		if item.Quantity < 1 {
			errors = append(errors, ValidationError{fmt.Sprintf("cart_items[%d].quantity", i), "must be at least 1"})
		}
	}

	return errors
}

func ValidateSampleRequestInput(input SampleRequestInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.FirstName) == "" {
		errors = append(errors, ValidationError{"first_name", "is required"})
	}
	if strings.TrimSpace(input.LastName) == "" {
		errors = append(errors, ValidationError{"last_name", "is required"})
	}
	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if !isValidEmail(input.Email) {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}
	if input.Phone != "" && !isValidPhoneNumber(input.Phone) {
		errors = append(errors, ValidationError{"phone", "must be a valid phone number"})
	}
	if len(input.ProductIDs) == 0 {
		errors = append(errors, ValidationError{"product_ids", "must contain at least one product"})
	}
	for i, id := range input.ProductIDs {
		if id <= 0 {
			errors = append(errors, ValidationError{fmt.Sprintf("product_ids[%d]", i), "must be a positive integer"})
		}
	}

	return errors
}

func ValidateContactInput(input ContactInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.FirstName) == "" {
		errors = append(errors, ValidationError{"first_name", "is required"})
	}
	if strings.TrimSpace(input.LastName) == "" {
		errors = append(errors, ValidationError{"last_name", "is required"})
	}
	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if !isValidEmail(input.Email) {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}
	if input.Phone != "" && !isValidPhoneNumber(input.Phone) {
		errors = append(errors, ValidationError{"phone", "must be a valid phone number"})
	}

	return errors
}

func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return false
	}
	// net/mail accepts addresses without a dot in the domain
	parts := strings.Split(addr.Address, "@")
	return len(parts) == 2 && strings.Contains(parts[1], ".")
}

func isValidPhoneNumber(phone string) bool {
	cleaned := regexp.MustCompile(`\D`).ReplaceAllString(phone, "")
	return len(cleaned) >= 7 && len(cleaned) <= 15
}
