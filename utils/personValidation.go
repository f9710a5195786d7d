package utils

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidatePersonInput checks the add-person form fields. Only the presence
// rules of the schema are enforced; email and phone number formats stay
// free-form on purpose.
func ValidatePersonInput(firstName, lastName string) error {
	return validation.Errors{
		"first_name": validation.Validate(firstName, validation.Required, validation.Length(1, 255)),
		"last_name":  validation.Validate(lastName, validation.Required, validation.Length(1, 255)),
	}.Filter()
}
