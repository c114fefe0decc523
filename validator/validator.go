package validator

import (
	"regexp"
	"strings"

	"farmpro/dto"
	"farmpro/errors"
)

// ValidateEarningInput enforces the creation contract: owner, amount and
// source must be present, and the amount must be non-negative.
func ValidateEarningInput(input *dto.CreateEarningInput) error {
	if input.FarmerID == "" || input.Amount == nil || input.Source == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "farmerId, amount, and source are required", nil)
	}

	if input.Amount.IsNegative() {
		return errors.NewAppError(errors.ErrCodeValidation, "amount must be a non-negative number", nil)
	}

	return nil
}

// ValidateExpenseInput mirrors the earning contract with category as the
// required label. Both creation paths validate; neither skips the check.
func ValidateExpenseInput(input *dto.CreateExpenseInput) error {
	if input.FarmerID == "" || input.Amount == nil || input.Category == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "farmerId, amount, and category are required", nil)
	}

	if input.Amount.IsNegative() {
		return errors.NewAppError(errors.ErrCodeValidation, "amount must be a non-negative number", nil)
	}

	return nil
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks the address used for passwordless sign-in.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "email is required", nil)
	}
	if !emailRegex.MatchString(email) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "email is not valid", nil)
	}
	return nil
}
