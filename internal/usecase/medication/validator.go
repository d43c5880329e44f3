package medication

import (
	"math"
	"regexp"

	appErrors "drone-fleet-manager/pkg/errors"
)

var (
	nameRe = regexp.MustCompile(`^[a-zA-Z0-9\-_]+$`)
	codeRe = regexp.MustCompile(`^[A-Z0-9_]+$`)
)

// ValidateName checks medication name grammar: letters, numbers,
// hyphens, and underscores only.
func ValidateName(name string) error {
	if name == "" {
		return appErrors.NewAppError(appErrors.CodeValidation, "Medication name cannot be empty", nil)
	}
	if !nameRe.MatchString(name) {
		return appErrors.NewAppError(appErrors.CodeValidation, "Medication name can only contain letters, numbers, hyphens, and underscores", nil)
	}
	return nil
}

// ValidateCode checks medication code grammar: uppercase letters,
// underscores, and numbers only.
func ValidateCode(code string) error {
	if code == "" {
		return appErrors.NewAppError(appErrors.CodeValidation, "Medication code cannot be empty", nil)
	}
	if !codeRe.MatchString(code) {
		return appErrors.NewAppError(appErrors.CodeValidation, "Medication code can only contain uppercase letters, underscores, and numbers", nil)
	}
	return nil
}

// ValidateWeight rejects non-finite and non-positive weights.
func ValidateWeight(weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return appErrors.NewAppError(appErrors.CodeValidation, "Medication weight must be a positive number", nil)
	}
	return nil
}

// Validate runs all medication field checks in order and returns the
// first failure.
func Validate(name string, weight float64, code string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := ValidateCode(code); err != nil {
		return err
	}
	if err := ValidateWeight(weight); err != nil {
		return err
	}
	return nil
}
