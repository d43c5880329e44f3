package medication

import (
	"math"
	"testing"

	appErrors "drone-fleet-manager/pkg/errors"
)

func TestValidateName(t *testing.T) {
	valid := []string{"Paracetamol-500mg", "AMOX_250", "abc", "A-B_c1"}
	for _, name := range valid {
		if err := ValidateName(name); err != nil {
			t.Errorf("ValidateName(%q) = %v, want nil", name, err)
		}
	}

	invalid := map[string]string{
		"":            "Medication name cannot be empty",
		"aspirin 100": "Medication name can only contain letters, numbers, hyphens, and underscores",
		"para!":       "Medication name can only contain letters, numbers, hyphens, and underscores",
		"med.1":       "Medication name can only contain letters, numbers, hyphens, and underscores",
	}
	for name, wantMsg := range invalid {
		err := ValidateName(name)
		if err == nil {
			t.Errorf("ValidateName(%q) = nil, want error", name)
			continue
		}
		assertValidationError(t, err, wantMsg)
	}
}

func TestValidateCode(t *testing.T) {
	valid := []string{"PARA_500", "ABC", "A1_B2", "123"}
	for _, code := range valid {
		if err := ValidateCode(code); err != nil {
			t.Errorf("ValidateCode(%q) = %v, want nil", code, err)
		}
	}

	invalid := map[string]string{
		"":         "Medication code cannot be empty",
		"para_500": "Medication code can only contain uppercase letters, underscores, and numbers",
		"AB-CD":    "Medication code can only contain uppercase letters, underscores, and numbers",
		"AB CD":    "Medication code can only contain uppercase letters, underscores, and numbers",
	}
	for code, wantMsg := range invalid {
		err := ValidateCode(code)
		if err == nil {
			t.Errorf("ValidateCode(%q) = nil, want error", code)
			continue
		}
		assertValidationError(t, err, wantMsg)
	}
}

func TestValidateWeight(t *testing.T) {
	valid := []float64{0.1, 1, 50, 499.9}
	for _, w := range valid {
		if err := ValidateWeight(w); err != nil {
			t.Errorf("ValidateWeight(%v) = %v, want nil", w, err)
		}
	}

	invalid := []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)}
	for _, w := range invalid {
		err := ValidateWeight(w)
		if err == nil {
			t.Errorf("ValidateWeight(%v) = nil, want error", w)
			continue
		}
		assertValidationError(t, err, "Medication weight must be a positive number")
	}
}

func TestValidateOrder(t *testing.T) {
	// Name is checked before code, code before weight.
	err := Validate("", -5, "lower")
	assertValidationError(t, err, "Medication name cannot be empty")

	err = Validate("Valid-Name", -5, "lower")
	assertValidationError(t, err, "Medication code can only contain uppercase letters, underscores, and numbers")

	err = Validate("Valid-Name", -5, "CODE")
	assertValidationError(t, err, "Medication weight must be a positive number")
}

func assertValidationError(t *testing.T, err error, wantMsg string) {
	t.Helper()

	appErr, ok := err.(*appErrors.AppError)
	if !ok {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}
	if appErr.Code != appErrors.CodeValidation {
		t.Errorf("error code = %q, want %q", appErr.Code, appErrors.CodeValidation)
	}
	if appErr.Message != wantMsg {
		t.Errorf("error message = %q, want %q", appErr.Message, wantMsg)
	}
}
