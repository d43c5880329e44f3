package drone

import (
	"math"

	domainDrone "drone-fleet-manager/internal/domain/drone"
	appErrors "drone-fleet-manager/pkg/errors"
)

// ValidateRegistration applies the registration field rules beyond struct
// tag checks. Nil pointers mean the field was omitted and will default.
func ValidateRegistration(serialNumber string, weightLimit *float64, batteryCapacity *int) error {
	if len(serialNumber) > 100 {
		return appErrors.NewAppError(appErrors.CodeValidation, "Serial number must not exceed 100 characters", nil)
	}
	if weightLimit != nil {
		w := *weightLimit
		if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
			return appErrors.NewAppError(appErrors.CodeValidation, "Weight limit must be a positive number", nil)
		}
		if w > domainDrone.MaxWeightLimit {
			return appErrors.NewAppError(appErrors.CodeValidation, "Weight limit must not exceed 500gr", nil)
		}
	}
	if batteryCapacity != nil {
		b := *batteryCapacity
		if b < 0 || b > 100 {
			return appErrors.NewAppError(appErrors.CodeValidation, "Battery capacity must be between 0 and 100 percent", nil)
		}
	}
	return nil
}
