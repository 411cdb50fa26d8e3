package service

import (
	"pandimaja/internal/errors"
	"pandimaja/internal/model"
)

// ValidateLeping checks the internal consistency of a contract before it
// is written: prices must be non-negative and the buyback date, when both
// dates are present, must not precede the contract date.
func ValidateLeping(leping *model.Leping) error {
	if leping.PantHind.IsNegative() ||
		leping.ValjaOstudHind.IsNegative() ||
		leping.Ostuhind.IsNegative() ||
		leping.Muugihind.IsNegative() {
		return errors.ErrInvalidLeping
	}

	if leping.Date != nil && leping.DateValjaOstud != nil &&
		leping.DateValjaOstud.Before(*leping.Date) {
		return errors.ErrInvalidLeping
	}

	return nil
}
