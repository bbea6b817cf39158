package util

import (
	"fmt"
	"math"

	"github.com/genc-murat/crystalmetrics/internal/core/models"
)

func ValidateFinite(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %s must be finite, got %v", models.ErrInvalidValue, name, value)
	}
	return nil
}

func ValidateNonNegative(name string, value float64) error {
	if err := ValidateFinite(name, value); err != nil {
		return err
	}
	if value < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %v", models.ErrInvalidValue, name, value)
	}
	return nil
}
