package util

import (
	"errors"
	"math"
	"testing"

	"github.com/genc-murat/crystalmetrics/internal/core/models"
)

func TestValidateFinite(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{name: "zero", value: 0, wantErr: false},
		{name: "negative", value: -3, wantErr: false},
		{name: "NaN", value: math.NaN(), wantErr: true},
		{name: "positive infinity", value: math.Inf(1), wantErr: true},
		{name: "negative infinity", value: math.Inf(-1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateFinite("v", tt.value); (err != nil) != tt.wantErr {
				t.Errorf("ValidateFinite() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateNonNegative(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{name: "zero", value: 0, wantErr: false},
		{name: "above hundred", value: 350, wantErr: false},
		{name: "negative", value: -1, wantErr: true},
		{name: "NaN", value: math.NaN(), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNonNegative("cpu", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNonNegative() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, models.ErrInvalidValue) {
				t.Errorf("ValidateNonNegative() error = %v, want ErrInvalidValue", err)
			}
		})
	}
}
