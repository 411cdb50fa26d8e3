package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"pandimaja/internal/errors"
	"pandimaja/internal/model"
)

func date(value string) *time.Time {
	d, _ := time.Parse("2006-01-02", value)
	return &d
}

func TestValidateLeping(t *testing.T) {
	tests := []struct {
		name          string
		leping        *model.Leping
		expectedError error
	}{
		{
			name: "valid contract",
			leping: &model.Leping{
				Date:           date("2025-01-10"),
				DateValjaOstud: date("2025-02-10"),
				PantHind:       decimal.NewFromInt(100),
				ValjaOstudHind: decimal.NewFromInt(120),
			},
			expectedError: nil,
		},
		{
			name:          "no dates is valid",
			leping:        &model.Leping{PantHind: decimal.NewFromInt(50)},
			expectedError: nil,
		},
		{
			name: "buyback date before contract date",
			leping: &model.Leping{
				Date:           date("2025-02-10"),
				DateValjaOstud: date("2025-01-10"),
			},
			expectedError: errors.ErrInvalidLeping,
		},
		{
			name: "negative pawn price",
			leping: &model.Leping{
				PantHind: decimal.NewFromInt(-1),
			},
			expectedError: errors.ErrInvalidLeping,
		},
		{
			name: "negative sale price",
			leping: &model.Leping{
				Muugihind: decimal.NewFromInt(-10),
			},
			expectedError: errors.ErrInvalidLeping,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLeping(tt.leping)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
