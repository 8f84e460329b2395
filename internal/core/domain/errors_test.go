package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrConfiguration", ErrConfiguration},
		{"ErrInvariantViolation", ErrInvariantViolation},
		{"ErrNotFound", ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrors_Distinct(t *testing.T) {
	assert.False(t, errors.Is(ErrConfiguration, ErrInvariantViolation))
	assert.False(t, errors.Is(ErrInvariantViolation, ErrConfiguration))
	assert.False(t, errors.Is(ErrNotFound, ErrConfiguration))
}

func TestErrors_Wrapping(t *testing.T) {
	err := fmt.Errorf("%w: pages per signature must be even", ErrConfiguration)

	assert.ErrorIs(t, err, ErrConfiguration)
	assert.NotErrorIs(t, err, ErrInvariantViolation)
	assert.Equal(t, "configuration error: pages per signature must be even", err.Error())
}
