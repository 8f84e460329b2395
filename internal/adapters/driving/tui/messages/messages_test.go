package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/calendlam/calendlam/internal/core/domain"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view     ViewType
		expected string
	}{
		{ViewSignatures, "signatures"},
		{ViewSheets, "sheets"},
		{ViewSheet, "sheet"},
		{ViewHelp, "help"},
		{ViewType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.view.String())
		})
	}
}

func TestViewType_Parent(t *testing.T) {
	assert.Equal(t, ViewSheets, ViewSheet.Parent())
	assert.Equal(t, ViewSignatures, ViewSheets.Parent())
	assert.Equal(t, ViewSignatures, ViewSignatures.Parent())
	assert.Equal(t, ViewSignatures, ViewHelp.Parent())
}

func TestViewSignatures_IsZeroValue(t *testing.T) {
	var v ViewType
	assert.Equal(t, ViewSignatures, v)
}

func TestBookletLoaded(t *testing.T) {
	b := &domain.Booklet{Year: 2026}
	msg := BookletLoaded{Booklet: b}
	assert.Same(t, b, msg.Booklet)
	assert.NoError(t, msg.Err)

	failed := BookletLoaded{Err: errors.New("boom")}
	assert.Nil(t, failed.Booklet)
	assert.EqualError(t, failed.Err, "boom")
}
