package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/shared/errors"
)

func TestNewComment(t *testing.T) {
	c, err := NewComment(1, 2, "  Rebooted the switch  ", true, t0)
	require.NoError(t, err)
	assert.Equal(t, "Rebooted the switch", c.Content())
	assert.True(t, c.IsInternal())
	assert.Equal(t, uint(1), c.TicketID())
	assert.Equal(t, uint(2), c.UserID())

	_, err = NewComment(1, 2, " ", false, t0)
	assert.True(t, errors.IsValidationError(err))
}

func TestNewTimeEntry(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		wantErr bool
	}{
		{"positive", 15, false},
		{"zero", 0, true},
		{"negative", -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewTimeEntry(1, 2, "diagnosis", tt.minutes, t0.Add(time.Minute))
			if tt.wantErr {
				assert.True(t, errors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.minutes, e.Minutes())
		})
	}
}

func TestValidNumber(t *testing.T) {
	assert.True(t, ValidNumber("TKT-20240101-ABCDEF01"))
	assert.False(t, ValidNumber("TKT-20240101-abcdef01"))
	assert.False(t, ValidNumber("TKT-2024011-ABCDEF01"))
	assert.False(t, ValidNumber("TCK-20240101-ABCDEF01"))
}
