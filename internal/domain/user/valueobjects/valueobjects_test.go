package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"Admin@Company.com", "admin@company.com", false},
		{"  it@company.io ", "it@company.io", false},
		{"", "", true},
		{"no-at-sign", "", true},
		{"a@b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NewEmail(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestFullName(t *testing.T) {
	n, err := NewFullName("  jane   van der berg ")
	require.NoError(t, err)
	assert.Equal(t, "jane van der berg", n.String())
	assert.Equal(t, "Jane Van Der Berg", n.DisplayName())
	assert.Equal(t, "JVDB", n.Initials())

	_, err = NewFullName("   ")
	assert.Error(t, err)
}
