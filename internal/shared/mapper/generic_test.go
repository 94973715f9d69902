package mapper

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSlice(t *testing.T) {
	t.Run("nil input yields empty slice", func(t *testing.T) {
		got := MapSlice[int, string](nil, strconv.Itoa)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("maps in order", func(t *testing.T) {
		got := MapSlice([]int{3, 1, 2}, strconv.Itoa)
		assert.Equal(t, []string{"3", "1", "2"}, got)
	})
}

func TestMapSliceWithError(t *testing.T) {
	errOdd := errors.New("odd value")
	double := func(i int) (int, error) {
		if i%2 != 0 {
			return 0, errOdd
		}
		return i * 2, nil
	}

	tests := []struct {
		name    string
		input   []int
		want    []int
		wantErr error
	}{
		{name: "nil input", input: nil, want: []int{}},
		{name: "all even", input: []int{2, 4}, want: []int{4, 8}},
		{name: "stops on error", input: []int{2, 3, 4}, wantErr: errOdd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MapSliceWithError(tt.input, double)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
