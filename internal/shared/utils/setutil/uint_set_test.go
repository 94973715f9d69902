package setutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUintSet(t *testing.T) {
	s := NewUintSet(3, 1, 3)
	s.Add(2)

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Has(1))
	assert.False(t, s.Has(9))
	assert.Equal(t, []uint{1, 2, 3}, s.Sorted())
}

func TestUintSet_Missing(t *testing.T) {
	found := NewUintSet(1, 2)
	want := NewUintSet(4, 2, 1, 7)

	assert.Equal(t, []uint{4, 7}, found.Missing(want))
	assert.Nil(t, want.Missing(found))
}
