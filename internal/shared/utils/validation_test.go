package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"helpdesk/internal/shared/errors"
)

type sampleRequest struct {
	Title   string `json:"title" validate:"required,max=10"`
	Minutes int    `json:"minutes" validate:"gt=0"`
	Role    string `json:"role" validate:"omitempty,oneof=admin it_staff user"`
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, ValidateStruct(sampleRequest{Title: "Printer", Minutes: 5}))

	err := ValidateStruct(sampleRequest{Title: "", Minutes: 0, Role: "boss"})
	appErr := errors.GetAppError(err)
	if assert.NotNil(t, appErr) {
		assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
		assert.Contains(t, appErr.Details, "title is required")
		assert.Contains(t, appErr.Details, "minutes must be greater than 0")
		assert.Contains(t, appErr.Details, "role must be one of [admin it_staff user]")
	}
}
