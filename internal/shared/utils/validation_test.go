package utils

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskhub/deskhub/internal/shared/errors"
)

type sampleRequest struct {
	Title string `json:"title" validate:"required,max=5"`
}

type colorRequest struct {
	Color string `json:"color" validate:"omitempty,is_color"`
}

func TestValidateStruct_ReportsJSONFieldNames(t *testing.T) {
	err := ValidateStruct(sampleRequest{Title: "too long title"})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	assert.Contains(t, appErr.Details, "title must be at most 5 characters long")
}

func TestRegisterValidation_CustomRule(t *testing.T) {
	require.NoError(t, RegisterValidation("is_color", func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		return v == "red" || v == "blue"
	}))

	assert.NoError(t, ValidateStruct(colorRequest{Color: "red"}))
	assert.Error(t, ValidateStruct(colorRequest{Color: "green"}))
}

func TestTranslateBindError_NonValidation(t *testing.T) {
	err := TranslateBindError(assert.AnError)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Invalid request body", appErr.Message)
	assert.Nil(t, TranslateBindError(nil))
}
