package serverutils

import (
	"testing"

	"notes-app-be/internal/apperr"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Title   string `validate:"required"`
	Content string `validate:"required"`
}

func TestValidateRequest(t *testing.T) {
	t.Run("valid struct passes", func(t *testing.T) {
		err := ValidateRequest(sampleRequest{Title: "t", Content: "c"})
		assert.NoError(t, err)
	})

	t.Run("missing fields fold into the validation family", func(t *testing.T) {
		err := ValidateRequest(sampleRequest{Title: "t"})
		assert.ErrorIs(t, err, apperr.ErrValidation)
		assert.Contains(t, err.Error(), "content is required")
	})
}
