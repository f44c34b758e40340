package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewUserError("could not reach the sheet", cause)

	assert.Equal(t, "could not reach the sheet: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := &UserError{UserMessage: "nothing to save"}
	assert.Equal(t, "nothing to save", bare.Error())
	assert.Nil(t, bare.Unwrap())
}
