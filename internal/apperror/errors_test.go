package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrValidation, http.StatusBadRequest},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrNotFound, http.StatusNotFound},
		{ErrDuplicateEmail, http.StatusBadRequest},
		{ErrIndexOutOfRange, http.StatusBadRequest},
		{ErrUnsupportedMediaType, http.StatusUnsupportedMediaType},
		{ErrPayloadTooLarge, http.StatusRequestEntityTooLarge},
		{errors.New("database on fire"), http.StatusInternalServerError},
		{nil, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusCode(tt.err), "%v", tt.err)
	}
}

func TestStatusCodeSeesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("loading interview 7: %w", ErrNotFound)
	assert.Equal(t, http.StatusNotFound, StatusCode(wrapped))

	doubly := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", ErrForbidden))
	assert.Equal(t, http.StatusForbidden, StatusCode(doubly))
}

func TestHelperConstructors(t *testing.T) {
	err := Validationf("field %s is bad", "email")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "field email is bad")

	assert.ErrorIs(t, NotFoundf("question %d", 9), ErrNotFound)
	assert.ErrorIs(t, Forbiddenf("nope"), ErrForbidden)
}
