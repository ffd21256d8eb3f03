package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindConflict, KindOf(Conflict("ride already accepted")))
	assert.Equal(t, KindForbidden, KindOf(Forbidden("not your ride")))
	assert.Equal(t, Kind(0), KindOf(errors.New("plain error")))
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("accept ride: %w", NotFound("ride %s not found", "abc"))
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.True(t, Is(err, KindNotFound))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{NotFound("missing"), http.StatusNotFound},
		{Forbidden("denied"), http.StatusForbidden},
		{Conflict("busy"), http.StatusConflict},
		{InvalidInput("bad seats"), http.StatusBadRequest},
		{errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.err), tt.err.Error())
	}
}

func TestWithData(t *testing.T) {
	payload := map[string]string{"ride_id": "r1"}
	err := Conflict("active ride exists").WithData(payload)

	appErr, ok := AsError(err)
	assert.True(t, ok)
	assert.Equal(t, payload, appErr.Data)
}
