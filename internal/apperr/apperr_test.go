package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", MissingField("name"), http.StatusBadRequest},
		{"malformed", MalformedPayload(errors.New("eof")), http.StatusBadRequest},
		{"missing id", MissingIdentifier("Camp"), http.StatusBadRequest},
		{"invalid id", InvalidIdentifier(errors.New("bad hex")), http.StatusBadRequest},
		{"duplicate", Duplicate("Email already registered", nil), http.StatusConflict},
		{"conflict", Conflict("Trust was modified concurrently"), http.StatusConflict},
		{"not found", NotFound("Donor"), http.StatusNotFound},
		{"unsupported", Unsupported(), http.StatusMethodNotAllowed},
		{"store", StoreFailure(errors.New("connection reset")), http.StatusInternalServerError},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Status(tc.err))
		})
	}
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "Missing required field: bloodGroup", MissingField("bloodGroup").Error())
	assert.Equal(t, "Camp ID required", MissingIdentifier("Camp").Error())
	assert.Equal(t, "Trust not found", NotFound("Trust").Error())
	assert.Equal(t, "Database error: timeout", Message(StoreFailure(errors.New("timeout"))))
	assert.Equal(t, "Database error: boom", Message(errors.New("boom")))
}

func TestIsMatchesKindThroughWrapping(t *testing.T) {
	err := fmt.Errorf("update camp: %w", NotFound("Camp"))

	assert.True(t, errors.Is(err, &Error{Kind: KindNotFound}))
	assert.False(t, errors.Is(err, &Error{Kind: KindDuplicate}))
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestStoreFailureUnwraps(t *testing.T) {
	cause := errors.New("server selection timeout")
	err := StoreFailure(cause)

	assert.ErrorIs(t, err, cause)
}
