package apperrors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not authenticated", New(NotAuthenticated, "login first"), 401},
		{"not found", New(NotFound, "missing"), 404},
		{"validation", New(ValidationError, "bad input"), 422},
		{"generation", New(GenerationError, "provider down"), 502},
		{"persistence", New(PersistenceError, "db down"), 500},
		{"plain error", fmt.Errorf("boom"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestKindOfUnwrapsWrappedErrors(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := fmt.Errorf("saving progress: %w", Wrap(PersistenceError, "Failed to save!", cause))

	assert.Equal(t, PersistenceError, KindOf(err))
	assert.Equal(t, "Failed to save!", UserMessage(err))
}

func TestUserMessageHidesInternalDetail(t *testing.T) {
	err := Wrap(PersistenceError, "Failed to save course progress!", fmt.Errorf("pq: duplicate key"))

	assert.Equal(t, "Failed to save course progress!", UserMessage(err))
	assert.Contains(t, err.Error(), "duplicate key")

	assert.Equal(t, "Something went wrong!", UserMessage(fmt.Errorf("raw")))
}
