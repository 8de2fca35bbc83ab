package constants

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundfKeepsIdentifier(t *testing.T) {
	err := NotFoundf("Entregable con ID %d no encontrado", 999)
	assert.Equal(t, http.StatusNotFound, err.Code())
	assert.Contains(t, err.Error(), "999")
}

func TestCodedErrorSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("store.Get: %w", ErrDBNotFound)

	var ce *CodedError
	require.True(t, errors.As(wrapped, &ce))
	assert.Equal(t, http.StatusNotFound, ce.Code())
	assert.ErrorIs(t, wrapped, ErrDBNotFound)
}
