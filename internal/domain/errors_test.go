package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDependencyError_MensajeYCategoria(t *testing.T) {
	var err error = &DependencyError{Resource: "brand", Dependents: "parts", Count: 3}
	wrapped := fmt.Errorf("delete brand: %w", err)

	assert.True(t, errors.Is(wrapped, ErrDependency))
	assert.Contains(t, wrapped.Error(), "3 parts")

	var depErr *DependencyError
	assert.True(t, errors.As(wrapped, &depErr))
	assert.Equal(t, 3, depErr.Count)
}

func TestHelpers_EnvuelvenSentinelas(t *testing.T) {
	assert.True(t, errors.Is(Invalid("%s is required", "partNo"), ErrInvalidInput))
	assert.True(t, errors.Is(Duplicate("Brand already exists"), ErrDuplicate))
	assert.True(t, errors.Is(NotFound("store not found"), ErrNotFound))
	assert.Equal(t, "invalid input: partNo is required", Invalid("%s is required", "partNo").Error())
}

func TestError_SobreviveAlEnvoltorio(t *testing.T) {
	wrapped := fmt.Errorf("insert adjustment: %w", Duplicate("Adjustment already exists"))

	var de *Error
	assert.True(t, errors.As(wrapped, &de))
	assert.Equal(t, "Adjustment already exists", de.Msg)
	assert.True(t, errors.Is(wrapped, ErrDuplicate))
	assert.False(t, errors.Is(wrapped, ErrNotFound))
}
