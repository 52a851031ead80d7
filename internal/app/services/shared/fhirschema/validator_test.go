package fhirschema

import (
	"errors"
	"path/filepath"
	"patientbridge-service/internal/app/contracts"
	"patientbridge-service/internal/pkg/constvars"
	"patientbridge-service/internal/pkg/exceptions"
	"patientbridge-service/internal/pkg/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestValidator(t *testing.T) contracts.FhirSchemaValidator {
	t.Helper()
	schemaPath := filepath.Join("..", "..", "..", "..", "..", "fhir.schema.json")
	validator, err := NewFhirSchemaValidator(schemaPath, zap.NewNop())
	require.NoError(t, err)
	return validator
}

func assertSchemaViolation(t *testing.T, err error, wantPath string) {
	t.Helper()
	require.Error(t, err)
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
	assert.Contains(t, customErr.ClientMessage, "FHIR schema validation error:")
	assert.Contains(t, customErr.ClientMessage, "on path "+wantPath)
}

func TestNewFhirSchemaValidator(t *testing.T) {
	t.Run("Loads Repository Schema", func(t *testing.T) {
		newTestValidator(t)
	})

	t.Run("Missing Schema File", func(t *testing.T) {
		_, err := NewFhirSchemaValidator("does-not-exist.json", zap.NewNop())
		assert.Error(t, err)
	})
}

func TestValidateResource(t *testing.T) {
	validator := newTestValidator(t)

	phone := int64(628123456789)

	t.Run("Built Resource Passes", func(t *testing.T) {
		resource := utils.BuildPatientResource("John", "Doe", "Male", "1990-05-04", &phone)
		assert.NoError(t, validator.ValidateResource(resource))
	})

	t.Run("Resource Without Phone Passes", func(t *testing.T) {
		resource := utils.BuildPatientResource("Jane", "Doe", "female", "1985-12-31", nil)
		assert.NoError(t, validator.ValidateResource(resource))
	})

	t.Run("Invalid Gender", func(t *testing.T) {
		resource := utils.BuildPatientResource("John", "Doe", "invalid", "1990-05-04", &phone)
		assertSchemaViolation(t, validator.ValidateResource(resource), "gender")
	})

	t.Run("Malformed BirthDate", func(t *testing.T) {
		resource := utils.BuildPatientResource("John", "Doe", "male", "not-a-date", &phone)
		assertSchemaViolation(t, validator.ValidateResource(resource), "birthDate")
	})

	t.Run("Missing ResourceType Reports Root Path", func(t *testing.T) {
		assertSchemaViolation(t, validator.ValidateResource(map[string]interface{}{}), "root")
	})
}
