package utils

import (
	"errors"
	"patientbridge-service/internal/pkg/constvars"
	"patientbridge-service/internal/pkg/dto/requests"
	"patientbridge-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBirthDateNotFuture(t *testing.T) {
	t.Run("Past Date Accepted", func(t *testing.T) {
		assert.NoError(t, ValidateBirthDateNotFuture("1990-05-04"))
	})

	t.Run("Today Accepted", func(t *testing.T) {
		today := time.Now().Format("2006-01-02")
		assert.NoError(t, ValidateBirthDateNotFuture(today))
	})

	t.Run("Tomorrow Rejected", func(t *testing.T) {
		tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
		err := ValidateBirthDateNotFuture(tomorrow)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientBirthDateInFuture, customErr.ClientMessage)
	})

	t.Run("Far Future Rejected", func(t *testing.T) {
		assert.Error(t, ValidateBirthDateNotFuture("2099-01-01"))
	})

	t.Run("Unparseable Dates Skip The Rule", func(t *testing.T) {
		for _, birthDate := range []string{
			"not-a-date",
			"2099",
			"2099-01",
			"2099-01-01-01",
			"2099-xx-01",
			"2099-02-30",
			"",
		} {
			assert.NoError(t, ValidateBirthDateNotFuture(birthDate), birthDate)
		}
	})
}

func TestSanitizePatientRequests(t *testing.T) {
	t.Run("Create Trims All Fields", func(t *testing.T) {
		input := &requests.CreatePatient{
			Given:     "  John ",
			Family:    " Doe",
			Gender:    " male ",
			BirthDate: " 1990-05-04 ",
		}
		SanitizeCreatePatientRequest(input)
		assert.Equal(t, "John", input.Given)
		assert.Equal(t, "Doe", input.Family)
		assert.Equal(t, "male", input.Gender)
		assert.Equal(t, "1990-05-04", input.BirthDate)
	})

	t.Run("Update Trims Only Present Fields", func(t *testing.T) {
		given := "  Jane "
		input := &requests.UpdatePatient{Given: &given}
		SanitizeUpdatePatientRequest(input)
		assert.Equal(t, "Jane", *input.Given)
		assert.Nil(t, input.Family)
	})
}

func TestValidateStruct(t *testing.T) {
	t.Run("Create Missing Fields", func(t *testing.T) {
		err := ValidateStruct(&requests.CreatePatient{Given: "John"})
		assert.Error(t, err)
	})

	t.Run("Create Whitespace Only Field Fails After Sanitization", func(t *testing.T) {
		phone := int64(123)
		input := &requests.CreatePatient{
			Given:     "John",
			Family:    "   ",
			Gender:    "male",
			BirthDate: "1990-05-04",
			Phone:     &phone,
		}
		SanitizeCreatePatientRequest(input)
		assert.Error(t, ValidateStruct(input))
	})

	t.Run("Update Empty Present Field Fails", func(t *testing.T) {
		empty := ""
		assert.Error(t, ValidateStruct(&requests.UpdatePatient{Gender: &empty}))
	})

	t.Run("Update All Absent Passes", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(&requests.UpdatePatient{}))
	})
}
