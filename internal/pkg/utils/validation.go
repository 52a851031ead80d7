package utils

import (
	"patientbridge-service/internal/pkg/exceptions"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidateBirthDateNotFuture enforces the no-future-birth-date rule on a
// strict YYYY-MM-DD triple. Anything that does not parse as exactly three
// numeric parts forming a real calendar date skips the rule instead of
// failing it; the schema gate still sees the raw string afterwards.
func ValidateBirthDateNotFuture(birthDate string) error {
	parts := strings.Split(birthDate, "-")
	if len(parts) != 3 {
		return nil
	}

	numbers := make([]int, len(parts))
	for i, part := range parts {
		number, err := strconv.Atoi(part)
		if err != nil {
			return nil
		}
		numbers[i] = number
	}

	year, month, day := numbers[0], numbers[1], numbers[2]
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return nil
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if date.After(today) {
		return exceptions.ErrBirthDateInFuture()
	}
	return nil
}
