package requests

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
)

type CreatePatient struct {
	Given     string `json:"given" validate:"required"`
	Family    string `json:"family" validate:"required"`
	Gender    string `json:"gender" validate:"required"`
	BirthDate string `json:"birthDate" validate:"required"`
	Phone     *int64 `json:"phone" validate:"required"`

	FhirServerURL string `json:"-"`
}

type UpdatePatient struct {
	Given     *string     `json:"given" validate:"omitnil,min=1"`
	Family    *string     `json:"family" validate:"omitnil,min=1"`
	Gender    *string     `json:"gender" validate:"omitnil,min=1"`
	BirthDate *string     `json:"birthDate" validate:"omitnil,min=1"`
	Phone     *PhonePatch `json:"phone"`

	PatientID     string `json:"-"`
	FhirServerURL string `json:"-"`
}

// PhonePatch is the three-way phone field of an update: a nil *PhonePatch
// means the phone is untouched, an explicit empty string clears it, and an
// integer replaces it.
type PhonePatch struct {
	Clear bool
	Value int64
}

func (p *PhonePatch) UnmarshalJSON(data []byte) error {
	token := strings.TrimSpace(string(data))
	if token == `""` {
		p.Clear = true
		return nil
	}
	value, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return &json.UnmarshalTypeError{
			Value: "value " + token,
			Type:  reflect.TypeOf(int64(0)),
			Field: "phone",
		}
	}
	p.Value = value
	return nil
}

type SearchPatients struct {
	Name       string
	Phone      string
	Identifier string
	Sort       string

	FhirServerURL string
}
