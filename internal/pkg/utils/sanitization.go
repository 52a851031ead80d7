package utils

import (
	"patientbridge-service/internal/pkg/dto/requests"
	"strings"
)

func trimPointer(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

func SanitizeCreatePatientRequest(input *requests.CreatePatient) {
	input.Given = strings.TrimSpace(input.Given)
	input.Family = strings.TrimSpace(input.Family)
	input.Gender = strings.TrimSpace(input.Gender)
	input.BirthDate = strings.TrimSpace(input.BirthDate)
}

func SanitizeUpdatePatientRequest(input *requests.UpdatePatient) {
	trimPointer(input.Given)
	trimPointer(input.Family)
	trimPointer(input.Gender)
	trimPointer(input.BirthDate)
}
