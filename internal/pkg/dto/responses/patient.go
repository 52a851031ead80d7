package responses

// PatientSummary is the flat view of a FHIR Patient resource. Every field
// except ID is optional; an empty string means the source resource did not
// carry the field.
type PatientSummary struct {
	ID          string `json:"id"`
	Identifier  string `json:"identifier,omitempty"`
	Given       string `json:"given,omitempty"`
	Family      string `json:"family,omitempty"`
	Gender      string `json:"gender,omitempty"`
	BirthDate   string `json:"birthDate,omitempty"`
	Phone       string `json:"phone,omitempty"`
	LastUpdated string `json:"lastUpdated,omitempty"`
}

type ServiceInfo struct {
	Message string `json:"message"`
	Version string `json:"version"`
}
