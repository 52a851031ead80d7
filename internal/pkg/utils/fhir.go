package utils

import (
	"encoding/json"
	"patientbridge-service/internal/pkg/constvars"
	"patientbridge-service/internal/pkg/dto/requests"
	"patientbridge-service/internal/pkg/dto/responses"
	"patientbridge-service/internal/pkg/fhir_dto"
	"strconv"
	"strings"
)

// BuildPatientResource constructs a fresh FHIR Patient from flat create
// fields. Pure construction, no validation; the schema gate runs on the
// result afterwards.
func BuildPatientResource(given, family, gender, birthDate string, phone *int64) *fhir_dto.Patient {
	resource := &fhir_dto.Patient{
		ResourceType: constvars.ResourcePatient,
		Name: []fhir_dto.HumanName{
			{
				Use:    constvars.FhirNameUseOfficial,
				Family: family,
				Given:  []string{given},
			},
		},
		Gender:    strings.ToLower(gender),
		BirthDate: birthDate,
	}
	if phone != nil {
		resource.Telecom = []fhir_dto.ContactPoint{
			{
				System: constvars.FhirTelecomSystemPhone,
				Value:  strconv.FormatInt(*phone, 10),
			},
		}
	}
	return resource
}

// ApplyPatientPatch merges an update into a copy of the fetched resource
// and returns the copy; the input is never mutated. Touching given or
// family collapses the name list to its patched first entry. Setting a
// phone replaces the whole telecom list with a single phone entry, while
// clearing only filters phone entries out; the asymmetry is intentional.
func ApplyPatientPatch(existing *fhir_dto.Patient, patch *requests.UpdatePatient) *fhir_dto.Patient {
	merged := *existing

	if patch.Given != nil || patch.Family != nil {
		var nameEntry fhir_dto.HumanName
		if len(existing.Name) > 0 {
			nameEntry = existing.Name[0]
		}
		if patch.Given != nil {
			nameEntry.Given = []string{*patch.Given}
		}
		if patch.Family != nil {
			nameEntry.Family = *patch.Family
		}
		merged.Name = []fhir_dto.HumanName{nameEntry}
	}

	if patch.Gender != nil {
		merged.Gender = strings.ToLower(*patch.Gender)
	}
	if patch.BirthDate != nil {
		merged.BirthDate = *patch.BirthDate
	}

	if patch.Phone != nil {
		if patch.Phone.Clear {
			telecom := make([]fhir_dto.ContactPoint, 0, len(existing.Telecom))
			for _, entry := range existing.Telecom {
				if entry.System != constvars.FhirTelecomSystemPhone {
					telecom = append(telecom, entry)
				}
			}
			merged.Telecom = telecom
		} else {
			merged.Telecom = []fhir_dto.ContactPoint{
				{
					System: constvars.FhirTelecomSystemPhone,
					Value:  strconv.FormatInt(patch.Phone.Value, 10),
				},
			}
		}
	}

	return &merged
}

// ExtractPatientSummary flattens a fetched resource into a PatientSummary.
// Returns nil when the resource is not a Patient. Identifier preference:
// first identifier value, then first identifier element id, then the
// resource id assigned by the server.
func ExtractPatientSummary(resource *fhir_dto.Patient) *responses.PatientSummary {
	if resource == nil || resource.ResourceType != constvars.ResourcePatient {
		return nil
	}

	identifier := resource.ID
	if len(resource.Identifier) > 0 {
		first := resource.Identifier[0]
		if first.Value != "" {
			identifier = first.Value
		} else if first.ID != "" {
			identifier = first.ID
		}
	}

	var given, family string
	if len(resource.Name) > 0 {
		nameEntry := resource.Name[0]
		if len(nameEntry.Given) > 0 {
			given = strings.TrimSpace(nameEntry.Given[0])
		}
		family = strings.TrimSpace(nameEntry.Family)
	}

	var phone string
	for _, entry := range resource.Telecom {
		if entry.System == constvars.FhirTelecomSystemPhone && entry.Value != "" {
			phone = entry.Value
			break
		}
	}

	var lastUpdated string
	if resource.Meta != nil {
		lastUpdated = resource.Meta.LastUpdated
	}

	return &responses.PatientSummary{
		ID:          resource.ID,
		Identifier:  identifier,
		Given:       given,
		Family:      family,
		Gender:      resource.Gender,
		BirthDate:   resource.BirthDate,
		Phone:       phone,
		LastUpdated: lastUpdated,
	}
}

// ExtractPatientSummaryFromEntry accepts either a bundle entry wrapper or
// a bare resource. Entries that do not decode into a Patient are dropped.
func ExtractPatientSummaryFromEntry(raw json.RawMessage) *responses.PatientSummary {
	if len(raw) == 0 {
		return nil
	}

	var wrapper struct {
		Resource json.RawMessage `json:"resource"`
	}
	if err := json.Unmarshal(raw, &wrapper); err == nil && len(wrapper.Resource) > 0 {
		raw = wrapper.Resource
	}

	resource := new(fhir_dto.Patient)
	if err := json.Unmarshal(raw, resource); err != nil {
		return nil
	}
	return ExtractPatientSummary(resource)
}
