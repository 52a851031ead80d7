package contracts

import (
	"context"
	"patientbridge-service/internal/pkg/dto/requests"
	"patientbridge-service/internal/pkg/dto/responses"
	"patientbridge-service/internal/pkg/fhir_dto"
)

type PatientUsecase interface {
	ListPatients(ctx context.Context, fhirServerURL, sort string) ([]responses.PatientSummary, error)
	SearchPatients(ctx context.Context, request *requests.SearchPatients) ([]responses.PatientSummary, error)
	CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.PatientSummary, error)
	UpdatePatient(ctx context.Context, request *requests.UpdatePatient) (*responses.PatientSummary, error)
}

// PatientFhirClient talks to the upstream FHIR server. An empty baseUrl on
// any call falls back to the configured default server.
type PatientFhirClient interface {
	SearchPatients(ctx context.Context, baseUrl string, query *requests.SearchPatients) (*fhir_dto.FHIRBundle, error)
	FindPatientByID(ctx context.Context, baseUrl, patientID string) (*fhir_dto.Patient, error)
	CreatePatient(ctx context.Context, baseUrl string, patient *fhir_dto.Patient) (*fhir_dto.Patient, error)
	UpdatePatient(ctx context.Context, baseUrl string, patient *fhir_dto.Patient) (*fhir_dto.Patient, error)
}

type FhirSchemaValidator interface {
	ValidateResource(resource interface{}) error
}
