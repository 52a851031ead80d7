package patients

import (
	"context"
	"patientbridge-service/internal/app/contracts"
	"patientbridge-service/internal/pkg/constvars"
	"patientbridge-service/internal/pkg/dto/requests"
	"patientbridge-service/internal/pkg/dto/responses"
	"patientbridge-service/internal/pkg/exceptions"
	"patientbridge-service/internal/pkg/utils"
)

type patientUsecase struct {
	PatientFhirClient   contracts.PatientFhirClient
	FhirSchemaValidator contracts.FhirSchemaValidator
}

func NewPatientUsecase(
	patientFhirClient contracts.PatientFhirClient,
	fhirSchemaValidator contracts.FhirSchemaValidator,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientFhirClient:   patientFhirClient,
		FhirSchemaValidator: fhirSchemaValidator,
	}
}

func (uc *patientUsecase) ListPatients(ctx context.Context, fhirServerURL, sort string) ([]responses.PatientSummary, error) {
	return uc.SearchPatients(ctx, &requests.SearchPatients{
		Sort:          sort,
		FhirServerURL: fhirServerURL,
	})
}

func (uc *patientUsecase) SearchPatients(ctx context.Context, request *requests.SearchPatients) ([]responses.PatientSummary, error) {
	bundle, err := uc.PatientFhirClient.SearchPatients(ctx, request.FhirServerURL, request)
	if err != nil {
		return nil, err
	}

	// Order comes from the server; non-Patient entries are dropped.
	summaries := make([]responses.PatientSummary, 0, len(bundle.Entry))
	for _, entry := range bundle.Entry {
		if summary := utils.ExtractPatientSummaryFromEntry(entry.Resource); summary != nil {
			summaries = append(summaries, *summary)
		}
	}
	return summaries, nil
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.PatientSummary, error) {
	// Business-rule gate, before any resource exists.
	if err := utils.ValidateBirthDateNotFuture(request.BirthDate); err != nil {
		return nil, err
	}

	resource := utils.BuildPatientResource(
		request.Given,
		request.Family,
		request.Gender,
		request.BirthDate,
		request.Phone,
	)

	// Schema gate runs on the fully built resource.
	if err := uc.FhirSchemaValidator.ValidateResource(resource); err != nil {
		return nil, err
	}

	created, err := uc.PatientFhirClient.CreatePatient(ctx, request.FhirServerURL, resource)
	if err != nil {
		return nil, err
	}

	summary := utils.ExtractPatientSummary(created)
	if summary == nil {
		return nil, exceptions.ErrMapPatientSummary(constvars.ErrClientCreatePatientFailed)
	}
	return summary, nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, request *requests.UpdatePatient) (*responses.PatientSummary, error) {
	existing, err := uc.PatientFhirClient.FindPatientByID(ctx, request.FhirServerURL, request.PatientID)
	if err != nil {
		return nil, err
	}
	if existing == nil || existing.ResourceType != constvars.ResourcePatient {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	// Business-rule gate only when the patch touches the birth date.
	if request.BirthDate != nil {
		if err := utils.ValidateBirthDateNotFuture(*request.BirthDate); err != nil {
			return nil, err
		}
	}

	merged := utils.ApplyPatientPatch(existing, request)

	if err := uc.FhirSchemaValidator.ValidateResource(merged); err != nil {
		return nil, err
	}

	updated, err := uc.PatientFhirClient.UpdatePatient(ctx, request.FhirServerURL, merged)
	if err != nil {
		return nil, err
	}

	summary := utils.ExtractPatientSummary(updated)
	if summary == nil {
		return nil, exceptions.ErrMapPatientSummary(constvars.ErrClientUpdatePatientFailed)
	}
	return summary, nil
}
