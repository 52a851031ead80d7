package exceptions

import (
	"fmt"
	"patientbridge-service/internal/pkg/constvars"
)

var (
	// Input validation
	ErrInputValidation = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusUnprocessableEntity, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}

	// Business rules
	ErrBirthDateInFuture = func() *CustomError {
		return WrapWithoutError(constvars.StatusUnprocessableEntity, constvars.ErrClientBirthDateInFuture, constvars.ErrDevBirthDateInFuture)
	}

	// FHIR schema gate
	ErrFhirSchemaValidation = func(path, message string) *CustomError {
		return WrapWithoutError(
			constvars.StatusUnprocessableEntity,
			fmt.Sprintf(constvars.ErrClientFhirSchemaValidation, message, path),
			constvars.ErrDevSchemaValidationFailed,
		)
	}
	ErrLoadSchemaDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevLoadSchemaDocument)
	}

	// FHIR client
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCreateHTTPRequest)
	}
	ErrFhirConnection = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientFhirConnection, constvars.ErrDevSendHTTPRequest)
	}
	ErrFhirRequestFailed = func(statusCode int, body string) *CustomError {
		return WrapWithoutError(
			statusCode,
			fmt.Sprintf(constvars.ErrClientFhirRequestFailed, statusCode),
			fmt.Sprintf("%s: status %d, body: %s", constvars.ErrDevFhirRequestFailed, statusCode, body),
		)
	}
	ErrDecodeFhirResponse = func(err error, resourceType string) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevDecodeFhirResponse, resourceType))
	}

	// Patient flows
	ErrPatientNotFound = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusNotFound, constvars.ErrClientPatientNotFound, constvars.ErrDevPatientNotFound)
	}
	ErrMapPatientSummary = func(clientMessage string) *CustomError {
		return WrapWithoutError(constvars.StatusInternalServerError, clientMessage, constvars.ErrDevMapPatientSummary)
	}
)
