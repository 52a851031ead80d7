package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"url":      "must be a valid URL",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientPatientNotFound               = "Patient not found"
	ErrClientBirthDateInFuture             = "Date of Birth cannot be in the future."
	ErrClientFhirConnection                = "FHIR connection error"
	ErrClientFhirRequestFailed             = "FHIR request failed with status %d"
	ErrClientFhirSchemaValidation          = "FHIR schema validation error: %s on path %s"
	ErrClientCreatePatientFailed           = "Failed to create patient"
	ErrClientUpdatePatientFailed           = "Failed to update patient"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevValidationFailed       = "request validation failed"
	ErrDevCannotParseJSON        = "cannot parse JSON request body"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevCreateHTTPRequest      = "cannot create HTTP request"
	ErrDevSendHTTPRequest        = "cannot send HTTP request to FHIR server"
	ErrDevFhirRequestFailed      = "FHIR server responded with non-2xx status"
	ErrDevDecodeFhirResponse     = "cannot decode FHIR server response for resource: %s"
	ErrDevPatientNotFound        = "patient resource not found or not a Patient"
	ErrDevBirthDateInFuture      = "birth date is after today"
	ErrDevSchemaValidationFailed = "resource failed FHIR schema validation"
	ErrDevMapPatientSummary      = "FHIR response could not be mapped to a patient summary"
	ErrDevLoadSchemaDocument     = "cannot load FHIR schema document"
)
