package constvars

const (
	ResourcePatient          = "Patient"
	ResourceBundle           = "Bundle"
	ResourceOperationOutcome = "OperationOutcome"
)

const (
	FhirNameUseOfficial = "official"

	FhirTelecomSystemPhone = "phone"
	FhirTelecomSystemEmail = "email"
)

const (
	FhirSearchParamCount      = "_count"
	FhirSearchParamSort       = "_sort"
	FhirSearchParamID         = "_id"
	FhirSearchParamName       = "name"
	FhirSearchParamTelecom    = "telecom"
	FhirSearchDefaultPageSize = 15
)
