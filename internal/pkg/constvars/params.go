package constvars

const (
	URLParamPatientID = "patient_id"
)

const (
	URLQueryParamFhirServerURL = "fhir_server_url"
	URLQueryParamSort          = "sort"
	URLQueryParamName          = "name"
	URLQueryParamPhone         = "phone"
	URLQueryParamIdentifier    = "identifier"
)
