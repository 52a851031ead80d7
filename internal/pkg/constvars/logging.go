package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingPatientIDKey    = "patient_id"
	LoggingPatientCountKey = "patient_count"
	LoggingEndpointKey     = "endpoint"
	LoggingMethodKey       = "method"
	LoggingQueryKey        = "query"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingFhirServerKey   = "fhir_server"
	LoggingErrorTypeKey    = "error_type"
)
