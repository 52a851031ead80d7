package config

type InternalConfig struct {
	App  App
	FHIR FHIR
}

type App struct {
	Env             string
	Port            string
	Version         string
	MaxRequests     int
	ShutdownTimeout int
}

type FHIR struct {
	// BaseUrl is the process-wide default FHIR server; requests may
	// override it per call via the fhir_server_url query parameter.
	BaseUrl          string
	SchemaPath       string
	TimeoutInSeconds int
	SearchPageSize   int
}
