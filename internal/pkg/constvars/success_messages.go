package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Patient messages
	PatientListSuccess    = "patients retrieved successfully"
	PatientSearchSuccess  = "patients search completed successfully"
	PatientCreatedSuccess = "patient created successfully"
	PatientUpdatedSuccess = "patient updated successfully"
)
