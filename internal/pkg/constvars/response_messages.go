package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	SubmitVitalSignsSuccessMessage  = "vital signs submitted successfully"
	SubmitVitalSignsFailedMessage   = "vital signs submission was rejected by the FHIR server"
	PreviewBundleSuccessMessage     = "transaction bundle built successfully"
	GetBMIReportSuccessMessage      = "get BMI report successfully"
	CreateBMIReportExportSuccessMsg = "BMI report exported successfully"
	HealthCheckSuccessMessage       = "service is healthy"
)
