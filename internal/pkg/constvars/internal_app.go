package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "VTLSGN_SVC_"
)

const (
	AppEnvironmentProduction  = "production"
	AppEnvironmentDevelopment = "development"
)

const (
	PairingStrategyPosition = "position"
	PairingStrategySubject  = "subject"
)

const (
	RedisKeySubjectSummaryPrefix = "bmi:subject:"
	RedisKeyExportLeader         = "bmi:export:leader"
)

const (
	BMIReportFileNameFormat = "bmi-report-%s.xlsx"
	BMIReportSheetName      = "BMI Report"
	BMIReportTimeLayout     = "20060102T150405Z"
)

const (
	DisplayNotFound = "-"
)
