package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingQueryParamsKey    = "query_params"
	LoggingResponseKey       = "response"
	LoggingRequestKey        = "request"
	LoggingResponseLengthKey = "response_length"
	LoggingStatusCodeKey     = "status_code"
	LoggingURLKey            = "url"
	LoggingCountKey          = "count"
	LoggingCodeKey           = "code"
	LoggingErrorKey          = "error"
	LoggingOperationKey      = "operation"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingBusinessEventKey  = "business_event"
	LoggingTimestampKey      = "timestamp"
	LoggingPagesKey          = "pages"
	LoggingBMIKey            = "bmi"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingCronSpecKey       = "cron_spec"
)

const (
	BusinessEventVitalSignsSubmitted = "vital_signs_submitted"
	BusinessEventBMIReportExported   = "bmi_report_exported"
)
