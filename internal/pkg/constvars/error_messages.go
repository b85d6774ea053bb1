package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"numeric":   "must be a number",
	"min":       "must be at least %s",
	"max":       "maximum at %s",
	"oneof":     "must be one of [%s]",
	"gt":        "must be greater than %s",
	"gte":       "must be greater than or equal to %s",
	"lte":       "must be less than or equal to %s",
	"fhir_date": "must be a date formatted as YYYY-MM-DD",
	"decimal":   "must be a decimal number",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gt":    true,
	"gte":   true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientFHIRServerUnavailable         = "the FHIR server cannot be reached right now"
	ErrClientFeatureUnavailable            = "this feature is not configured on the server"
	ErrClientTooManyRequests               = "too many requests, please try again later"
)

// Error messages for developers
const (
	ErrDevInvalidInput      = "invalid input"
	ErrDevCannotParseJSON   = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON = "cannot convert struct or other data types to JSON"
	ErrDevBuildRequest      = "encountering error while building request DTO"
	ErrDevSendHTTPRequest   = "failed to send HTTP request"
	ErrDevRateLimitExceeded = "rate limit exceeded for %s"
	ErrDevPanicRecovered    = "recovered from panic while serving request"

	// Spark messages
	ErrDevSparkGetFHIRResource            = "failed to get FHIR %s from `FHIR` server"
	ErrDevSparkNoDataFHIRResource         = "no data found from FHIR %s"
	ErrDevSparkDecodeFHIRResourceResponse = "failed to decode FHIR %s response from `FHIR` server"

	// Validation messages
	ErrDevValidationFailed           = "validation failed"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"

	// Minio messages
	ErrDevMinioFailedToCreateObject          = "failed to create object into minio storage with bucket name '%s'"
	ErrDevMinioFailedToGetObjectPresignedURL = "failed to get object URL from minio storage with bucket name '%s'"
	ErrDevMinioNotConfigured                 = "minio storage is not configured"

	// Redis messages
	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisGetData    = "failed to GET data from redis"
	ErrDevRedisDeleteData = "failed to DEL data from redis"
	ErrDevRedisUnlock     = "failed to release redis lock"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into rabbitmq queue '%s'"
	ErrDevRabbitMQNotConfirmed   = "message not confirmed by broker"

	// Spreadsheet messages
	ErrDevSpreadsheetBuild = "failed to build spreadsheet %s"

	// Server messages
	ErrDevServerDeadlineExceeded = "deadline exceeded"
)

const (
	ErrEnvParsing = "Error parsing %s: %v, will use default value"
)
