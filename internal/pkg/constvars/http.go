package constvars

const (
	MethodGet     = "GET"
	MethodPost    = "POST"
	MethodOptions = "OPTIONS"
)

const (
	MIMETextPlain           = "text/plain"
	MIMEApplicationJSON     = "application/json"
	MIMEApplicationFHIRJSON = "application/fhir+json"
	MIMEApplicationForm     = "application/x-www-form-urlencoded"
	MIMEApplicationXLSX     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusBadRequest          = 400
	StatusNotFound            = 404
	StatusUnprocessableEntity = 422
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	HeaderAccept             = "Accept"
	HeaderContentType        = "Content-Type"
	HeaderContentDisposition = "Content-Disposition"
	HeaderXRequestID         = "X-Request-ID"
	HeaderAuthorization      = "Authorization"
)

const (
	ContentDispositionAttachmentFormat = "attachment; filename=%q"
)
