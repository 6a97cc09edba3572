package constvars

// Validation messages, mapped by validator tag
var CustomValidationErrorMessages = map[string]string{
	"required":   "field required",
	"identifier": ErrClientIdentifierType,
}

// Validation error kinds reported in the 422 detail items
const (
	ValidationTypeMissing   = "missing"
	ValidationTypeJSON      = "json_invalid"
	ValidationTypeIntOrText = "int_or_string_type"
)

// Error messages for clients
const (
	ErrClientTokenNotConfigured            = "Server Error: Token not configured"
	ErrClientInvalidAppointmentID          = "O ID informado '%s' não é válido."
	ErrClientUpstreamTimeout               = "Gateway Timeout (Clinicorp)"
	ErrClientUpstreamConnection            = "Erro Conexão: %s"
	ErrClientSomethingWrongWithApplication = "Internal Server Error"
	ErrClientRequestBodyTooLarge           = "Request body too large"
	ErrClientTooManyRequests               = "Too Many Requests"
	ErrClientInvalidJSON                   = "JSON decode error"
	ErrClientIdentifierType                = "Input should be a valid integer or string"
	ErrClientRouteNotFound                 = "Not Found"
	ErrClientMethodNotAllowed              = "Method Not Allowed"
)

// Error messages for developers
const (
	ErrDevTokenNotConfigured   = "clinicorp token is not configured"
	ErrDevInvalidAppointmentID = "appointment id is not an integer"
	ErrDevValidationFailed     = "validation failed"
	ErrDevCannotParseJSON      = "cannot parse JSON"
	ErrDevCannotMarshalJSON    = "cannot marshal JSON"
	ErrDevCreateHTTPRequest    = "failed to create HTTP request"
	ErrDevUpstreamTimeout      = "timeout waiting for %s"
	ErrDevUpstreamConnection   = "failed to reach %s"
	ErrDevReadRequestBody      = "failed to read request body"
	ErrDevServerPanic          = "recovered from panic"
	ErrDevTooManyRequests      = "rate limit exceeded"
	ErrDevRouteNotFound        = "no route matches %s"
	ErrDevMethodNotAllowed     = "method %s is not allowed on %s"
	ResponseUnknown            = "unknown"
)
