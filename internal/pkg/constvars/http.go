package constvars

const (
	MethodGet     = "GET"
	MethodPost    = "POST"
	MethodOptions = "OPTIONS"
)

const (
	MIMEApplicationJSON = "application/json"
)

const (
	StatusOK                    = 200
	StatusNoContent             = 204
	StatusNotModified           = 304
	StatusBadRequest            = 400
	StatusNotFound              = 404
	StatusMethodNotAllowed      = 405
	StatusRequestEntityTooLarge = 413
	StatusUnprocessableEntity   = 422
	StatusTooManyRequests       = 429
	StatusInternalServerError   = 500
	StatusBadGateway            = 502
	StatusGatewayTimeout        = 504
)

const (
	HeaderAuthorization = "Authorization"
	HeaderAccept        = "Accept"
	HeaderContentType   = "Content-Type"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXProxySecret  = "X-Proxy-Secret"
)
