package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingAppointmentIDKey  = "appointment_id"
	LoggingSubscriberIDKey   = "subscriber_id"
	LoggingUpstreamStatusKey = "clinicorp_status"
	LoggingUpstreamURLKey    = "clinicorp_url"
	LoggingHasProxySecretKey = "has_proxy_secret"
	LoggingResponseLengthKey = "response_length"
)
