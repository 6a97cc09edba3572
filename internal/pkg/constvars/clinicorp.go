package constvars

const (
	ClinicorpCancelAppointmentURL    = "https://api.clinicorp.com/rest/v1/appointment/cancel_appointment"
	ClinicorpRequestTimeoutInSeconds = 15
	ClinicorpTokenEnvKey             = "CLINICORP_TOKEN"
	ClinicorpRawErrorKey             = "raw_error"
	ClinicorpCancellationCompleted   = "completed"
)

const (
	ResourceClinicorpAppointment = "Clinicorp appointment"
)
