package responses

import "clinicorp-proxy-service/internal/pkg/dto/requests"

type CancelAppointment struct {
	Status          string                              `json:"status"`
	ClinicorpStatus int                                 `json:"clinicorp_status"`
	SentPayload     requests.ClinicorpCancelAppointment `json:"sent_payload"`
	Error           interface{}                         `json:"error"`
	Data            interface{}                         `json:"data"`
}

// ClinicorpResponse is what came back from Clinicorp, untouched.
type ClinicorpResponse struct {
	StatusCode int
	Body       []byte
}
