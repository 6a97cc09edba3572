package requests

import "clinicorp-proxy-service/internal/app/models"

// CancelAppointment is the inbound body of POST /proxy/cancel. ProxySecret
// mirrors the X-Proxy-Secret header; it is carried along but never compared
// against anything.
type CancelAppointment struct {
	SubscriberID  *models.Identifier `json:"subscriber_id" validate:"required"`
	AppointmentID *models.Identifier `json:"appointment_id" validate:"required"`
	ProxySecret   string             `json:"-"`
}

// ClinicorpCancelAppointment is the body Clinicorp expects on cancel_appointment.
type ClinicorpCancelAppointment struct {
	SubscriberID models.Identifier `json:"subscriber_id"`
	ID           int64             `json:"id"`
}
