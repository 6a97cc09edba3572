package contracts

import (
	"clinicorp-proxy-service/internal/pkg/dto/requests"
	"clinicorp-proxy-service/internal/pkg/dto/responses"
	"context"
)

type AppointmentUsecase interface {
	CancelAppointment(ctx context.Context, request *requests.CancelAppointment) (*responses.CancelAppointment, error)
}

type AppointmentClinicorpClient interface {
	CancelAppointment(ctx context.Context, token string, request *requests.ClinicorpCancelAppointment) (*responses.ClinicorpResponse, error)
}
