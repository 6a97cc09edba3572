package controllers

import (
	"clinicorp-proxy-service/internal/app/contracts"
	"clinicorp-proxy-service/internal/pkg/constvars"
	"clinicorp-proxy-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
	}
}

// CancelAppointment handles POST /proxy/cancel.
//
// Known gap: X-Proxy-Secret is accepted but never checked against an
// expected value, so any caller, with or without the header, is served.
func (ctrl *AppointmentController) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	request, err := utils.ParseCancelAppointmentRequest(r)
	if err != nil {
		ctrl.Log.Error("AppointmentController.CancelAppointment error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool(constvars.LoggingHasProxySecretKey, request.ProxySecret != ""),
	)

	response, err := ctrl.AppointmentUsecase.CancelAppointment(r.Context(), request)
	if err != nil {
		ctrl.Log.Error("Error in AppointmentUsecase.CancelAppointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.CancelAppointment completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUpstreamStatusKey, response.ClinicorpStatus),
	)
	if !utils.BodyAllowedForStatus(response.ClinicorpStatus) {
		ctrl.Log.Warn("AppointmentController.CancelAppointment status does not allow a body, envelope dropped",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingUpstreamStatusKey, response.ClinicorpStatus),
		)
		w.WriteHeader(response.ClinicorpStatus)
		return
	}
	utils.BuildSuccessResponse(w, response.ClinicorpStatus, response)
}
