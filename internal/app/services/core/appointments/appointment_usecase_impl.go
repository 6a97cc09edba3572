package appointments

import (
	"clinicorp-proxy-service/internal/app/contracts"
	"clinicorp-proxy-service/internal/app/models"
	"clinicorp-proxy-service/internal/pkg/constvars"
	"clinicorp-proxy-service/internal/pkg/dto/requests"
	"clinicorp-proxy-service/internal/pkg/dto/responses"
	"clinicorp-proxy-service/internal/pkg/exceptions"
	"clinicorp-proxy-service/internal/pkg/utils"
	"context"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type appointmentUsecase struct {
	ClinicorpClient contracts.AppointmentClinicorpClient
	TokenProvider   contracts.TokenProvider
	Log             *zap.Logger
}

func NewAppointmentUsecase(
	clinicorpClient contracts.AppointmentClinicorpClient,
	tokenProvider contracts.TokenProvider,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		ClinicorpClient: clinicorpClient,
		TokenProvider:   tokenProvider,
		Log:             logger,
	}
}

// CancelAppointment runs body validation, token lookup, id coercion and the
// single Clinicorp call, in that order. Whatever status Clinicorp answers
// with is relayed as a completed envelope; only transport failures come back
// as errors.
func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, request *requests.CancelAppointment) (*responses.CancelAppointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err, exceptions.FormatValidationDetails(err))
	}

	token := uc.TokenProvider.ClinicorpToken()
	if token == "" {
		uc.Log.Error("appointmentUsecase.CancelAppointment Clinicorp token is not configured",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrTokenNotConfigured(nil)
	}

	appointmentID, err := models.CoerceAppointmentID(*request.AppointmentID)
	if err != nil {
		return nil, exceptions.ErrInvalidAppointmentID(err, request.AppointmentID.String())
	}

	payload := &requests.ClinicorpCancelAppointment{
		SubscriberID: models.CoerceSubscriberID(*request.SubscriberID),
		ID:           appointmentID,
	}

	uc.Log.Info("appointmentUsecase.CancelAppointment sending request to Clinicorp",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, payload.ID),
		zap.Stringer(constvars.LoggingSubscriberIDKey, payload.SubscriberID),
		zap.Bool(constvars.LoggingHasProxySecretKey, request.ProxySecret != ""),
	)

	upstream, err := uc.ClinicorpClient.CancelAppointment(ctx, token, payload)
	if err != nil {
		return nil, err
	}

	body := uc.relayBody(requestID, upstream)

	response := &responses.CancelAppointment{
		Status:          constvars.ClinicorpCancellationCompleted,
		ClinicorpStatus: upstream.StatusCode,
		SentPayload:     *payload,
		Data:            body,
	}
	if upstream.StatusCode >= constvars.StatusBadRequest {
		response.Error = body
	}
	return response, nil
}

// relayBody returns the Clinicorp body as-is when it is JSON, otherwise the
// raw text wrapped under raw_error.
func (uc *appointmentUsecase) relayBody(requestID string, upstream *responses.ClinicorpResponse) json.RawMessage {
	if len(upstream.Body) > 0 && json.Valid(upstream.Body) {
		return json.RawMessage(upstream.Body)
	}

	uc.Log.Warn("appointmentUsecase.CancelAppointment Clinicorp response is not valid JSON",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUpstreamStatusKey, upstream.StatusCode),
	)
	wrapped, _ := json.Marshal(map[string]string{constvars.ClinicorpRawErrorKey: string(upstream.Body)})
	return wrapped
}
