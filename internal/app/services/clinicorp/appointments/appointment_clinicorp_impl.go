package clinicorp_appointments

import (
	"bytes"
	"clinicorp-proxy-service/internal/app/contracts"
	"clinicorp-proxy-service/internal/pkg/constvars"
	"clinicorp-proxy-service/internal/pkg/dto/requests"
	"clinicorp-proxy-service/internal/pkg/dto/responses"
	"clinicorp-proxy-service/internal/pkg/exceptions"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

const (
	outcomeResponse        = "response"
	outcomeTimeout         = "timeout"
	outcomeConnectionError = "connection_error"
)

var (
	clinicorpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clinicorp_upstream_requests_total",
		Help: "Calls made to Clinicorp, by outcome and status code",
	}, []string{"operation", "outcome", "status"})

	clinicorpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "clinicorp_upstream_request_duration_seconds",
		Help:    "Time spent waiting for Clinicorp",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
	}, []string{"operation"})
)

type appointmentClinicorpClient struct {
	CancelURL  string
	Timeout    time.Duration
	Log        *zap.Logger
	HTTPClient *http.Client
}

// NewAppointmentClinicorpClient builds a client around one pooled
// *http.Client; it holds no per-call state and is safe to share.
func NewAppointmentClinicorpClient(cancelURL string, timeout time.Duration, logger *zap.Logger) contracts.AppointmentClinicorpClient {
	return &appointmentClinicorpClient{
		CancelURL:  cancelURL,
		Timeout:    timeout,
		Log:        logger,
		HTTPClient: &http.Client{
			// redirects are relayed to the caller, never followed
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// CancelAppointment issues exactly one POST. The call is detached from the
// caller's cancellation and bounded only by the client timeout.
func (c *appointmentClinicorpClient) CancelAppointment(ctx context.Context, token string, request *requests.ClinicorpCancelAppointment) (*responses.ClinicorpResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		c.Log.Error("appointmentClinicorpClient.CancelAppointment error marshaling request to JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.CancelURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("appointmentClinicorpClient.CancelAppointment error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, token)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	timer := prometheus.NewTimer(clinicorpLatency.WithLabelValues("cancel_appointment"))
	defer timer.ObserveDuration()

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, c.transportError(requestID, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.transportError(requestID, err)
	}

	clinicorpRequestsTotal.WithLabelValues("cancel_appointment", outcomeResponse, strconv.Itoa(resp.StatusCode)).Inc()
	c.Log.Info("appointmentClinicorpClient.CancelAppointment received response",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUpstreamStatusKey, resp.StatusCode),
		zap.Int(constvars.LoggingResponseLengthKey, len(body)),
	)

	return &responses.ClinicorpResponse{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}

func (c *appointmentClinicorpClient) transportError(requestID string, err error) error {
	if isTimeout(err) {
		clinicorpRequestsTotal.WithLabelValues("cancel_appointment", outcomeTimeout, "").Inc()
		c.Log.Error("appointmentClinicorpClient.CancelAppointment timeout waiting for Clinicorp",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Duration("timeout", c.Timeout),
			zap.Error(err),
		)
		return exceptions.ErrUpstreamTimeout(err, constvars.ResourceClinicorpAppointment)
	}

	clinicorpRequestsTotal.WithLabelValues("cancel_appointment", outcomeConnectionError, "").Inc()
	c.Log.Error("appointmentClinicorpClient.CancelAppointment connection error",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUpstreamURLKey, c.CancelURL),
		zap.Error(err),
	)
	return exceptions.ErrUpstreamConnection(err, constvars.ResourceClinicorpAppointment)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
