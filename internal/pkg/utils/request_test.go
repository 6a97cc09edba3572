package utils

import (
	"clinicorp-proxy-service/internal/pkg/constvars"
	"clinicorp-proxy-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCancelAppointmentRequest(t *testing.T) {
	t.Run("decodes ids and keeps the proxy secret", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/proxy/cancel", strings.NewReader(`{"subscriber_id":"clinic-a","appointment_id":42}`))
		req.Header.Set(constvars.HeaderXProxySecret, "s3cret")

		request, err := ParseCancelAppointmentRequest(req)

		require.NoError(t, err)
		require.NotNil(t, request.SubscriberID)
		require.NotNil(t, request.AppointmentID)
		assert.Equal(t, "clinic-a", request.SubscriberID.Text())
		assert.Equal(t, int64(42), request.AppointmentID.Int64())
		assert.Equal(t, "s3cret", request.ProxySecret)
	})

	t.Run("leaves missing fields nil", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/proxy/cancel", strings.NewReader(`{}`))

		request, err := ParseCancelAppointmentRequest(req)

		require.NoError(t, err)
		assert.Nil(t, request.SubscriberID)
		assert.Nil(t, request.AppointmentID)
	})

	t.Run("malformed json is unprocessable", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/proxy/cancel", strings.NewReader(`{"subscriber_id":`))

		_, err := ParseCancelAppointmentRequest(req)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
	})

	t.Run("oversized body is rejected", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/proxy/cancel", strings.NewReader(`{"subscriber_id":"1","appointment_id":"2"}`))
		req.Body = http.MaxBytesReader(rr, req.Body, 8)

		_, err := ParseCancelAppointmentRequest(req)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusRequestEntityTooLarge, customErr.StatusCode)
	})
}
