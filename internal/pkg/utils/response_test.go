package utils

import (
	"clinicorp-proxy-service/internal/pkg/constvars"
	"clinicorp-proxy-service/internal/pkg/exceptions"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestBuildErrorResponse(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "custom error with a message",
			err:        exceptions.ErrTokenNotConfigured(nil),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"detail":"Server Error: Token not configured"}`,
		},
		{
			name:       "custom error with validation details",
			err:        exceptions.ErrCannotParseJSON(errors.New("unexpected end")),
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"detail":[{"loc":["body"],"msg":"JSON decode error","type":"json_invalid"}]}`,
		},
		{
			name:       "plain error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"detail":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()

			BuildErrorResponse(zap.NewNop(), rr, tt.err)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, constvars.MIMEApplicationJSON, rr.Header().Get(constvars.HeaderContentType))
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestBuildSuccessResponse_UsesGivenStatus(t *testing.T) {
	rr := httptest.NewRecorder()

	BuildSuccessResponse(rr, http.StatusNotFound, map[string]string{"status": "completed"})

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"status":"completed"}`, rr.Body.String())
}

func TestBodyAllowedForStatus(t *testing.T) {
	tests := []struct {
		code     int
		expected bool
	}{
		{code: http.StatusOK, expected: true},
		{code: http.StatusFound, expected: true},
		{code: http.StatusNotFound, expected: true},
		{code: http.StatusContinue, expected: false},
		{code: http.StatusNoContent, expected: false},
		{code: http.StatusNotModified, expected: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, BodyAllowedForStatus(tt.code), http.StatusText(tt.code))
	}
}
