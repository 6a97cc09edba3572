package exceptions

import (
	"clinicorp-proxy-service/internal/pkg/constvars"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildNewCustomError(t *testing.T) {
	err := ErrUpstreamConnection(errors.New("connection refused"), constvars.ResourceClinicorpAppointment)

	assert.Equal(t, http.StatusBadGateway, err.StatusCode)
	assert.Equal(t, "Erro Conexão: connection refused", err.Detail())
	assert.Contains(t, err.DevMessage, "connection refused")
	assert.True(t, strings.HasSuffix(err.Location.File, "error_test.go"), err.Location.File)
}

func TestInvalidAppointmentIDEchoesInput(t *testing.T) {
	err := ErrInvalidAppointmentID(nil, "12.5")

	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "O ID informado '12.5' não é válido.", err.Detail())
}

func TestFormatValidationDetails_UnknownError(t *testing.T) {
	details := FormatValidationDetails(errors.New("not a validator error"))

	assert.Len(t, details, 1)
	assert.Equal(t, []string{"body"}, details[0].Loc)
}
