package config

import (
	"clinicorp-proxy-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewInternalConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV",
		"APP_PORT",
		"APP_MAX_REQUESTS",
		"APP_REQUEST_BODY_LIMIT_IN_MEGABYTE",
		"CLINICORP_CANCEL_APPOINTMENT_URL",
		"CLINICORP_TIMEOUT_IN_SECONDS",
	} {
		t.Setenv(key, "")
	}

	cfg := NewInternalConfig()

	assert.Equal(t, constvars.AppEnvDevelopment, cfg.App.Env)
	assert.Equal(t, ":8080", cfg.App.Port)
	assert.Equal(t, 0, cfg.App.MaxRequests)
	assert.Equal(t, 1, cfg.App.RequestBodyLimitInMegabyte)
	assert.Equal(t, constvars.ClinicorpCancelAppointmentURL, cfg.Clinicorp.CancelAppointmentURL)
	assert.Equal(t, 15*time.Second, cfg.Clinicorp.RequestTimeout)
}

func TestNewInternalConfig_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", constvars.AppEnvProduction)
	t.Setenv("APP_PORT", ":9090")
	t.Setenv("APP_MAX_REQUESTS", "25")
	t.Setenv("CLINICORP_CANCEL_APPOINTMENT_URL", "http://localhost:4000/cancel")
	t.Setenv("CLINICORP_TIMEOUT_IN_SECONDS", "3")

	cfg := NewInternalConfig()

	assert.Equal(t, constvars.AppEnvProduction, cfg.App.Env)
	assert.Equal(t, ":9090", cfg.App.Port)
	assert.Equal(t, 25, cfg.App.MaxRequests)
	assert.Equal(t, "http://localhost:4000/cancel", cfg.Clinicorp.CancelAppointmentURL)
	assert.Equal(t, 3*time.Second, cfg.Clinicorp.RequestTimeout)
}

func TestNewInternalConfig_InvalidTimeoutFallsBack(t *testing.T) {
	t.Setenv("CLINICORP_TIMEOUT_IN_SECONDS", "-4")

	cfg := NewInternalConfig()

	assert.Equal(t, 15*time.Second, cfg.Clinicorp.RequestTimeout)
}

func TestNewDriverConfig_Defaults(t *testing.T) {
	t.Setenv("LOGGER_LEVEL", "")

	cfg := NewDriverConfig()

	assert.Equal(t, "info", cfg.Logger.Level)
}
