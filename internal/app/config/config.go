package config

import (
	"clinicorp-proxy-service/internal/pkg/constvars"
	"clinicorp-proxy-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

// NewInternalConfig reads the startup settings. The Clinicorp token is not
// part of it: it is looked up on every request.
func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "1.1.0"),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUESTS", 0),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
		},
		Clinicorp: Clinicorp{
			CancelAppointmentURL: utils.GetEnvString("CLINICORP_CANCEL_APPOINTMENT_URL", constvars.ClinicorpCancelAppointmentURL),
			RequestTimeout:       utils.GetEnvSeconds("CLINICORP_TIMEOUT_IN_SECONDS", constvars.ClinicorpRequestTimeoutInSeconds),
		},
	}
}
