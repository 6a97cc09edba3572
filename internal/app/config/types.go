package config

import "time"

type (
	InternalConfig struct {
		App       App
		Clinicorp Clinicorp
	}

	DriverConfig struct {
		Logger Logger
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		ShutdownTimeout            int
		MaxRequests                int
		RequestBodyLimitInMegabyte int
	}

	Clinicorp struct {
		CancelAppointmentURL string
		RequestTimeout       time.Duration
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
