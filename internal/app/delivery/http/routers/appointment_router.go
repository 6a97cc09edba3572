package routers

import (
	"clinicorp-proxy-service/internal/app/delivery/http/controllers"
	"clinicorp-proxy-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.With(middlewares.RateLimit()).Post("/cancel", appointmentController.CancelAppointment)
}
