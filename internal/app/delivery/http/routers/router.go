package routers

import (
	"clinicorp-proxy-service/internal/app/config"
	"clinicorp-proxy-service/internal/app/delivery/http/controllers"
	"clinicorp-proxy-service/internal/app/delivery/http/middlewares"
	"clinicorp-proxy-service/internal/pkg/constvars"
	"clinicorp-proxy-service/internal/pkg/exceptions"
	"clinicorp-proxy-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	healthController *controllers.HealthController,
	appointmentController *controllers.AppointmentController,
) {

	corsOptions := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodOptions},
		AllowedHeaders: []string{
			constvars.HeaderAccept,
			constvars.HeaderContentType,
			constvars.HeaderXRequestID,
			constvars.HeaderXProxySecret,
		},
		ExposedHeaders: []string{constvars.HeaderXRequestID},
		MaxAge:         300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middleware.RealIP)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.Metrics)
	router.Use(middlewares.ErrorHandler)

	bodyLimit := int64(internalConfig.App.RequestBodyLimitInMegabyte) << 20
	if bodyLimit > 0 {
		router.Use(middleware.RequestSize(bodyLimit))
	}

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.BuildErrorResponse(middlewares.Log, w, exceptions.ErrRouteNotFound(r.URL.Path))
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.BuildErrorResponse(middlewares.Log, w, exceptions.ErrMethodNotAllowed(r.Method, r.URL.Path))
	})

	router.Get("/", healthController.Check)
	router.Method(constvars.MethodGet, "/metrics", promhttp.Handler())

	router.Route("/proxy", func(r chi.Router) {
		attachAppointmentRoutes(r, middlewares, appointmentController)
	})
}
