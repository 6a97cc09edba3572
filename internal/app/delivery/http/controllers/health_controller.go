package controllers

import (
	"clinicorp-proxy-service/internal/pkg/constvars"
	"clinicorp-proxy-service/internal/pkg/dto/responses"
	"clinicorp-proxy-service/internal/pkg/utils"
	"net/http"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// Check answers GET / without touching configuration or Clinicorp.
func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.Health{
		Status: constvars.HealthStatusOnline,
		Mode:   constvars.HealthModeProxy,
	})
}
