package controllers

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/shinyflakes/pkg/response"
)

// HealthController answers liveness probes.
type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// Check reports service health.
// GET /api/health
func (c *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Map{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "ShinyFlakes API",
	})
}
