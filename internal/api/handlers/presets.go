package handlers

import (
	"net/http"

	"thrust-planner/internal/api/models"
	"thrust-planner/internal/config"
	"thrust-planner/internal/model"

	"github.com/gin-gonic/gin"
)

// PresetsHandler lists the values a ship configuration form offers
type PresetsHandler struct{}

// NewPresetsHandler creates a new presets handler
func NewPresetsHandler() *PresetsHandler {
	return &PresetsHandler{}
}

// ListPresets handles GET /api/v1/presets
func (h *PresetsHandler) ListPresets(c *gin.Context) {
	c.JSON(http.StatusOK, models.PresetsResponse{
		Gravity:    config.GravityPresets(),
		Atmosphere: config.AtmospherePresets(),
		Multiplier: config.MultiplierPresets(),
		GridSizes:  []string{string(model.GridSmall), string(model.GridLarge)},
		VehicleClasses: []string{
			string(model.VehicleAtmospheric),
			string(model.VehicleInterplanetary),
		},
		MarginPercent:  models.Range{Min: 100, Max: 200, Step: 5, Default: 100},
		EnduranceHours: models.Range{Min: 0.5, Max: 2.0, Step: 0.1, Default: 1.0},
	})
}
