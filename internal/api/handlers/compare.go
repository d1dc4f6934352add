package handlers

import (
	"net/http"

	"thrust-planner/internal/analysis"
	"thrust-planner/internal/api/models"
	"thrust-planner/internal/config"

	"github.com/gin-gonic/gin"
)

// Compare handles POST /api/v1/calculate/compare
func (h *CalculateHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	seen := make(map[string]bool, len(req.Variations))
	for _, v := range req.Variations {
		if seen[v.Name] {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: "duplicate variation name " + v.Name,
				Details: map[string]interface{}{"name": v.Name},
			}})
			return
		}
		seen[v.Name] = true
	}

	variations := make([]analysis.Variation, 0, len(req.Variations))
	failed := []models.FailedVariation{}

	for _, v := range req.Variations {
		merged := config.MergeShip(req.Base, v.Ship)
		id, ship, result, err := h.compute(merged, "compare")
		if err != nil {
			_, detail := errorDetail(err)
			failed = append(failed, models.FailedVariation{Name: v.Name, Error: detail})
			continue
		}
		variations = append(variations, analysis.Variation{ID: id, Name: v.Name, Ship: ship, Result: result})
	}

	ranked := analysis.RankVariations(variations)
	comparison := make([]models.ComparisonResult, 0, len(ranked))
	for _, r := range ranked {
		comparison = append(comparison, models.ComparisonResult{
			Rank:                   r.Rank,
			Name:                   r.Name,
			ID:                     r.ID,
			OverallRequiredThrustN: r.Result.OverallRequiredThrustN,
			TotalMassKg:            r.Result.TotalMassKg,
			ThrusterCount:          r.ThrusterCount,
			ThrusterMassKg:         r.ThrusterMassKg,
			BatteryMassKg:          r.Result.BatteryBank.MassKg,
			PropulsionMassKg:       r.PropulsionMassKg,
			TotalPowerW:            r.Result.TotalPowerW,
			EnduranceHours:         r.Result.BatteryBank.EnduranceHours,
		})
	}

	c.JSON(http.StatusOK, models.CompareResponse{
		Comparison: comparison,
		Failed:     failed,
	})
}
