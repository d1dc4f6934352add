package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"thrust-planner/internal/api/models"
	"thrust-planner/internal/model"

	"github.com/gin-gonic/gin"
)

// errorDetail maps request and engine errors to a status and API error body.
func errorDetail(err error) (int, models.ErrorDetail) {
	var (
		invalid    *model.InvalidInputError
		noThruster *model.NoThrusterAvailableError
		batteries  *model.IncompleteBatteryCatalogError
		typeErr    *json.UnmarshalTypeError
		syntaxErr  *json.SyntaxError
	)
	switch {
	case errors.As(err, &invalid):
		return http.StatusBadRequest, models.ErrorDetail{
			Code:    "INVALID_INPUT",
			Message: err.Error(),
			Details: map[string]interface{}{"field": invalid.Field},
		}
	case errors.As(err, &typeErr):
		return http.StatusBadRequest, models.ErrorDetail{
			Code:    "INVALID_INPUT",
			Message: "field " + typeErr.Field + " must be a " + typeErr.Type.String(),
			Details: map[string]interface{}{"field": typeErr.Field},
		}
	case errors.As(err, &syntaxErr):
		return http.StatusBadRequest, models.ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		}
	case errors.As(err, &noThruster):
		return http.StatusUnprocessableEntity, models.ErrorDetail{
			Code:    "NO_THRUSTER_AVAILABLE",
			Message: err.Error(),
			Details: map[string]interface{}{
				"axis":          noThruster.Axis,
				"grid_size":     noThruster.Grid,
				"vehicle_class": noThruster.Vehicle,
			},
		}
	case errors.As(err, &batteries):
		return http.StatusInternalServerError, models.ErrorDetail{
			Code:    "INCOMPLETE_BATTERY_CATALOG",
			Message: err.Error(),
		}
	default:
		return http.StatusInternalServerError, models.ErrorDetail{
			Code:    "CALCULATION_ERROR",
			Message: err.Error(),
		}
	}
}

func writeError(c *gin.Context, err error) {
	status, detail := errorDetail(err)
	c.JSON(status, models.ErrorResponse{Error: detail})
}

func writeBindError(c *gin.Context, err error) {
	status, detail := errorDetail(err)
	if detail.Code == "CALCULATION_ERROR" {
		status, detail = http.StatusBadRequest, models.ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		}
	}
	c.JSON(status, models.ErrorResponse{Error: detail})
}
