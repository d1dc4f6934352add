package handlers

import (
	"log"
	"net/http"

	"thrust-planner/internal/api/models"
	"thrust-planner/internal/data"
	"thrust-planner/internal/model"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the block catalog the engine runs against
type CatalogHandler struct {
	catalog *data.Catalog
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog *data.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// GetCatalog handles GET /api/v1/catalog
// An optional grid=small|large query narrows thrusters and containers.
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	resp := models.CatalogResponse{
		Thrusters:  h.catalog.Thrusters,
		Batteries:  h.catalog.Batteries,
		Containers: h.catalog.Containers,
	}

	if g := c.Query("grid"); g != "" {
		grid, err := model.ParseGridSize(g)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "INVALID_REQUEST",
					Message: err.Error(),
				},
			})
			return
		}
		resp.Thrusters = []model.ThrusterSpec{}
		for _, t := range h.catalog.Thrusters {
			if t.Grid == grid {
				resp.Thrusters = append(resp.Thrusters, t)
			}
		}
		resp.Containers = []model.CargoContainerSpec{}
		for _, ct := range h.catalog.Containers {
			if ct.Grid == grid {
				resp.Containers = append(resp.Containers, ct)
			}
		}
	}

	log.Printf("CatalogHandler: Returning %d thrusters, %d batteries, %d containers",
		len(resp.Thrusters), len(resp.Batteries), len(resp.Containers))
	c.JSON(http.StatusOK, resp)
}
