package handlers

import (
	"bytes"
	"log"
	"net/http"
	"time"

	"thrust-planner/internal/api/models"
	"thrust-planner/internal/config"
	"thrust-planner/internal/data"
	"thrust-planner/internal/metrics"
	"thrust-planner/internal/model"
	"thrust-planner/internal/planner"

	"github.com/gin-gonic/gin"
)

// CalculateHandler handles calculation requests
type CalculateHandler struct {
	engine  *planner.Engine
	catalog *data.Catalog
	cache   *data.ResultCache
	metrics *metrics.Collector
	now     func() time.Time
}

// NewCalculateHandler creates a new calculate handler. cache and m may be nil.
func NewCalculateHandler(engine *planner.Engine, catalog *data.Catalog, cache *data.ResultCache, m *metrics.Collector) *CalculateHandler {
	if engine == nil {
		engine = planner.New()
	}
	return &CalculateHandler{
		engine:  engine,
		catalog: catalog,
		cache:   cache,
		metrics: m,
		now:     time.Now,
	}
}

// Calculate handles POST /api/v1/calculate
func (h *CalculateHandler) Calculate(c *gin.Context) {
	var req models.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	id, ship, result, err := h.compute(req.Ship, "http")
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.buildResponse(id, ship, result, req.Options))
}

// GetReport handles GET /api/v1/calculations/:id/report
func (h *CalculateHandler) GetReport(c *gin.Context) {
	calc, ok := h.lookup(c)
	if !ok {
		return
	}
	c.String(http.StatusOK, planner.RenderReport(calc.Result))
}

// GetExport handles GET /api/v1/calculations/:id/export
// format=json (default) returns the export document, format=csv the axis table.
func (h *CalculateHandler) GetExport(c *gin.Context) {
	calc, ok := h.lookup(c)
	if !ok {
		return
	}
	id := c.Param("id")

	switch c.DefaultQuery("format", "json") {
	case "json":
		var buf bytes.Buffer
		if err := planner.EncodeExport(&buf, planner.NewExport(calc.Ship, calc.Result, h.now())); err != nil {
			writeError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+id+`.json"`)
		c.Data(http.StatusOK, "application/json", buf.Bytes())
	case "csv":
		var buf bytes.Buffer
		if err := planner.EncodeAxesCSV(&buf, calc.Result); err != nil {
			writeError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+id+`.csv"`)
		c.Data(http.StatusOK, "text/csv", buf.Bytes())
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: "format must be json or csv",
			},
		})
	}
}

// Helper methods

// compute resolves the form config, runs the engine and caches the result.
func (h *CalculateHandler) compute(sc config.ShipConfig, source string) (string, model.ShipConfiguration, *model.CalculationResult, error) {
	ship, err := sc.ToModel()
	if err != nil {
		h.metrics.RecordCalculation(source, outcomeCode(err))
		return "", model.ShipConfiguration{}, nil, err
	}

	result, err := h.engine.Compute(ship, h.catalog.Thrusters, h.catalog.Batteries, h.catalog.Containers)
	if err != nil {
		log.Printf("CalculateHandler: %s calculation failed: %v", source, err)
		h.metrics.RecordCalculation(source, outcomeCode(err))
		return "", model.ShipConfiguration{}, nil, err
	}
	h.metrics.RecordCalculation(source, "ok")

	id := data.GenerateCacheKey(ship)
	h.cache.Set(id, &data.CachedCalculation{
		Ship:       ship,
		Result:     result,
		ComputedAt: h.now(),
	})
	return id, ship, result, nil
}

func (h *CalculateHandler) lookup(c *gin.Context) (*data.CachedCalculation, bool) {
	id := c.Param("id")
	calc, ok := h.cache.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NOT_FOUND",
				Message: "calculation " + id + " not found or expired",
			},
		})
		return nil, false
	}
	return calc, true
}

func (h *CalculateHandler) buildResponse(id string, ship model.ShipConfiguration, result *model.CalculationResult, opts models.CalculateOptions) models.CalculateResponse {
	out := *result
	if !opts.IncludeCandidates {
		out.BatteryBank.Candidates = nil
	}
	resp := models.CalculateResponse{
		ID:     id,
		Ship:   ship,
		Result: &out,
	}
	if opts.IncludeReport {
		resp.Report = planner.RenderReport(result)
	}
	return resp
}

func outcomeCode(err error) string {
	_, detail := errorDetail(err)
	return detail.Code
}
