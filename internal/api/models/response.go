package models

import (
	"thrust-planner/internal/config"
	"thrust-planner/internal/model"
)

// CalculateResponse represents the response from a calculation
type CalculateResponse struct {
	ID     string                   `json:"id"`
	Ship   model.ShipConfiguration  `json:"ship"`
	Result *model.CalculationResult `json:"result"`
	Report string                   `json:"report,omitempty"`
}

// CompareResponse represents the response from a comparison
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
	Failed     []FailedVariation  `json:"failed,omitempty"`
}

// ComparisonResult contains the ranked summary for one variation
type ComparisonResult struct {
	Rank                   int     `json:"rank"`
	Name                   string  `json:"name"`
	ID                     string  `json:"id"`
	OverallRequiredThrustN float64 `json:"overall_required_thrust_n"`
	TotalMassKg            float64 `json:"total_mass_kg"`
	ThrusterCount          int     `json:"thruster_count"`
	ThrusterMassKg         float64 `json:"thruster_mass_kg"`
	BatteryMassKg          float64 `json:"battery_mass_kg"`
	PropulsionMassKg       float64 `json:"propulsion_mass_kg"`
	TotalPowerW            float64 `json:"total_power_w"`
	EnduranceHours         float64 `json:"endurance_hours"`
}

// FailedVariation reports a variation the engine rejected
type FailedVariation struct {
	Name  string      `json:"name"`
	Error ErrorDetail `json:"error"`
}

// CatalogResponse lists the block catalog in use
type CatalogResponse struct {
	Thrusters  []model.ThrusterSpec       `json:"thrusters"`
	Batteries  []model.BatterySpec        `json:"batteries"`
	Containers []model.CargoContainerSpec `json:"containers"`
}

// PresetsResponse lists the values a configuration form offers
type PresetsResponse struct {
	Gravity        []config.Preset `json:"gravity"`
	Atmosphere     []config.Preset `json:"atmosphere"`
	Multiplier     []config.Preset `json:"multiplier"`
	GridSizes      []string        `json:"grid_sizes"`
	VehicleClasses []string        `json:"vehicle_classes"`
	MarginPercent  Range           `json:"margin_percent"`
	EnduranceHours Range           `json:"endurance_hours"`
}

// Range is an inclusive numeric range with a default
type Range struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Default float64 `json:"default"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
