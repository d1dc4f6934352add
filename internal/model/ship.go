package model

import (
	"math"
	"sort"
)

// ShipConfiguration is the engine input.
// Units:
// - BaseMassKg: kg, excluding cargo
// - Gravity: multiple of 9.81 m/s²
// - AtmosphereDensity: 0 = vacuum, 1 = reference atmosphere
// - MarginPercent: >= 100
// - EnduranceHours: h
type ShipConfiguration struct {
	Name              string                 `json:"name,omitempty"`
	Grid              GridSize               `json:"grid_size"`
	BaseMassKg        float64                `json:"base_mass_kg"`
	Gravity           float64                `json:"gravity"`
	AtmosphereDensity float64                `json:"atmosphere_density"`
	CargoMultiplier   float64                `json:"cargo_multiplier"`
	Vehicle           VehicleClass           `json:"vehicle_class"`
	MarginPercent     float64                `json:"margin_percent"`
	EnduranceHours    float64                `json:"endurance_hours"`
	Containers        map[ContainerClass]int `json:"containers,omitempty"`
	FillContainers    bool                   `json:"fill_containers"`
}

// Validate rejects configurations the engine cannot compute.
func (s ShipConfiguration) Validate() error {
	if math.IsNaN(s.BaseMassKg) || math.IsInf(s.BaseMassKg, 0) {
		return &InvalidInputError{Field: "base_mass_kg", Reason: "must be a finite number"}
	}
	if s.BaseMassKg < 0 {
		return &InvalidInputError{Field: "base_mass_kg", Reason: "must be >= 0"}
	}
	if _, err := ParseGridSize(string(s.Grid)); err != nil {
		return &InvalidInputError{Field: "grid_size", Reason: err.Error()}
	}
	if _, err := ParseVehicleClass(string(s.Vehicle)); err != nil {
		return &InvalidInputError{Field: "vehicle_class", Reason: err.Error()}
	}
	if !finiteAtLeast(s.Gravity, 0) {
		return &InvalidInputError{Field: "gravity", Reason: "must be >= 0"}
	}
	if !finiteAtLeast(s.AtmosphereDensity, 0) {
		return &InvalidInputError{Field: "atmosphere_density", Reason: "must be >= 0"}
	}
	if !(s.CargoMultiplier > 0) || math.IsInf(s.CargoMultiplier, 0) {
		return &InvalidInputError{Field: "cargo_multiplier", Reason: "must be > 0"}
	}
	if !finiteAtLeast(s.MarginPercent, 100) {
		return &InvalidInputError{Field: "margin_percent", Reason: "must be >= 100"}
	}
	if !finiteAtLeast(s.EnduranceHours, 0) {
		return &InvalidInputError{Field: "endurance_hours", Reason: "must be >= 0"}
	}
	for class, n := range s.Containers {
		if n < 0 {
			return &InvalidInputError{Field: "containers." + string(class), Reason: "count must be >= 0"}
		}
	}
	return nil
}

// ContainerClasses returns the configured classes in a stable order.
func (s ShipConfiguration) ContainerClasses() []ContainerClass {
	out := make([]ContainerClass, 0, len(s.Containers))
	for c := range s.Containers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func finiteAtLeast(x, min float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x >= min
}
