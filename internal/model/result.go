package model

import (
	"fmt"
	"strings"
)

// AxisRequirement is the thrust one axis must deliver.
type AxisRequirement struct {
	Axis            Axis    `json:"axis"`
	RequiredThrustN float64 `json:"required_thrust_n"`
}

// ThrusterCount is one entry of a combination. Count is always >= 1.
type ThrusterCount struct {
	Thruster ThrusterSpec `json:"thruster"`
	Count    int          `json:"count"`
}

// ThrusterCombination is an ordered set of thruster entries.
type ThrusterCombination struct {
	Entries []ThrusterCount `json:"entries"`
}

func (c ThrusterCombination) TotalCount() int {
	n := 0
	for _, e := range c.Entries {
		n += e.Count
	}
	return n
}

// EffectiveThrustN sums count × rated thrust × efficiency.
func (c ThrusterCombination) EffectiveThrustN(density float64) float64 {
	sum := 0.0
	for _, e := range c.Entries {
		sum += float64(e.Count) * e.Thruster.EffectiveThrustN(density)
	}
	return sum
}

func (c ThrusterCombination) PowerW() float64 {
	sum := 0.0
	for _, e := range c.Entries {
		sum += float64(e.Count) * e.Thruster.PowerW
	}
	return sum
}

func (c ThrusterCombination) MassKg() float64 {
	sum := 0.0
	for _, e := range c.Entries {
		sum += float64(e.Count) * e.Thruster.MassKg
	}
	return sum
}

// String renders "2x Small Ion + 1x Large Ion".
func (c ThrusterCombination) String() string {
	if len(c.Entries) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(c.Entries))
	for _, e := range c.Entries {
		parts = append(parts, fmt.Sprintf("%dx %s", e.Count, e.Thruster.Name))
	}
	return strings.Join(parts, " + ")
}

// AxisSolution is the chosen configuration for one axis.
type AxisSolution struct {
	AxisRequirement
	Combination      ThrusterCombination `json:"combination"`
	EffectiveThrustN float64             `json:"effective_thrust_n"`
	MaxSpeedMps      float64             `json:"max_speed_mps"`
	BrakingTimeS     float64             `json:"braking_time_s"`
}

// BankOption names a battery bank candidate generator.
type BankOption string

const (
	BankSmallOnly BankOption = "small_only"
	BankLargeOnly BankOption = "large_only"
	BankMixed     BankOption = "mixed"
)

// BankCandidate is one evaluated battery bank option.
type BankCandidate struct {
	Option     BankOption `json:"option"`
	LargeCount int        `json:"large_count"`
	SmallCount int        `json:"small_count"`
	StorageMWh float64    `json:"storage_mwh"`
	MassKg     float64    `json:"mass_kg"`
	VolumeM3   float64    `json:"volume_m3"`
	WasteRatio float64    `json:"waste_ratio"`
	Score      float64    `json:"score"`
}

// BatteryBankSolution is the selected bank.
// Units: StorageMWh MWh, MassKg kg, VolumeM3 m³, RechargeMinutes min, EnduranceHours h.
type BatteryBankSolution struct {
	Option          BankOption      `json:"option"`
	LargeCount      int             `json:"large_count"`
	SmallCount      int             `json:"small_count"`
	StorageMWh      float64         `json:"storage_mwh"`
	MassKg          float64         `json:"mass_kg"`
	VolumeM3        float64         `json:"volume_m3"`
	RechargeMinutes float64         `json:"recharge_minutes"`
	EnduranceHours  float64         `json:"endurance_hours"`
	Candidates      []BankCandidate `json:"candidates,omitempty"`
}

// CalculationResult is the full engine output.
type CalculationResult struct {
	OverallRequiredThrustN float64             `json:"overall_required_thrust_n"`
	Cargo                  CargoStats          `json:"cargo"`
	Axes                   []AxisSolution      `json:"axes"`
	BatteryBank            BatteryBankSolution `json:"battery_bank"`
	TotalPowerW            float64             `json:"total_power_w"`
	RequiredEnergyMWh      float64             `json:"required_energy_mwh"`
	TotalMassKg            float64             `json:"total_mass_kg"`
}

// Axis returns the solution for a, if present.
func (r *CalculationResult) Axis(a Axis) (AxisSolution, bool) {
	for _, s := range r.Axes {
		if s.Axis == a {
			return s, true
		}
	}
	return AxisSolution{}, false
}
