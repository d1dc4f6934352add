package model

import "fmt"

// GridSize is the craft scale class a catalog entry belongs to.
type GridSize string

const (
	GridSmall GridSize = "small"
	GridLarge GridSize = "large"
)

func ParseGridSize(s string) (GridSize, error) {
	switch GridSize(s) {
	case GridSmall, GridLarge:
		return GridSize(s), nil
	default:
		return "", fmt.Errorf("unknown grid size %q", s)
	}
}

// BlockSize distinguishes the small and large block of a thruster or
// battery family within one grid size.
type BlockSize string

const (
	BlockSmall BlockSize = "small"
	BlockLarge BlockSize = "large"
)

// Family is the propulsion technology of a thruster. It decides how the
// thruster responds to atmosphere (see Response).
type Family string

const (
	FamilyAtmospheric Family = "atmospheric"
	FamilyIon         Family = "ion"
	FamilyHydrogen    Family = "hydrogen"
)

// VehicleClass filters which thruster families a ship may carry.
type VehicleClass string

const (
	VehicleAtmospheric    VehicleClass = "atmospheric"
	VehicleInterplanetary VehicleClass = "interplanetary"
)

func ParseVehicleClass(s string) (VehicleClass, error) {
	switch VehicleClass(s) {
	case VehicleAtmospheric, VehicleInterplanetary:
		return VehicleClass(s), nil
	default:
		return "", fmt.Errorf("unknown vehicle class %q", s)
	}
}

// Allows reports whether thrusters of family f are eligible on this vehicle.
func (v VehicleClass) Allows(f Family) bool {
	switch v {
	case VehicleAtmospheric:
		return f == FamilyAtmospheric || f == FamilyHydrogen
	case VehicleInterplanetary:
		return f == FamilyIon || f == FamilyHydrogen
	default:
		return false
	}
}

// LateralFamily is the single family used for the left and right axes.
func (v VehicleClass) LateralFamily() Family {
	if v == VehicleInterplanetary {
		return FamilyHydrogen
	}
	return FamilyAtmospheric
}

// EfficiencyCurve bounds the thrust multiplier between vacuum (Min) and the
// density at which the thruster reaches full benefit (Max).
type EfficiencyCurve struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// ThrusterSpec is one catalog entry.
// Units:
// - MassKg: kg
// - ThrustN: N (rated, at full efficiency)
// - PowerW: W drawn at full thrust
// - FuelRateLps: L/s of hydrogen at full thrust, 0 when not fuel-driven
type ThrusterSpec struct {
	Name        string           `yaml:"name" json:"name"`
	Family      Family           `yaml:"family" json:"family"`
	Block       BlockSize        `yaml:"block" json:"block"`
	Grid        GridSize         `yaml:"grid" json:"grid"`
	MassKg      float64          `yaml:"mass_kg" json:"mass_kg"`
	ThrustN     float64          `yaml:"thrust_n" json:"thrust_n"`
	PowerW      float64          `yaml:"power_w" json:"power_w"`
	FuelRateLps float64          `yaml:"fuel_rate_lps,omitempty" json:"fuel_rate_lps,omitempty"`
	Curve       *EfficiencyCurve `yaml:"curve,omitempty" json:"curve,omitempty"`
}

// AtmosphereResponse maps an atmosphere density to a thrust multiplier.
type AtmosphereResponse interface {
	Efficiency(density float64) float64
}

// CurveResponse interpolates linearly between the curve bounds and saturates
// at Max once density exceeds 1.
type CurveResponse struct {
	Curve EfficiencyCurve
}

func (r CurveResponse) Efficiency(density float64) float64 {
	if density > 1 {
		return r.Curve.Max
	}
	return r.Curve.Min + (r.Curve.Max-r.Curve.Min)*density
}

// IonPenaltyFactor is the fixed multiplier for ion thrusters in any atmosphere.
const IonPenaltyFactor = 0.3

// VacuumPenaltyResponse is full strength in vacuum and a fixed penalty as soon
// as there is any atmosphere. It is not interpolated.
type VacuumPenaltyResponse struct {
	Penalty float64
}

func (r VacuumPenaltyResponse) Efficiency(density float64) float64 {
	if density > 0 {
		return r.Penalty
	}
	return 1
}

// ConstantResponse ignores atmosphere.
type ConstantResponse struct{}

func (ConstantResponse) Efficiency(float64) float64 { return 1 }

// Response picks the atmosphere variant for this thruster. A curve always
// wins; otherwise the family decides.
func (t ThrusterSpec) Response() AtmosphereResponse {
	switch {
	case t.Curve != nil:
		return CurveResponse{Curve: *t.Curve}
	case t.Family == FamilyIon:
		return VacuumPenaltyResponse{Penalty: IonPenaltyFactor}
	default:
		return ConstantResponse{}
	}
}

func (t ThrusterSpec) Efficiency(density float64) float64 {
	return t.Response().Efficiency(density)
}

// EffectiveThrustN is rated thrust scaled by atmosphere efficiency.
func (t ThrusterSpec) EffectiveThrustN(density float64) float64 {
	return t.ThrustN * t.Efficiency(density)
}
