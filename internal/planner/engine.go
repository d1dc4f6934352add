package planner

import (
	"errors"
	"fmt"
	"math"

	"thrust-planner/internal/model"
)

// Options tunes the combination search. The zero value is not useful; start
// from DefaultOptions.
type Options struct {
	Hybrid HybridSearch
}

func DefaultOptions() Options {
	return Options{Hybrid: DefaultHybridSearch()}
}

// Engine computes propulsion and power configurations. It holds no state
// between calls and is safe for concurrent use.
type Engine struct {
	opts Options
}

func New() *Engine { return NewWithOptions(DefaultOptions()) }

func NewWithOptions(opts Options) *Engine {
	if opts.Hybrid.MaxLarge < 0 {
		opts.Hybrid.MaxLarge = 0
	}
	if opts.Hybrid.MaxSmall < 0 {
		opts.Hybrid.MaxSmall = 0
	}
	return &Engine{opts: opts}
}

func (e *Engine) Options() Options { return e.opts }

// ComputeConfiguration runs the default engine.
func ComputeConfiguration(ship model.ShipConfiguration, thrusters []model.ThrusterSpec, batteries []model.BatterySpec, containers []model.CargoContainerSpec) (*model.CalculationResult, error) {
	return New().Compute(ship, thrusters, batteries, containers)
}

// Compute sizes thrusters and batteries for one ship. On error no partial
// result is returned.
func (e *Engine) Compute(ship model.ShipConfiguration, thrusters []model.ThrusterSpec, batteries []model.BatterySpec, containers []model.CargoContainerSpec) (*model.CalculationResult, error) {
	if err := ship.Validate(); err != nil {
		return nil, err
	}
	pair, err := model.PairBatteries(batteries)
	if err != nil {
		return nil, err
	}

	cargo, err := ComputeCargoStats(ship, containers)
	if err != nil {
		return nil, err
	}
	totalMass := ship.BaseMassKg + cargo.EffectiveMassKg
	overall, reqs := ComputeRequirements(totalMass, ship)

	axes := make([]model.AxisSolution, 0, len(reqs))
	for _, req := range reqs {
		cands := Candidates(thrusters, ship.Grid, ship.Vehicle, req.Axis)
		combo, err := e.SelectCombination(cands, req.RequiredThrustN, ship.AtmosphereDensity)
		if err != nil {
			if errors.Is(err, ErrNoCandidates) || errors.Is(err, ErrNoEffectiveThrust) || errors.Is(err, ErrTooManyUnits) {
				return nil, &model.NoThrusterAvailableError{
					Axis:    req.Axis,
					Grid:    ship.Grid,
					Vehicle: ship.Vehicle,
					Reason:  err.Error(),
				}
			}
			return nil, fmt.Errorf("%s axis: %w", req.Axis, err)
		}
		speed, braking := EstimateEnvelope(req.RequiredThrustN, totalMass)
		axes = append(axes, model.AxisSolution{
			AxisRequirement:  req,
			Combination:      combo,
			EffectiveThrustN: combo.EffectiveThrustN(ship.AtmosphereDensity),
			MaxSpeedMps:      speed,
			BrakingTimeS:     braking,
		})
	}

	powerW, energyMWh := ComputePowerBudget(axes, ship.EnduranceHours, ship.MarginPercent)
	if n := energyMWh / pair.Small.CapacityMWh; math.IsNaN(n) || n > MaxBankUnits {
		return nil, &model.InvalidInputError{
			Field:  "endurance_hours",
			Reason: fmt.Sprintf("needs %.4g MWh, more than %d small batteries", energyMWh, MaxBankUnits),
		}
	}
	bank := SelectBatteryBank(energyMWh, powerW, pair)

	return &model.CalculationResult{
		OverallRequiredThrustN: overall,
		Cargo:                  cargo,
		Axes:                   axes,
		BatteryBank:            bank,
		TotalPowerW:            powerW,
		RequiredEnergyMWh:      energyMWh,
		TotalMassKg:            totalMass,
	}, nil
}
