package planner

import (
	"thrust-planner/internal/model"

	"gonum.org/v1/gonum/floats"
)

// ComputePowerBudget sums the power draw of every axis combination (W) and
// derives the stored energy needed for the endurance target (MWh), scaled by
// the system margin.
func ComputePowerBudget(axes []model.AxisSolution, enduranceHours, marginPercent float64) (powerW, energyMWh float64) {
	draws := make([]float64, 0, len(axes))
	for _, a := range axes {
		draws = append(draws, a.Combination.PowerW())
	}
	powerW = floats.Sum(draws)
	energyMWh = (powerW / 1e6) * enduranceHours * (marginPercent / 100)
	return powerW, energyMWh
}
