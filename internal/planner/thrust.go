package planner

import (
	"math"

	"thrust-planner/internal/model"
)

const (
	// StandardGravity is 1 g in m/s².
	StandardGravity = 9.81

	// Maneuver headroom per axis group, relative to the ship's weight.
	verticalHeadroom     = 1.5
	longitudinalHeadroom = 0.75 // split between front and rear
	lateralHeadroom      = 0.5  // split between left and right

	// ReferenceDistanceM is the run-up distance for flight envelope metrics.
	ReferenceDistanceM = 100.0
)

// ComputeRequirements returns the overall required thrust and the five axis
// requirements in model.Axes order. Only the overall figure depends on the
// system margin and cargo multiplier.
func ComputeRequirements(totalMassKg float64, ship model.ShipConfiguration) (float64, []model.AxisRequirement) {
	weight := totalMassKg * StandardGravity * ship.Gravity
	overall := weight * (ship.MarginPercent / 100) / ship.CargoMultiplier

	vertical := weight * verticalHeadroom
	longitudinal := weight * longitudinalHeadroom / 2
	lateral := weight * lateralHeadroom / 2

	return overall, []model.AxisRequirement{
		{Axis: model.AxisVertical, RequiredThrustN: vertical},
		{Axis: model.AxisFront, RequiredThrustN: longitudinal},
		{Axis: model.AxisRear, RequiredThrustN: longitudinal},
		{Axis: model.AxisLeft, RequiredThrustN: lateral},
		{Axis: model.AxisRight, RequiredThrustN: lateral},
	}
}

// EstimateEnvelope derives top speed after ReferenceDistanceM of constant
// acceleration and the time to brake from it. Zero mass or thrust yields zeros.
func EstimateEnvelope(requiredThrustN, totalMassKg float64) (maxSpeedMps, brakingTimeS float64) {
	if totalMassKg <= 0 || requiredThrustN <= 0 {
		return 0, 0
	}
	accel := requiredThrustN / totalMassKg
	maxSpeedMps = math.Sqrt(2 * accel * ReferenceDistanceM)
	brakingTimeS = maxSpeedMps / accel
	return maxSpeedMps, brakingTimeS
}
