package planner

import "thrust-planner/internal/model"

// Candidates filters the catalog for one axis: grid size, vehicle family
// eligibility, and for lateral axes the vehicle's lateral family in small
// blocks only. Catalog order is preserved.
func Candidates(catalog []model.ThrusterSpec, grid model.GridSize, vehicle model.VehicleClass, axis model.Axis) []model.ThrusterSpec {
	out := make([]model.ThrusterSpec, 0, len(catalog))
	for _, t := range catalog {
		if t.Grid != grid || !vehicle.Allows(t.Family) {
			continue
		}
		if axis.IsLateral() && (t.Family != vehicle.LateralFamily() || t.Block != model.BlockSmall) {
			continue
		}
		out = append(out, t)
	}
	return out
}
