package planner

import "thrust-planner/internal/model"

// ComputeCargoStats totals the installed containers for the ship's grid.
// A class with a non-zero count must have a matching catalog entry.
func ComputeCargoStats(ship model.ShipConfiguration, containers []model.CargoContainerSpec) (model.CargoStats, error) {
	var stats model.CargoStats
	for _, class := range ship.ContainerClasses() {
		n := ship.Containers[class]
		if n == 0 {
			continue
		}
		spec, ok := findContainer(containers, ship.Grid, class)
		if !ok {
			return model.CargoStats{}, &model.InvalidInputError{
				Field:  "containers." + string(class),
				Reason: "no " + string(ship.Grid) + " grid container of this class in catalog",
			}
		}
		stats.EmptyMassKg += float64(n) * spec.EmptyMassKg
		stats.VolumeL += float64(n) * spec.VolumeL
	}
	stats.MaxFillMassKg = stats.VolumeL * model.OreDensityKgPerL
	stats.EffectiveMassKg = stats.EmptyMassKg
	if ship.FillContainers {
		stats.EffectiveMassKg += stats.MaxFillMassKg
	}
	return stats, nil
}

func findContainer(containers []model.CargoContainerSpec, grid model.GridSize, class model.ContainerClass) (model.CargoContainerSpec, bool) {
	for _, c := range containers {
		if c.Grid == grid && c.Class == class {
			return c, true
		}
	}
	return model.CargoContainerSpec{}, false
}
