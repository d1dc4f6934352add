package planner

import (
	"errors"
	"testing"

	"thrust-planner/internal/model"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestComputeCargoStats(t *testing.T) {
	ship := testShip()
	ship.Containers = map[model.ContainerClass]int{
		model.ContainerSmall:  2,
		model.ContainerMedium: 1,
	}

	stats, err := ComputeCargoStats(ship, testContainers())
	if err != nil {
		t.Fatal(err)
	}
	if stats.EmptyMassKg != 598 || stats.VolumeL != 3625 {
		t.Fatalf("empty=%v volume=%v", stats.EmptyMassKg, stats.VolumeL)
	}
	if !scalar.EqualWithinAbs(stats.MaxFillMassKg, 28275, 1e-6) {
		t.Fatalf("max fill=%v", stats.MaxFillMassKg)
	}
	if stats.EffectiveMassKg != 598 {
		t.Fatalf("empty containers should only add their own mass, got %v", stats.EffectiveMassKg)
	}

	ship.FillContainers = true
	stats, err = ComputeCargoStats(ship, testContainers())
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(stats.EffectiveMassKg, 598+28275, 1e-6) {
		t.Fatalf("filled effective mass=%v", stats.EffectiveMassKg)
	}
}

func TestComputeCargoStatsNoContainers(t *testing.T) {
	stats, err := ComputeCargoStats(testShip(), testContainers())
	if err != nil {
		t.Fatal(err)
	}
	if stats != (model.CargoStats{}) {
		t.Fatalf("want zero stats, got %+v", stats)
	}
}

func TestComputeCargoStatsMissingClass(t *testing.T) {
	ship := testShip()
	ship.Grid = model.GridLarge
	ship.Containers = map[model.ContainerClass]int{model.ContainerMedium: 1}

	_, err := ComputeCargoStats(ship, testContainers())
	var invalid *model.InvalidInputError
	if !errors.As(err, &invalid) || invalid.Field != "containers.medium" {
		t.Fatalf("want InvalidInputError on containers.medium, got %v", err)
	}

	// A zero count never needs a catalog entry.
	ship.Containers = map[model.ContainerClass]int{model.ContainerMedium: 0}
	if _, err := ComputeCargoStats(ship, testContainers()); err != nil {
		t.Fatalf("zero count rejected: %v", err)
	}
}
