package planner_test

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"thrust-planner/internal/data"
	"thrust-planner/internal/model"
	"thrust-planner/internal/planner"

	"gonum.org/v1/gonum/floats/scalar"
)

func mustCatalog(t *testing.T) *data.Catalog {
	t.Helper()
	c, err := data.DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog: %v", err)
	}
	return c
}

func earthShip() model.ShipConfiguration {
	return model.ShipConfiguration{
		Name:              "scout",
		Grid:              model.GridSmall,
		BaseMassKg:        10000,
		Gravity:           1,
		AtmosphereDensity: 1,
		CargoMultiplier:   1,
		Vehicle:           model.VehicleAtmospheric,
		MarginPercent:     100,
		EnduranceHours:    1,
	}
}

func compute(t *testing.T, c *data.Catalog, ship model.ShipConfiguration) *model.CalculationResult {
	t.Helper()
	res, err := planner.ComputeConfiguration(ship, c.Thrusters, c.Batteries, c.Containers)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	return res
}

func assertCovered(t *testing.T, res *model.CalculationResult, density float64) {
	t.Helper()
	for _, a := range res.Axes {
		if a.Combination.TotalCount() < 1 {
			t.Fatalf("%s: empty combination", a.Axis)
		}
		if a.EffectiveThrustN < a.RequiredThrustN*planner.SafetyFactor {
			t.Fatalf("%s: effective %v below %v", a.Axis, a.EffectiveThrustN, a.RequiredThrustN*planner.SafetyFactor)
		}
		if got := a.Combination.EffectiveThrustN(density); got != a.EffectiveThrustN {
			t.Fatalf("%s: reported effective %v, combination gives %v", a.Axis, a.EffectiveThrustN, got)
		}
	}
}

func TestComputeEarthScout(t *testing.T) {
	c := mustCatalog(t)
	res := compute(t, c, earthShip())

	if !scalar.EqualWithinAbs(res.OverallRequiredThrustN, 98100, 1e-6) {
		t.Fatalf("overall=%v want 98100", res.OverallRequiredThrustN)
	}
	vertical, ok := res.Axis(model.AxisVertical)
	if !ok {
		t.Fatal("no vertical axis")
	}
	if !scalar.EqualWithinAbs(vertical.RequiredThrustN, 147150, 1e-6) {
		t.Fatalf("vertical=%v want 147150", vertical.RequiredThrustN)
	}
	if got := vertical.Combination.String(); got != "1x Large Hydrogen Thruster" {
		t.Fatalf("vertical combination=%q", got)
	}
	if len(res.Axes) != 5 {
		t.Fatalf("got %d axes", len(res.Axes))
	}
	for _, axis := range []model.Axis{model.AxisLeft, model.AxisRight} {
		a, _ := res.Axis(axis)
		for _, e := range a.Combination.Entries {
			if e.Thruster.Family != model.FamilyAtmospheric || e.Thruster.Block != model.BlockSmall {
				t.Fatalf("%s uses %s %s block", axis, e.Thruster.Family, e.Thruster.Block)
			}
		}
	}
	assertCovered(t, res, 1)

	// Four small atmospheric thrusters at 0.6 MW each; hydrogen draws nothing.
	if !scalar.EqualWithinAbs(res.TotalPowerW, 2.4e6, 1e-3) {
		t.Fatalf("power=%v want 2.4e6", res.TotalPowerW)
	}
	if !scalar.EqualWithinAbs(res.RequiredEnergyMWh, 2.4, 1e-9) {
		t.Fatalf("energy=%v want 2.4", res.RequiredEnergyMWh)
	}
	if res.BatteryBank.StorageMWh < res.RequiredEnergyMWh {
		t.Fatalf("bank storage %v below energy %v", res.BatteryBank.StorageMWh, res.RequiredEnergyMWh)
	}
}

func TestComputeMarginChangesOverallOnly(t *testing.T) {
	c := mustCatalog(t)
	ship := earthShip()
	ship.MarginPercent = 150
	res := compute(t, c, ship)

	if !scalar.EqualWithinAbs(res.OverallRequiredThrustN, 147150, 1e-6) {
		t.Fatalf("overall=%v want 147150", res.OverallRequiredThrustN)
	}
	vertical, _ := res.Axis(model.AxisVertical)
	if !scalar.EqualWithinAbs(vertical.RequiredThrustN, 147150, 1e-6) {
		t.Fatalf("vertical=%v want 147150", vertical.RequiredThrustN)
	}

	prevThrust, prevEnergy := -1.0, -1.0
	for margin := 100.0; margin <= 200; margin += 10 {
		ship.MarginPercent = margin
		r := compute(t, c, ship)
		if r.OverallRequiredThrustN < prevThrust || r.RequiredEnergyMWh < prevEnergy {
			t.Fatalf("margin %v decreased thrust or energy", margin)
		}
		prevThrust, prevEnergy = r.OverallRequiredThrustN, r.RequiredEnergyMWh
	}
}

func TestComputeZeroMass(t *testing.T) {
	c := mustCatalog(t)
	ship := earthShip()
	ship.BaseMassKg = 0
	res := compute(t, c, ship)

	for _, a := range res.Axes {
		if a.MaxSpeedMps != 0 || a.BrakingTimeS != 0 {
			t.Fatalf("%s: speed=%v braking=%v want zeros", a.Axis, a.MaxSpeedMps, a.BrakingTimeS)
		}
	}
	assertCovered(t, res, 1)
}

func TestComputeIsIdempotent(t *testing.T) {
	c := mustCatalog(t)
	ship := earthShip()
	ship.Containers = map[model.ContainerClass]int{model.ContainerLarge: 1, model.ContainerSmall: 3}
	ship.FillContainers = true

	first := compute(t, c, ship)
	second := compute(t, c, ship)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("repeated computation differs")
	}
}

func TestComputeConcurrent(t *testing.T) {
	c := mustCatalog(t)
	e := planner.New()
	want, err := e.Compute(earthShip(), c.Thrusters, c.Batteries, c.Containers)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := e.Compute(earthShip(), c.Thrusters, c.Batteries, c.Containers)
			if err != nil {
				errs <- err
				return
			}
			if !reflect.DeepEqual(got, want) {
				errs <- errors.New("concurrent result differs")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}

func TestComputeCargoAddsMass(t *testing.T) {
	c := mustCatalog(t)
	ship := earthShip()
	ship.Containers = map[model.ContainerClass]int{model.ContainerMedium: 1}
	empty := compute(t, c, ship)
	if !scalar.EqualWithinAbs(empty.TotalMassKg, 10412, 1e-9) {
		t.Fatalf("total mass=%v want 10412", empty.TotalMassKg)
	}

	ship.FillContainers = true
	full := compute(t, c, ship)
	if !scalar.EqualWithinAbs(full.TotalMassKg, 10412+3375*model.OreDensityKgPerL, 1e-6) {
		t.Fatalf("filled mass=%v", full.TotalMassKg)
	}
	if full.OverallRequiredThrustN <= empty.OverallRequiredThrustN {
		t.Fatal("filled cargo should need more thrust")
	}
	assertCovered(t, full, 1)
}

func TestComputeEveryGridAndVehicle(t *testing.T) {
	c := mustCatalog(t)
	for _, grid := range []model.GridSize{model.GridSmall, model.GridLarge} {
		for _, vehicle := range []model.VehicleClass{model.VehicleAtmospheric, model.VehicleInterplanetary} {
			for _, env := range []struct{ gravity, density float64 }{{1, 1}, {0.25, 0.5}, {1.2, 1.2}} {
				ship := earthShip()
				ship.Grid = grid
				ship.Vehicle = vehicle
				ship.Gravity = env.gravity
				ship.AtmosphereDensity = env.density
				ship.BaseMassKg = 250000
				res, err := planner.ComputeConfiguration(ship, c.Thrusters, c.Batteries, c.Containers)
				if err != nil {
					t.Fatalf("%s/%s g=%v: %v", grid, vehicle, env.gravity, err)
				}
				assertCovered(t, res, env.density)
			}
		}
	}
}

func TestComputeInterplanetaryVacuum(t *testing.T) {
	c := mustCatalog(t)
	ship := earthShip()
	ship.Vehicle = model.VehicleInterplanetary
	ship.Gravity = 0
	ship.AtmosphereDensity = 0
	ship.EnduranceHours = 2

	res := compute(t, c, ship)
	if res.OverallRequiredThrustN != 0 {
		t.Fatalf("overall=%v want 0 in zero gravity", res.OverallRequiredThrustN)
	}
	left, _ := res.Axis(model.AxisLeft)
	if got := left.Combination.String(); got != "1x Hydrogen Thruster" {
		t.Fatalf("left combination=%q", got)
	}
	assertCovered(t, res, 0)
}

func TestComputeErrors(t *testing.T) {
	c := mustCatalog(t)

	t.Run("invalid input", func(t *testing.T) {
		ship := earthShip()
		ship.MarginPercent = 50
		res, err := planner.ComputeConfiguration(ship, c.Thrusters, c.Batteries, c.Containers)
		var invalid *model.InvalidInputError
		if !errors.As(err, &invalid) || res != nil {
			t.Fatalf("want InvalidInputError and nil result, got %v", err)
		}
	})

	t.Run("incomplete battery catalog", func(t *testing.T) {
		res, err := planner.ComputeConfiguration(earthShip(), c.Thrusters, c.Batteries[:1], c.Containers)
		var incomplete *model.IncompleteBatteryCatalogError
		if !errors.As(err, &incomplete) || res != nil {
			t.Fatalf("want IncompleteBatteryCatalogError, got %v", err)
		}
	})

	t.Run("no candidates for grid", func(t *testing.T) {
		var largeOnly []model.ThrusterSpec
		for _, th := range c.Thrusters {
			if th.Grid == model.GridLarge {
				largeOnly = append(largeOnly, th)
			}
		}
		_, err := planner.ComputeConfiguration(earthShip(), largeOnly, c.Batteries, c.Containers)
		var none *model.NoThrusterAvailableError
		if !errors.As(err, &none) || none.Axis != model.AxisVertical {
			t.Fatalf("want NoThrusterAvailableError on vertical, got %v", err)
		}
	})

	t.Run("atmospheric lateral in vacuum", func(t *testing.T) {
		ship := earthShip()
		ship.AtmosphereDensity = 0
		_, err := planner.ComputeConfiguration(ship, c.Thrusters, c.Batteries, c.Containers)
		var none *model.NoThrusterAvailableError
		if !errors.As(err, &none) || none.Axis != model.AxisLeft {
			t.Fatalf("want NoThrusterAvailableError on left, got %v", err)
		}
	})

	t.Run("unknown container class", func(t *testing.T) {
		ship := earthShip()
		ship.Grid = model.GridLarge
		ship.Containers = map[model.ContainerClass]int{model.ContainerMedium: 2}
		_, err := planner.ComputeConfiguration(ship, c.Thrusters, c.Batteries, c.Containers)
		var invalid *model.InvalidInputError
		if !errors.As(err, &invalid) {
			t.Fatalf("want InvalidInputError, got %v", err)
		}
	})
}

func TestComputeRejectsUnboundedCounts(t *testing.T) {
	c := mustCatalog(t)

	for _, density := range []float64{1e-12, 1e-20} {
		ship := earthShip()
		ship.AtmosphereDensity = density
		res, err := planner.ComputeConfiguration(ship, c.Thrusters, c.Batteries, c.Containers)
		var none *model.NoThrusterAvailableError
		if !errors.As(err, &none) || res != nil {
			t.Fatalf("density=%v: want NoThrusterAvailableError, got %v", density, err)
		}
		if none.Axis != model.AxisLeft {
			t.Fatalf("density=%v: axis=%s want left", density, none.Axis)
		}
	}

	for _, mass := range []float64{1e30, 1e307} {
		ship := earthShip()
		ship.BaseMassKg = mass
		res, err := planner.ComputeConfiguration(ship, c.Thrusters, c.Batteries, c.Containers)
		var none *model.NoThrusterAvailableError
		if !errors.As(err, &none) || res != nil {
			t.Fatalf("mass=%v: want NoThrusterAvailableError, got %v", mass, err)
		}
	}

	ship := earthShip()
	ship.EnduranceHours = 1e12
	res, err := planner.ComputeConfiguration(ship, c.Thrusters, c.Batteries, c.Containers)
	var invalid *model.InvalidInputError
	if !errors.As(err, &invalid) || invalid.Field != "endurance_hours" || res != nil {
		t.Fatalf("want InvalidInputError on endurance_hours, got %v", err)
	}
}
