package main

import (
	"flag"
	"fmt"
	"os"

	"thrust-planner/internal/config"
	"thrust-planner/internal/data"
	"thrust-planner/internal/model"
	"thrust-planner/internal/planner"
)

// Demo:
// - Load the built-in catalog
// - Build a small-grid ship (or load one via --config)
// - Sweep the system margin to show how the models fit together
func main() {
	cfgPath := flag.String("config", "", "Path to YAML ship config (optional)")
	outCSV := flag.String("out", "", "Optional path to write the per-axis CSV of the last run")
	flag.Parse()

	catalog, err := data.DefaultCatalog()
	if err != nil {
		panic(err)
	}

	// Defaults (can be overridden via --config).
	ship := model.ShipConfiguration{
		Name:              "demo",
		Grid:              model.GridSmall,
		BaseMassKg:        10000,
		Gravity:           1.0,
		AtmosphereDensity: 1.0,
		CargoMultiplier:   1.0,
		Vehicle:           model.VehicleAtmospheric,
		MarginPercent:     100,
		EnduranceHours:    1,
	}

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		if cfg.CatalogFile != "" {
			if catalog, err = data.LoadCatalog(cfg.CatalogFile); err != nil {
				panic(err)
			}
		}
		if ship, err = cfg.Ship.ToModel(); err != nil {
			panic(err)
		}
	}

	engine := planner.New()
	var last *model.CalculationResult
	for _, margin := range []float64{100, 125, 150} {
		s := ship
		s.MarginPercent = margin
		res, err := engine.Compute(s, catalog.Thrusters, catalog.Batteries, catalog.Containers)
		if err != nil {
			fmt.Fprintf(os.Stderr, "margin %.0f%%: %v\n", margin, err)
			continue
		}
		vertical, _ := res.Axis(model.AxisVertical)
		fmt.Printf(
			"margin=%3.0f%%  overall=%10.0f N  vertical=%10.0f N (%s)  battery=%dL+%dS  power=%.2f MW\n",
			margin,
			res.OverallRequiredThrustN,
			vertical.RequiredThrustN,
			vertical.Combination,
			res.BatteryBank.LargeCount,
			res.BatteryBank.SmallCount,
			res.TotalPowerW/1e6,
		)
		last = res
	}

	if last == nil {
		os.Exit(1)
	}
	fmt.Printf("\n%s", planner.RenderReport(last))

	if *outCSV != "" {
		if err := planner.WriteAxesCSV(*outCSV, last); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}
}
