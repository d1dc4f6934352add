package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"thrust-planner/internal/analysis"
	"thrust-planner/internal/config"
	"thrust-planner/internal/data"
	"thrust-planner/internal/model"
	"thrust-planner/internal/planner"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "calculate":
		cmdCalculate(os.Args[2:])
	case "compare":
		cmdCompare(os.Args[2:])
	case "catalog":
		cmdCatalog(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli calculate --config examples/ships/hauler.yaml [--json out/hauler.json] [--csv out/axes.csv]")
	fmt.Println("  cli compare --config examples/ships/hauler.yaml,examples/ships/courier.yaml")
	fmt.Println("  cli catalog [--catalog catalog.yaml] [--grid small|large]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - calculate prints the thruster and battery report for one ship")
	fmt.Println("  - compare ranks ships by thruster + battery mass, then power draw")
	fmt.Println("  - --catalog overrides catalog_file from the config; default is the built-in catalog")
}

func cmdCalculate(args []string) {
	fs := flag.NewFlagSet("calculate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML ship config")
	catalogPath := fs.String("catalog", "", "Optional catalog file (YAML or JSON)")
	jsonPath := fs.String("json", "", "Optional path to write the JSON export")
	csvPath := fs.String("csv", "", "Optional path to write the per-axis CSV")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fail(err)
	}
	catalog, err := data.LoadCatalogOrDefault(firstNonEmpty(*catalogPath, cfg.CatalogFile))
	if err != nil {
		fail(err)
	}
	ship, err := cfg.Ship.ToModel()
	if err != nil {
		fail(err)
	}

	res, err := planner.New().Compute(ship, catalog.Thrusters, catalog.Batteries, catalog.Containers)
	if err != nil {
		fail(err)
	}

	fmt.Print(planner.RenderReport(res))

	if *jsonPath != "" {
		ensureDir(*jsonPath)
		if err := planner.WriteExportJSON(*jsonPath, planner.NewExport(ship, res, time.Now())); err != nil {
			fail(err)
		}
		fmt.Printf("\nWrote export to %s\n", *jsonPath)
	}
	if *csvPath != "" {
		ensureDir(*csvPath)
		if err := planner.WriteAxesCSV(*csvPath, res); err != nil {
			fail(err)
		}
		fmt.Printf("Wrote %d axis rows to %s\n", len(res.Axes), *csvPath)
	}
}

func cmdCompare(args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	cfgPaths := fs.String("config", "", "Comma-separated YAML ship configs")
	catalogPath := fs.String("catalog", "", "Optional catalog file (YAML or JSON)")
	_ = fs.Parse(args)

	paths := splitPaths(*cfgPaths)
	if len(paths) == 0 {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	catalog, err := data.LoadCatalogOrDefault(*catalogPath)
	if err != nil {
		fail(err)
	}
	engine := planner.New()

	variations := make([]analysis.Variation, 0, len(paths))
	for _, p := range paths {
		cfg, err := config.Load(p)
		if err != nil {
			fail(fmt.Errorf("%s: %w", p, err))
		}
		ship, err := cfg.Ship.ToModel()
		if err != nil {
			fail(fmt.Errorf("%s: %w", p, err))
		}
		res, err := engine.Compute(ship, catalog.Thrusters, catalog.Batteries, catalog.Containers)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %s: %v\n", p, err)
			continue
		}
		name := ship.Name
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		}
		variations = append(variations, analysis.Variation{Name: name, Ship: ship, Result: res})
	}

	ranked := analysis.RankVariations(variations)
	fmt.Printf("%-4s %-18s %-10s %-12s %-12s %-10s %-10s\n", "rank", "ship", "thrusters", "thrust kg", "battery kg", "power MW", "endurance")
	for _, r := range ranked {
		fmt.Printf(
			"%-4d %-18s %-10d %-12.0f %-12.0f %-10.2f %-10.2f\n",
			r.Rank,
			r.Name,
			r.ThrusterCount,
			r.ThrusterMassKg,
			r.Result.BatteryBank.MassKg,
			r.Result.TotalPowerW/1e6,
			r.Result.BatteryBank.EnduranceHours,
		)
	}
}

func cmdCatalog(args []string) {
	fs := flag.NewFlagSet("catalog", flag.ExitOnError)
	catalogPath := fs.String("catalog", "", "Optional catalog file (YAML or JSON)")
	gridFlag := fs.String("grid", "", "Optional grid size filter: small or large")
	_ = fs.Parse(args)

	catalog, err := data.LoadCatalogOrDefault(*catalogPath)
	if err != nil {
		fail(err)
	}
	var grid model.GridSize
	if *gridFlag != "" {
		if grid, err = model.ParseGridSize(*gridFlag); err != nil {
			fail(err)
		}
	}

	fmt.Printf("%-6s %-28s %-12s %-6s %-10s %-12s %-10s\n", "grid", "thruster", "family", "block", "mass kg", "thrust kN", "power MW")
	for _, t := range catalog.Thrusters {
		if grid != "" && t.Grid != grid {
			continue
		}
		fmt.Printf("%-6s %-28s %-12s %-6s %-10.0f %-12.1f %-10.2f\n", t.Grid, t.Name, t.Family, t.Block, t.MassKg, t.ThrustN/1e3, t.PowerW/1e6)
	}

	fmt.Printf("\n%-28s %-6s %-8s %-8s %-10s %-8s\n", "battery", "block", "MWh", "MW", "mass kg", "m3")
	for _, b := range catalog.Batteries {
		fmt.Printf("%-28s %-6s %-8.2f %-8.2f %-10.0f %-8.3f\n", b.Name, b.Block, b.CapacityMWh, b.MaxOutputMW, b.MassKg, b.VolumeM3)
	}

	fmt.Printf("\n%-6s %-28s %-8s %-10s %-10s\n", "grid", "container", "class", "mass kg", "volume L")
	for _, ct := range catalog.Containers {
		if grid != "" && ct.Grid != grid {
			continue
		}
		fmt.Printf("%-6s %-28s %-8s %-10.0f %-10.0f\n", ct.Grid, ct.Name, ct.Class, ct.EmptyMassKg, ct.VolumeL)
	}
}

func splitPaths(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func ensureDir(path string) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
