package data

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"thrust-planner/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Catalog is the read-only block data handed to the engine.
type Catalog struct {
	Thrusters  []model.ThrusterSpec       `yaml:"thrusters" json:"thrusters"`
	Batteries  []model.BatterySpec        `yaml:"batteries" json:"batteries"`
	Containers []model.CargoContainerSpec `yaml:"containers" json:"containers"`
}

// DefaultCatalog parses the embedded catalog. Every call returns a fresh copy.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalogYAML(defaultCatalogYAML)
}

// LoadCatalog reads a catalog file. Files ending in .json are decoded as
// JSON, everything else as YAML.
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		var c Catalog
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", path, err)
		}
		return &c, nil
	}
	c, err := ParseCatalogYAML(raw)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return c, nil
}

func ParseCatalogYAML(raw []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadCatalogOrDefault loads path when set, otherwise the embedded catalog.
func LoadCatalogOrDefault(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}
	return LoadCatalog(path)
}

// Validate checks entries and that every grid size and vehicle class pair
// has vertical and lateral candidates.
func (c *Catalog) Validate() error {
	if c == nil {
		return errors.New("catalog is nil")
	}
	seen := map[string]bool{}
	for i, t := range c.Thrusters {
		key := string(t.Grid) + "/" + t.Name
		switch {
		case t.Name == "":
			return fmt.Errorf("thrusters[%d]: name is required", i)
		case seen[key]:
			return fmt.Errorf("thrusters[%d]: duplicate %s grid thruster %q", i, t.Grid, t.Name)
		case t.ThrustN <= 0:
			return fmt.Errorf("thruster %q: thrust_n must be > 0", t.Name)
		case t.MassKg < 0 || t.PowerW < 0 || t.FuelRateLps < 0:
			return fmt.Errorf("thruster %q: mass, power and fuel rate must be >= 0", t.Name)
		case t.Block != model.BlockSmall && t.Block != model.BlockLarge:
			return fmt.Errorf("thruster %q: unknown block %q", t.Name, t.Block)
		}
		if _, err := model.ParseGridSize(string(t.Grid)); err != nil {
			return fmt.Errorf("thruster %q: %w", t.Name, err)
		}
		if cv := t.Curve; cv != nil && (cv.Min < 0 || cv.Max > 1 || cv.Min > cv.Max) {
			return fmt.Errorf("thruster %q: curve must satisfy 0<=min<=max<=1", t.Name)
		}
		seen[key] = true
	}
	for _, b := range c.Batteries {
		if b.CapacityMWh <= 0 {
			return fmt.Errorf("battery %q: capacity_mwh must be > 0", b.Name)
		}
		if b.MassKg < 0 || b.VolumeM3 < 0 || b.RechargeMinutes < 0 {
			return fmt.Errorf("battery %q: mass, volume and recharge must be >= 0", b.Name)
		}
	}
	if _, err := model.PairBatteries(c.Batteries); err != nil {
		return err
	}
	for _, ct := range c.Containers {
		if ct.EmptyMassKg < 0 || ct.VolumeL < 0 {
			return fmt.Errorf("container %q: mass and volume must be >= 0", ct.Name)
		}
	}
	for _, grid := range []model.GridSize{model.GridSmall, model.GridLarge} {
		for _, v := range []model.VehicleClass{model.VehicleAtmospheric, model.VehicleInterplanetary} {
			if !c.covers(grid, v, false) || !c.covers(grid, v, true) {
				return fmt.Errorf("catalog has no thrusters for grid=%s vehicle=%s", grid, v)
			}
		}
	}
	return nil
}

func (c *Catalog) covers(grid model.GridSize, v model.VehicleClass, lateral bool) bool {
	for _, t := range c.Thrusters {
		if t.Grid != grid || !v.Allows(t.Family) {
			continue
		}
		if lateral && (t.Family != v.LateralFamily() || t.Block != model.BlockSmall) {
			continue
		}
		return true
	}
	return false
}
