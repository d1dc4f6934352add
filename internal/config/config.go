package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"thrust-planner/internal/model"

	"gopkg.in/yaml.v3"
)

const (
	defaultGravity       = "earth"
	defaultAtmosphere    = "normal"
	defaultMultiplier    = "realistic"
	defaultMarginPercent = 100.0
	defaultEndurance     = 1.0
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load the ship from a separate YAML (e.g. examples/ships/*.yaml).
	// If both ShipFile and Ship are provided, Ship overrides ShipFile.
	ShipFile string `yaml:"ship_file"`
	// Optional: block catalog file. Empty means the embedded default catalog.
	CatalogFile string     `yaml:"catalog_file"`
	Ship        ShipConfig `yaml:"ship"`
}

// ShipConfig is the form-shaped ship description. Environment values can be
// given as preset names or as explicit numbers; numbers win.
type ShipConfig struct {
	Name              string         `yaml:"name" json:"name,omitempty"`
	GridSize          string         `yaml:"grid_size" json:"grid_size"`
	BaseMassKg        *float64       `yaml:"base_mass_kg" json:"base_mass_kg"`
	Gravity           string         `yaml:"gravity" json:"gravity,omitempty"`
	GravityFactor     *float64       `yaml:"gravity_factor" json:"gravity_factor,omitempty"`
	Atmosphere        string         `yaml:"atmosphere" json:"atmosphere,omitempty"`
	AtmosphereDensity *float64       `yaml:"atmosphere_density" json:"atmosphere_density,omitempty"`
	Multiplier        string         `yaml:"multiplier" json:"multiplier,omitempty"`
	CargoMultiplier   float64        `yaml:"cargo_multiplier" json:"cargo_multiplier,omitempty"`
	VehicleClass      string         `yaml:"vehicle_class" json:"vehicle_class,omitempty"`
	MarginPercent     float64        `yaml:"margin_percent" json:"margin_percent,omitempty"`
	EnduranceHours    float64        `yaml:"endurance_hours" json:"endurance_hours,omitempty"`
	Containers        map[string]int `yaml:"containers" json:"containers,omitempty"`
	FillContainers    bool           `yaml:"fill_containers" json:"fill_containers,omitempty"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.ShipFile != "" {
		loaded, err := loadShipFile(resolveRelative(path, c.ShipFile))
		if err != nil {
			return nil, err
		}
		c.Ship = MergeShip(loaded, c.Ship)
	}
	if c.CatalogFile != "" {
		c.CatalogFile = resolveRelative(path, c.CatalogFile)
	}
	return &c, nil
}

// resolveRelative prefers interpreting rel relative to the config file
// directory, but falls back to the provided path (relative to cwd) if that
// doesn't exist.
func resolveRelative(configPath, rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	cand := filepath.Join(filepath.Dir(configPath), rel)
	if _, err := os.Stat(cand); err == nil {
		return cand
	}
	return rel
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if _, err := c.Ship.ToModel(); err != nil {
		return fmt.Errorf("ship config invalid: %w", err)
	}
	return nil
}

// ToModel resolves presets and defaults and validates the result.
func (s ShipConfig) ToModel() (model.ShipConfiguration, error) {
	if s.BaseMassKg == nil {
		return model.ShipConfiguration{}, &model.InvalidInputError{Field: "base_mass_kg", Reason: "is required"}
	}
	grid, err := model.ParseGridSize(s.GridSize)
	if err != nil {
		return model.ShipConfiguration{}, &model.InvalidInputError{Field: "grid_size", Reason: err.Error()}
	}
	vehicleName := s.VehicleClass
	if vehicleName == "" {
		vehicleName = string(model.VehicleAtmospheric)
	}
	vehicle, err := model.ParseVehicleClass(vehicleName)
	if err != nil {
		return model.ShipConfiguration{}, &model.InvalidInputError{Field: "vehicle_class", Reason: err.Error()}
	}

	gravity, err := resolve(s.GravityFactor, s.Gravity, defaultGravity, Gravity)
	if err != nil {
		return model.ShipConfiguration{}, &model.InvalidInputError{Field: "gravity", Reason: err.Error()}
	}
	atmosphere, err := resolve(s.AtmosphereDensity, s.Atmosphere, defaultAtmosphere, Atmosphere)
	if err != nil {
		return model.ShipConfiguration{}, &model.InvalidInputError{Field: "atmosphere", Reason: err.Error()}
	}
	var multiplier float64
	if s.CargoMultiplier != 0 {
		multiplier = s.CargoMultiplier
	} else {
		multiplier, err = resolve(nil, s.Multiplier, defaultMultiplier, Multiplier)
		if err != nil {
			return model.ShipConfiguration{}, &model.InvalidInputError{Field: "multiplier", Reason: err.Error()}
		}
	}

	margin := s.MarginPercent
	if margin == 0 {
		margin = defaultMarginPercent
	}
	endurance := s.EnduranceHours
	if endurance == 0 {
		endurance = defaultEndurance
	}

	var containers map[model.ContainerClass]int
	if len(s.Containers) > 0 {
		containers = make(map[model.ContainerClass]int, len(s.Containers))
		for class, n := range s.Containers {
			containers[model.ContainerClass(class)] = n
		}
	}

	ship := model.ShipConfiguration{
		Name:              s.Name,
		Grid:              grid,
		BaseMassKg:        *s.BaseMassKg,
		Gravity:           gravity,
		AtmosphereDensity: atmosphere,
		CargoMultiplier:   multiplier,
		Vehicle:           vehicle,
		MarginPercent:     margin,
		EnduranceHours:    endurance,
		Containers:        containers,
		FillContainers:    s.FillContainers,
	}
	if err := ship.Validate(); err != nil {
		return model.ShipConfiguration{}, err
	}
	return ship, nil
}

func resolve(explicit *float64, name, def string, lookup func(string) (float64, error)) (float64, error) {
	if explicit != nil {
		return *explicit, nil
	}
	if name == "" {
		name = def
	}
	return lookup(name)
}

type shipFileWrapper struct {
	Ship ShipConfig `yaml:"ship"`
}

func loadShipFile(path string) (ShipConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ShipConfig{}, err
	}
	var w shipFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return ShipConfig{}, err
	}
	return w.Ship, nil
}

// MergeShip overlays non-zero fields from override onto base.
// This is used when loading a ship file and then applying overrides from the
// config or a request variation.
func MergeShip(base, override ShipConfig) ShipConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.GridSize != "" {
		out.GridSize = override.GridSize
	}
	if override.BaseMassKg != nil {
		out.BaseMassKg = override.BaseMassKg
	}
	if override.Gravity != "" {
		out.Gravity = override.Gravity
		out.GravityFactor = nil
	}
	if override.GravityFactor != nil {
		out.GravityFactor = override.GravityFactor
	}
	if override.Atmosphere != "" {
		out.Atmosphere = override.Atmosphere
		out.AtmosphereDensity = nil
	}
	if override.AtmosphereDensity != nil {
		out.AtmosphereDensity = override.AtmosphereDensity
	}
	if override.Multiplier != "" {
		out.Multiplier = override.Multiplier
		out.CargoMultiplier = 0
	}
	if override.CargoMultiplier != 0 {
		out.CargoMultiplier = override.CargoMultiplier
	}
	if override.VehicleClass != "" {
		out.VehicleClass = override.VehicleClass
	}
	if override.MarginPercent != 0 {
		out.MarginPercent = override.MarginPercent
	}
	if override.EnduranceHours != 0 {
		out.EnduranceHours = override.EnduranceHours
	}
	if len(override.Containers) > 0 {
		merged := make(map[string]int, len(base.Containers)+len(override.Containers))
		for k, v := range base.Containers {
			merged[k] = v
		}
		for k, v := range override.Containers {
			merged[k] = v
		}
		out.Containers = merged
	}
	// A bool cannot say "unset"; an override can only switch filling on.
	if override.FillContainers {
		out.FillContainers = true
	}
	return out
}
