package config

import (
	"fmt"
	"sort"
	"strings"
)

// Preset is a named environment or game-setting value offered by forms.
type Preset struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// GravityPresets lists surface gravity in g.
func GravityPresets() []Preset {
	return []Preset{
		{Name: "space", Value: 0},
		{Name: "moon", Value: 0.25},
		{Name: "titan", Value: 0.25},
		{Name: "europa", Value: 0.25},
		{Name: "mars", Value: 0.9},
		{Name: "earth", Value: 1.0},
		{Name: "triton", Value: 1.0},
		{Name: "alien", Value: 1.1},
		{Name: "pertam", Value: 1.2},
	}
}

// AtmospherePresets lists atmosphere density relative to the reference.
func AtmospherePresets() []Preset {
	return []Preset{
		{Name: "none", Value: 0},
		{Name: "thin", Value: 0.5},
		{Name: "normal", Value: 1.0},
		{Name: "dense", Value: 1.2},
	}
}

// MultiplierPresets lists world inventory multipliers.
func MultiplierPresets() []Preset {
	return []Preset{
		{Name: "realistic", Value: 1},
		{Name: "x3", Value: 3},
		{Name: "x5", Value: 5},
		{Name: "x10", Value: 10},
	}
}

func lookupPreset(kind string, presets []Preset, name string) (float64, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, p := range presets {
		if p.Name == key {
			return p.Value, nil
		}
	}
	names := make([]string, 0, len(presets))
	for _, p := range presets {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return 0, fmt.Errorf("unknown %s preset %q (want one of %s)", kind, name, strings.Join(names, ", "))
}

func Gravity(name string) (float64, error) {
	return lookupPreset("gravity", GravityPresets(), name)
}

func Atmosphere(name string) (float64, error) {
	return lookupPreset("atmosphere", AtmospherePresets(), name)
}

func Multiplier(name string) (float64, error) {
	return lookupPreset("multiplier", MultiplierPresets(), name)
}
