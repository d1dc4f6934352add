package model

// OreDensityKgPerL is the reference fill density (iron ore).
const OreDensityKgPerL = 7.8

// ContainerClass is the size class of a cargo container within a grid.
type ContainerClass string

const (
	ContainerSmall  ContainerClass = "small"
	ContainerMedium ContainerClass = "medium"
	ContainerLarge  ContainerClass = "large"
)

// CargoContainerSpec is one catalog entry.
// Units: EmptyMassKg kg, VolumeL litres.
type CargoContainerSpec struct {
	Name        string         `yaml:"name" json:"name"`
	Grid        GridSize       `yaml:"grid" json:"grid"`
	Class       ContainerClass `yaml:"class" json:"class"`
	EmptyMassKg float64        `yaml:"empty_mass_kg" json:"empty_mass_kg"`
	VolumeL     float64        `yaml:"volume_l" json:"volume_l"`
}

// CargoStats summarises the installed containers.
type CargoStats struct {
	EmptyMassKg     float64 `json:"empty_mass_kg"`
	VolumeL         float64 `json:"volume_l"`
	MaxFillMassKg   float64 `json:"max_fill_mass_kg"`
	EffectiveMassKg float64 `json:"effective_mass_kg"`
}
