package model

// BatterySpec defines the physical parameters of one battery block.
// Units:
// - CapacityMWh: MWh
// - MaxOutputMW: MW
// - MassKg: kg
// - VolumeM3: m³
// - RechargeMinutes: minutes from empty to full
type BatterySpec struct {
	Name            string    `yaml:"name" json:"name"`
	Block           BlockSize `yaml:"block" json:"block"`
	CapacityMWh     float64   `yaml:"capacity_mwh" json:"capacity_mwh"`
	MaxOutputMW     float64   `yaml:"max_output_mw" json:"max_output_mw"`
	MassKg          float64   `yaml:"mass_kg" json:"mass_kg"`
	VolumeM3        float64   `yaml:"volume_m3" json:"volume_m3"`
	RechargeMinutes float64   `yaml:"recharge_minutes" json:"recharge_minutes"`
}

// BatteryPair is the small/large battery couple the bank selector needs.
type BatteryPair struct {
	Small BatterySpec
	Large BatterySpec
}

// PairBatteries picks the first small and first large battery from the
// catalog. Both must exist.
func PairBatteries(catalog []BatterySpec) (BatteryPair, error) {
	var pair BatteryPair
	var haveSmall, haveLarge bool
	for _, b := range catalog {
		switch b.Block {
		case BlockSmall:
			if !haveSmall && b.CapacityMWh > 0 {
				pair.Small, haveSmall = b, true
			}
		case BlockLarge:
			if !haveLarge && b.CapacityMWh > 0 {
				pair.Large, haveLarge = b, true
			}
		}
	}
	var missing []BlockSize
	if !haveSmall {
		missing = append(missing, BlockSmall)
	}
	if !haveLarge {
		missing = append(missing, BlockLarge)
	}
	if len(missing) > 0 {
		return BatteryPair{}, &IncompleteBatteryCatalogError{Missing: missing}
	}
	return pair, nil
}
