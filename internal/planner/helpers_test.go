package planner

import "thrust-planner/internal/model"

func hydrogen(name string, block model.BlockSize, thrustN float64) model.ThrusterSpec {
	return model.ThrusterSpec{
		Name:    name,
		Family:  model.FamilyHydrogen,
		Block:   block,
		Grid:    model.GridSmall,
		MassKg:  thrustN / 100,
		ThrustN: thrustN,
	}
}

func testShip() model.ShipConfiguration {
	return model.ShipConfiguration{
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

func testContainers() []model.CargoContainerSpec {
	return []model.CargoContainerSpec{
		{Name: "Small Cargo Container", Grid: model.GridSmall, Class: model.ContainerSmall, EmptyMassKg: 93, VolumeL: 125},
		{Name: "Medium Cargo Container", Grid: model.GridSmall, Class: model.ContainerMedium, EmptyMassKg: 412, VolumeL: 3375},
		{Name: "Large Cargo Container", Grid: model.GridLarge, Class: model.ContainerLarge, EmptyMassKg: 2627, VolumeL: 421875},
	}
}

func defaultPair() model.BatteryPair {
	return model.BatteryPair{
		Small: model.BatterySpec{Name: "Small Battery", Block: model.BlockSmall, CapacityMWh: 1, MassKg: 1040, VolumeM3: 1.953, RechargeMinutes: 18.75},
		Large: model.BatterySpec{Name: "Large Battery", Block: model.BlockLarge, CapacityMWh: 3, MassKg: 3120, VolumeM3: 15.625, RechargeMinutes: 18.75},
	}
}
