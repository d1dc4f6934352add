package planner

import (
	"fmt"
	"strings"

	"thrust-planner/internal/model"
)

// RenderReport is the human-readable summary used for export. Output is a
// deterministic function of the result.
func RenderReport(r *model.CalculationResult) string {
	if r == nil {
		return ""
	}
	var b strings.Builder

	fmt.Fprintf(&b, "Overall required thrust: %s\n", formatNewtons(r.OverallRequiredThrustN))
	fmt.Fprintf(&b, "Total ship mass: %.0f kg\n", r.TotalMassKg)
	if r.Cargo.VolumeL > 0 {
		fmt.Fprintf(&b, "Cargo: %.0f L, empty %.0f kg, effective %.0f kg (max fill %.0f kg)\n",
			r.Cargo.VolumeL, r.Cargo.EmptyMassKg, r.Cargo.EffectiveMassKg, r.Cargo.MaxFillMassKg)
	}

	b.WriteString("\nThrusters\n")
	for _, a := range r.Axes {
		fmt.Fprintf(&b, "  %-8s %12s  %s\n", a.Axis.Label()+":", formatNewtons(a.RequiredThrustN), a.Combination)
		fmt.Fprintf(&b, "  %-8s max speed %.2f m/s, braking %.2f s\n", "", a.MaxSpeedMps, a.BrakingTimeS)
	}

	bank := r.BatteryBank
	b.WriteString("\nPower\n")
	fmt.Fprintf(&b, "  Consumption: %.2f MW\n", r.TotalPowerW/1e6)
	fmt.Fprintf(&b, "  Required energy: %.3f MWh\n", r.RequiredEnergyMWh)
	fmt.Fprintf(&b, "  Battery bank (%s): %d large + %d small\n", bank.Option, bank.LargeCount, bank.SmallCount)
	fmt.Fprintf(&b, "  Storage: %.3f MWh, mass %.0f kg, volume %.3f m3\n", bank.StorageMWh, bank.MassKg, bank.VolumeM3)
	fmt.Fprintf(&b, "  Recharge: %.0f min, endurance %.2f h\n", bank.RechargeMinutes, bank.EnduranceHours)

	return b.String()
}

func formatNewtons(n float64) string {
	switch {
	case n >= 1e6:
		return fmt.Sprintf("%.2f MN", n/1e6)
	case n >= 1e3:
		return fmt.Sprintf("%.2f kN", n/1e3)
	default:
		return fmt.Sprintf("%.0f N", n)
	}
}
