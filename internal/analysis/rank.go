package analysis

import (
	"sort"

	"thrust-planner/internal/model"
)

// Variation is one named ship configuration and its computed result. ID is
// the stored calculation it came from, when there is one.
type Variation struct {
	ID     string
	Name   string
	Ship   model.ShipConfiguration
	Result *model.CalculationResult
}

type RankedVariation struct {
	Variation
	Rank             int
	ThrusterCount    int
	ThrusterMassKg   float64
	PropulsionMassKg float64 // thrusters + battery bank
}

// RankVariations orders variations by propulsion mass (thrusters plus
// battery bank), then total power draw, then name. Variations without a
// result are dropped.
func RankVariations(vs []Variation) []RankedVariation {
	out := make([]RankedVariation, 0, len(vs))
	for _, v := range vs {
		if v.Result == nil {
			continue
		}
		r := RankedVariation{Variation: v}
		for _, a := range v.Result.Axes {
			r.ThrusterCount += a.Combination.TotalCount()
			r.ThrusterMassKg += a.Combination.MassKg()
		}
		r.PropulsionMassKg = r.ThrusterMassKg + v.Result.BatteryBank.MassKg
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.PropulsionMassKg != b.PropulsionMassKg {
			return a.PropulsionMassKg < b.PropulsionMassKg
		}
		if a.Result.TotalPowerW != b.Result.TotalPowerW {
			return a.Result.TotalPowerW < b.Result.TotalPowerW
		}
		return a.Name < b.Name
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
