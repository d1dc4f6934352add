package planner

import (
	"math"

	"thrust-planner/internal/model"
)

const (
	// largeOnlyCaution oversizes the large-only bank.
	largeOnlyCaution = 1.1

	// largeDominanceShare: a large-only bank lighter than this share of the
	// small-only bank is taken regardless of waste.
	largeDominanceShare = 0.7

	// DischargeEfficiency models losses when the bank feeds the thrusters.
	DischargeEfficiency = 0.85

	// MaxBankUnits caps the battery count of any bank option.
	MaxBankUnits = 100000
)

// bankGenerator produces the unit counts for one named option.
type bankGenerator struct {
	option model.BankOption
	counts func(energyMWh float64, pair model.BatteryPair) (large, small int)
}

// bankGenerators is ranked: on equal score the earlier option wins.
func bankGenerators() []bankGenerator {
	return []bankGenerator{
		{option: model.BankSmallOnly, counts: func(e float64, p model.BatteryPair) (int, int) {
			return 0, ceilCount(e / p.Small.CapacityMWh)
		}},
		{option: model.BankLargeOnly, counts: func(e float64, p model.BatteryPair) (int, int) {
			return ceilCount(e * largeOnlyCaution / p.Large.CapacityMWh), 0
		}},
		{option: model.BankMixed, counts: func(e float64, p model.BatteryPair) (int, int) {
			large := floorCount(e / p.Large.CapacityMWh)
			remaining := e - float64(large)*p.Large.CapacityMWh
			return large, ceilCount(remaining / p.Small.CapacityMWh)
		}},
	}
}

// selectionRule returns the index of the chosen candidate, or false to defer
// to the next rule.
type selectionRule func(cands []model.BankCandidate) (int, bool)

// bankRules run in order; the last one always decides.
func bankRules() []selectionRule {
	return []selectionRule{largeDominates, lowestScore}
}

// EvaluateBankOptions runs every generator for the required energy. The
// result depends on energyMWh and the pair only.
func EvaluateBankOptions(energyMWh float64, pair model.BatteryPair) []model.BankCandidate {
	gens := bankGenerators()
	out := make([]model.BankCandidate, 0, len(gens))
	for _, g := range gens {
		large, small := g.counts(energyMWh, pair)
		c := model.BankCandidate{
			Option:     g.option,
			LargeCount: large,
			SmallCount: small,
			StorageMWh: float64(large)*pair.Large.CapacityMWh + float64(small)*pair.Small.CapacityMWh,
			MassKg:     float64(large)*pair.Large.MassKg + float64(small)*pair.Small.MassKg,
			VolumeM3:   float64(large)*pair.Large.VolumeM3 + float64(small)*pair.Small.VolumeM3,
		}
		if energyMWh > 0 {
			c.WasteRatio = (c.StorageMWh - energyMWh) / energyMWh
		}
		c.Score = c.WasteRatio*1000 + c.MassKg/1000
		out = append(out, c)
	}
	return out
}

// SelectBatteryBank evaluates the options and applies the selection rules.
// powerW is the total draw used to derive endurance.
func SelectBatteryBank(energyMWh, powerW float64, pair model.BatteryPair) model.BatteryBankSolution {
	cands := EvaluateBankOptions(energyMWh, pair)
	chosen := 0
	for _, rule := range bankRules() {
		if idx, ok := rule(cands); ok {
			chosen = idx
			break
		}
	}
	c := cands[chosen]

	bank := model.BatteryBankSolution{
		Option:     c.Option,
		LargeCount: c.LargeCount,
		SmallCount: c.SmallCount,
		StorageMWh: c.StorageMWh,
		MassKg:     c.MassKg,
		VolumeM3:   c.VolumeM3,
		Candidates: cands,
	}
	if c.LargeCount > 0 {
		bank.RechargeMinutes = math.Max(bank.RechargeMinutes, pair.Large.RechargeMinutes)
	}
	if c.SmallCount > 0 {
		bank.RechargeMinutes = math.Max(bank.RechargeMinutes, pair.Small.RechargeMinutes)
	}
	bank.EnduranceHours = Endurance(c.StorageMWh, powerW)
	return bank
}

// Endurance is how long storageMWh sustains powerW after discharge losses.
// No draw means no meaningful endurance and yields 0.
func Endurance(storageMWh, powerW float64) float64 {
	if powerW <= 0 {
		return 0
	}
	return storageMWh / ((powerW / 1e6) / DischargeEfficiency)
}

func largeDominates(cands []model.BankCandidate) (int, bool) {
	a, okA := findOption(cands, model.BankSmallOnly)
	b, okB := findOption(cands, model.BankLargeOnly)
	if !okA || !okB {
		return 0, false
	}
	if cands[b].MassKg < largeDominanceShare*cands[a].MassKg {
		return b, true
	}
	return 0, false
}

func lowestScore(cands []model.BankCandidate) (int, bool) {
	if len(cands) == 0 {
		return 0, false
	}
	best := 0
	for i := 1; i < len(cands); i++ {
		if cands[i].Score < cands[best].Score {
			best = i
		}
	}
	return best, true
}

func findOption(cands []model.BankCandidate, opt model.BankOption) (int, bool) {
	for i, c := range cands {
		if c.Option == opt {
			return i, true
		}
	}
	return 0, false
}

// ceilCount and floorCount clamp to [0, MaxBankUnits] before converting.
func ceilCount(x float64) int {
	if !(x > 0) {
		return 0
	}
	return int(math.Min(math.Ceil(x), MaxBankUnits))
}

func floorCount(x float64) int {
	if !(x > 0) {
		return 0
	}
	return int(math.Min(math.Floor(x), MaxBankUnits))
}
