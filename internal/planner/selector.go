package planner

import (
	"errors"
	"fmt"
	"math"

	"thrust-planner/internal/model"
)

const (
	// SafetyFactor is applied to every axis requirement before searching.
	SafetyFactor = 1.1

	// largeAnchorShare is how much of the demand one large block must cover
	// before it is used as the anchor of a large+small fallback.
	largeAnchorShare = 0.7

	// MaxUnitsPerAxis caps the thruster count of one axis combination.
	MaxUnitsPerAxis = 10000
)

var (
	ErrNoCandidates      = errors.New("no eligible thrusters in catalog")
	ErrNoEffectiveThrust = errors.New("no eligible thruster produces thrust at this atmosphere density")
	ErrTooManyUnits      = fmt.Errorf("demand needs more than %d thrusters on one axis", MaxUnitsPerAxis)
)

// HybridSearch bounds the large/small mixes tried when no single block is
// enough on its own.
type HybridSearch struct {
	MaxLarge int
	MaxSmall int
}

// DefaultHybridSearch covers the 1 large + 2 small and 0 large + 4 small
// mixes and everything between.
func DefaultHybridSearch() HybridSearch {
	return HybridSearch{MaxLarge: 1, MaxSmall: 4}
}

type scoredThruster struct {
	spec      model.ThrusterSpec
	effective float64
}

// SelectCombination picks thruster blocks whose effective thrust covers
// requiredN × SafetyFactor. Stages, first match wins:
//  1. the single block with the smallest surplus
//  2. the fewest-unit large/small mix within the hybrid search bounds
//  3. one large block covering at least 70% plus enough small blocks
//  4. as many of the strongest block as needed
func (e *Engine) SelectCombination(cands []model.ThrusterSpec, requiredN, density float64) (model.ThrusterCombination, error) {
	if len(cands) == 0 {
		return model.ThrusterCombination{}, ErrNoCandidates
	}
	target := requiredN * SafetyFactor
	if math.IsNaN(target) || math.IsInf(target, 0) {
		return model.ThrusterCombination{}, ErrTooManyUnits
	}

	scored := make([]scoredThruster, 0, len(cands))
	for _, c := range cands {
		scored = append(scored, scoredThruster{spec: c, effective: c.EffectiveThrustN(density)})
	}

	if combo, ok := closestSingle(scored, target); ok {
		return combo, nil
	}

	large, haveLarge := strongest(scored, model.BlockLarge)
	small, haveSmall := strongest(scored, model.BlockSmall)

	if haveLarge && haveSmall {
		if combo, ok := e.opts.Hybrid.search(large, small, target); ok {
			return combo, nil
		}
	}

	if haveLarge && haveSmall && small.effective > 0 && large.effective >= largeAnchorShare*target {
		n, ok := unitsToCover(target-large.effective, small.effective, MaxUnitsPerAxis-1)
		if !ok {
			return model.ThrusterCombination{}, ErrTooManyUnits
		}
		return combination(large, 1, small, n), nil
	}

	best, _ := strongest(scored, "")
	if best.effective <= 0 {
		return model.ThrusterCombination{}, ErrNoEffectiveThrust
	}
	n, ok := unitsToCover(target, best.effective, MaxUnitsPerAxis)
	if !ok {
		return model.ThrusterCombination{}, ErrTooManyUnits
	}
	return model.ThrusterCombination{Entries: []model.ThrusterCount{{Thruster: best.spec, Count: n}}}, nil
}

func closestSingle(scored []scoredThruster, target float64) (model.ThrusterCombination, bool) {
	bestIdx := -1
	bestSurplus := math.Inf(1)
	for i, s := range scored {
		if s.effective < target {
			continue
		}
		if surplus := s.effective - target; surplus < bestSurplus {
			bestIdx, bestSurplus = i, surplus
		}
	}
	if bestIdx < 0 {
		return model.ThrusterCombination{}, false
	}
	return model.ThrusterCombination{Entries: []model.ThrusterCount{{Thruster: scored[bestIdx].spec, Count: 1}}}, true
}

// strongest returns the highest effective thrust entry of the given block
// size, or of any size when block is empty. Ties keep catalog order.
func strongest(scored []scoredThruster, block model.BlockSize) (scoredThruster, bool) {
	var best scoredThruster
	found := false
	for _, s := range scored {
		if block != "" && s.spec.Block != block {
			continue
		}
		if !found || s.effective > best.effective {
			best, found = s, true
		}
	}
	return best, found
}

func (h HybridSearch) search(large, small scoredThruster, target float64) (model.ThrusterCombination, bool) {
	bestL, bestS := -1, -1
	bestSurplus := 0.0
	for l := 0; l <= h.MaxLarge; l++ {
		for s := 0; s <= h.MaxSmall; s++ {
			units := l + s
			if units == 0 {
				continue
			}
			total := float64(l)*large.effective + float64(s)*small.effective
			if total < target {
				continue
			}
			surplus := total - target
			if bestL >= 0 {
				bestUnits := bestL + bestS
				switch {
				case units > bestUnits:
					continue
				case units == bestUnits && surplus > bestSurplus:
					continue
				case units == bestUnits && surplus == bestSurplus && l >= bestL:
					continue
				}
			}
			bestL, bestS, bestSurplus = l, s, surplus
		}
	}
	if bestL < 0 {
		return model.ThrusterCombination{}, false
	}
	return combination(large, bestL, small, bestS), true
}

// combination lists the large entry first and drops zero counts.
func combination(large scoredThruster, nLarge int, small scoredThruster, nSmall int) model.ThrusterCombination {
	var c model.ThrusterCombination
	if nLarge > 0 {
		c.Entries = append(c.Entries, model.ThrusterCount{Thruster: large.spec, Count: nLarge})
	}
	if nSmall > 0 {
		c.Entries = append(c.Entries, model.ThrusterCount{Thruster: small.spec, Count: nSmall})
	}
	return c
}

// unitsToCover returns the smallest n >= 1 with n*per >= need, or false when
// that takes more than limit units. The count is checked as a float before
// conversion so huge ratios cannot overflow int.
func unitsToCover(need, per float64, limit int) (int, bool) {
	x := math.Ceil(need / per)
	if math.IsNaN(x) || x > float64(limit) {
		return 0, false
	}
	n := int(x)
	if n < 1 {
		n = 1
	}
	// Ceil of a rounded quotient can land one short.
	for float64(n)*per < need {
		if n++; n > limit {
			return 0, false
		}
	}
	return n, true
}
