package planner

import (
	"errors"
	"math"
	"testing"

	"thrust-planner/internal/model"
)

func TestSelectCombinationStages(t *testing.T) {
	big := hydrogen("Big", model.BlockLarge, 1000)
	little := hydrogen("Little", model.BlockSmall, 100)

	cases := []struct {
		name     string
		cands    []model.ThrusterSpec
		required float64
		want     string
	}{
		{"single large", []model.ThrusterSpec{big, little}, 500, "1x Big"},
		{"single smallest surplus", []model.ThrusterSpec{big, little}, 50, "1x Little"},
		{"hybrid large plus small", []model.ThrusterSpec{big, little}, 1040, "1x Big + 2x Little"},
		{"large anchored", []model.ThrusterSpec{big, little}, 1280, "1x Big + 5x Little"},
		{"strongest repeated", []model.ThrusterSpec{big, little}, 3000, "4x Big"},
		{"only small blocks", []model.ThrusterSpec{little}, 250, "3x Little"},
		{"zero requirement", []model.ThrusterSpec{big, little}, 0, "1x Little"},
	}

	e := New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			combo, err := e.SelectCombination(tc.cands, tc.required, 0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := combo.String(); got != tc.want {
				t.Fatalf("combination=%q want %q", got, tc.want)
			}
			if eff := combo.EffectiveThrustN(0); eff < tc.required*SafetyFactor {
				t.Fatalf("effective thrust %v below target %v", eff, tc.required*SafetyFactor)
			}
		})
	}
}

func TestHybridPrefersFewerUnitsThenSurplus(t *testing.T) {
	big := hydrogen("Big", model.BlockLarge, 1000)
	mid := hydrogen("Mid", model.BlockSmall, 600)

	// 1 Big + 1 Mid and 2 Mid both take two units; 2 Mid wastes less.
	combo, err := New().SelectCombination([]model.ThrusterSpec{big, mid}, 1000, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := combo.String(); got != "2x Mid" {
		t.Fatalf("combination=%q want %q", got, "2x Mid")
	}
}

func TestHybridBoundsAreConfigurable(t *testing.T) {
	big := hydrogen("Big", model.BlockLarge, 1000)
	little := hydrogen("Little", model.BlockSmall, 100)
	cands := []model.ThrusterSpec{big, little}

	// 2 Big covers the 1419 N target with two units once two large blocks
	// are allowed; the default bounds fall through to the large anchor.
	wide := NewWithOptions(Options{Hybrid: HybridSearch{MaxLarge: 2, MaxSmall: 4}})
	combo, err := wide.SelectCombination(cands, 1290, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := combo.String(); got != "2x Big" {
		t.Fatalf("wide search combination=%q", got)
	}

	combo, err = New().SelectCombination(cands, 1290, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := combo.String(); got != "1x Big + 5x Little" {
		t.Fatalf("default search combination=%q", got)
	}
}

func TestNewWithOptionsClampsNegativeBounds(t *testing.T) {
	e := NewWithOptions(Options{Hybrid: HybridSearch{MaxLarge: -1, MaxSmall: -3}})
	if got := e.Options().Hybrid; got != (HybridSearch{}) {
		t.Fatalf("hybrid=%+v want zero bounds", got)
	}
}

func TestSelectCombinationErrors(t *testing.T) {
	e := New()
	if _, err := e.SelectCombination(nil, 100, 1); !errors.Is(err, ErrNoCandidates) {
		t.Fatalf("want ErrNoCandidates, got %v", err)
	}

	atmo := model.ThrusterSpec{
		Name:    "Atmo",
		Family:  model.FamilyAtmospheric,
		Block:   model.BlockSmall,
		Grid:    model.GridSmall,
		ThrustN: 96000,
		Curve:   &model.EfficiencyCurve{Min: 0, Max: 1},
	}
	if _, err := e.SelectCombination([]model.ThrusterSpec{atmo}, 100, 0); !errors.Is(err, ErrNoEffectiveThrust) {
		t.Fatalf("want ErrNoEffectiveThrust, got %v", err)
	}
	for _, density := range []float64{1e-12, 1e-20, 5e-324} {
		if _, err := e.SelectCombination([]model.ThrusterSpec{atmo}, 1e6, density); !errors.Is(err, ErrTooManyUnits) {
			t.Fatalf("density=%v: want ErrTooManyUnits, got %v", density, err)
		}
	}
	for _, required := range []float64{1e30, math.Inf(1), math.NaN()} {
		if _, err := e.SelectCombination([]model.ThrusterSpec{atmo}, required, 1); !errors.Is(err, ErrTooManyUnits) {
			t.Fatalf("required=%v: want ErrTooManyUnits, got %v", required, err)
		}
	}

	big := hydrogen("Big", model.BlockLarge, 1e6)
	little := hydrogen("Little", model.BlockSmall, 1e-3)
	if _, err := e.SelectCombination([]model.ThrusterSpec{big, little}, 1e6, 1); !errors.Is(err, ErrTooManyUnits) {
		t.Fatalf("large anchor: want ErrTooManyUnits, got %v", err)
	}
}

func TestUnitsToCover(t *testing.T) {
	tests := []struct {
		need, per float64
		limit     int
		want      int
		ok        bool
	}{
		{need: 0, per: 10, limit: 5, want: 1, ok: true},
		{need: -4, per: 10, limit: 5, want: 1, ok: true},
		{need: 30, per: 10, limit: 5, want: 3, ok: true},
		{need: 31, per: 10, limit: 5, want: 4, ok: true},
		{need: 50, per: 10, limit: 5, want: 5, ok: true},
		{need: 51, per: 10, limit: 5, ok: false},
		{need: 1, per: 1e-300, limit: MaxUnitsPerAxis, ok: false},
		{need: math.Inf(1), per: 10, limit: MaxUnitsPerAxis, ok: false},
		{need: math.NaN(), per: 10, limit: MaxUnitsPerAxis, ok: false},
	}
	for _, tt := range tests {
		got, ok := unitsToCover(tt.need, tt.per, tt.limit)
		if ok != tt.ok || got != tt.want {
			t.Errorf("unitsToCover(%v, %v, %d) = %d, %v want %d, %v", tt.need, tt.per, tt.limit, got, ok, tt.want, tt.ok)
		}
		if ok && float64(got)*tt.per < tt.need {
			t.Errorf("unitsToCover(%v, %v): %d units fall short", tt.need, tt.per, got)
		}
	}
}

func TestSelectCombinationMeetsSafetyTarget(t *testing.T) {
	cands := []model.ThrusterSpec{
		{Name: "Large Atmo", Family: model.FamilyAtmospheric, Block: model.BlockLarge, ThrustN: 576000, Curve: &model.EfficiencyCurve{Min: 0.2, Max: 1}},
		{Name: "Atmo", Family: model.FamilyAtmospheric, Block: model.BlockSmall, ThrustN: 96000, Curve: &model.EfficiencyCurve{Min: 0.2, Max: 1}},
		{Name: "Large Ion", Family: model.FamilyIon, Block: model.BlockLarge, ThrustN: 172800},
		{Name: "Ion", Family: model.FamilyIon, Block: model.BlockSmall, ThrustN: 14400},
	}
	e := New()
	for _, density := range []float64{0, 0.25, 0.5, 1, 1.2} {
		for required := 0.0; required <= 5e6; required += 7919 {
			combo, err := e.SelectCombination(cands, required, density)
			if err != nil {
				t.Fatalf("density=%v required=%v: %v", density, required, err)
			}
			if got := combo.EffectiveThrustN(density); got < required*SafetyFactor {
				t.Fatalf("density=%v required=%v: effective %v below target", density, required, got)
			}
			for _, entry := range combo.Entries {
				if entry.Count < 1 {
					t.Fatalf("density=%v required=%v: non-positive count in %s", density, required, combo)
				}
			}
		}
	}
}
