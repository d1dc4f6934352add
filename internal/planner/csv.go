package planner

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"thrust-planner/internal/model"
)

func WriteAxesCSV(path string, r *model.CalculationResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return EncodeAxesCSV(f, r)
}

// EncodeAxesCSV writes one row per axis.
func EncodeAxesCSV(out io.Writer, r *model.CalculationResult) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	header := []string{
		"axis",
		"required_thrust_n",
		"effective_thrust_n",
		"combination",
		"units",
		"power_w",
		"thruster_mass_kg",
		"max_speed_mps",
		"braking_time_s",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, a := range r.Axes {
		row := []string{
			string(a.Axis),
			fmtFloat(a.RequiredThrustN),
			fmtFloat(a.EffectiveThrustN),
			a.Combination.String(),
			strconv.Itoa(a.Combination.TotalCount()),
			fmtFloat(a.Combination.PowerW()),
			fmtFloat(a.Combination.MassKg()),
			fmtFloat(a.MaxSpeedMps),
			fmtFloat(a.BrakingTimeS),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
