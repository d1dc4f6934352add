package planner

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"thrust-planner/internal/model"
)

// ExportVersion tags the export document layout.
const ExportVersion = "1.0"

// ExportDocument is the file shape written by the exporter.
type ExportDocument struct {
	Version       string                   `json:"version"`
	ExportedAt    time.Time                `json:"exported_at"`
	Configuration model.ShipConfiguration  `json:"configuration"`
	Result        *model.CalculationResult `json:"result"`
	Report        string                   `json:"report"`
}

func NewExport(ship model.ShipConfiguration, r *model.CalculationResult, at time.Time) ExportDocument {
	return ExportDocument{
		Version:       ExportVersion,
		ExportedAt:    at.UTC(),
		Configuration: ship,
		Result:        r,
		Report:        RenderReport(r),
	}
}

func EncodeExport(w io.Writer, doc ExportDocument) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func WriteExportJSON(path string, doc ExportDocument) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeExport(f, doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
