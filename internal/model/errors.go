package model

import (
	"fmt"
	"strings"
)

// InvalidInputError is returned before any computation when the ship
// configuration cannot be used.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

// NoThrusterAvailableError means the catalog has no usable candidate for an
// axis. The catalog must cover every grid size and vehicle class pair.
type NoThrusterAvailableError struct {
	Axis    Axis
	Grid    GridSize
	Vehicle VehicleClass
	Reason  string
}

func (e *NoThrusterAvailableError) Error() string {
	msg := fmt.Sprintf("no thruster available for %s axis (grid=%s vehicle=%s)", e.Axis, e.Grid, e.Vehicle)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// IncompleteBatteryCatalogError means the battery catalog lacks a small or a
// large unit.
type IncompleteBatteryCatalogError struct {
	Missing []BlockSize
}

func (e *IncompleteBatteryCatalogError) Error() string {
	parts := make([]string, 0, len(e.Missing))
	for _, m := range e.Missing {
		parts = append(parts, string(m))
	}
	return "battery catalog missing " + strings.Join(parts, " and ") + " battery"
}
