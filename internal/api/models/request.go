package models

import "thrust-planner/internal/config"

// CalculateRequest represents the request body for one calculation
type CalculateRequest struct {
	Ship    config.ShipConfig `json:"ship"`
	Options CalculateOptions  `json:"options,omitempty"`
}

// CalculateOptions controls optional response sections
type CalculateOptions struct {
	IncludeReport     bool `json:"include_report,omitempty"`     // default: false
	IncludeCandidates bool `json:"include_candidates,omitempty"` // battery options that lost
}

// CompareRequest represents a request to compare variations of one ship.
// Variation names must be unique; at most 20 variations per request.
type CompareRequest struct {
	Base       config.ShipConfig `json:"base"`
	Variations []ShipVariation   `json:"variations" binding:"required,min=1,max=20,dive"`
}

// ShipVariation overlays non-zero fields onto the base ship
type ShipVariation struct {
	Name string            `json:"name" binding:"required"`
	Ship config.ShipConfig `json:"ship"`
}

// LiveRequest is the payload of an inbound "calculate" socket message
type LiveRequest struct {
	Ship config.ShipConfig `json:"ship"`
}
