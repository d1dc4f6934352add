package model

// Axis is one of the five independent thrust directions.
// Keep these values stable; they are intended for CSV and JSON output.
type Axis string

const (
	AxisVertical Axis = "vertical"
	AxisFront    Axis = "front"
	AxisRear     Axis = "rear"
	AxisLeft     Axis = "left"
	AxisRight    Axis = "right"
)

// Axes lists every axis in report order.
func Axes() []Axis {
	return []Axis{AxisVertical, AxisFront, AxisRear, AxisLeft, AxisRight}
}

// IsLateral reports whether candidates for the axis are restricted to the
// vehicle's lateral thruster family.
func (a Axis) IsLateral() bool {
	switch a {
	case AxisLeft, AxisRight:
		return true
	default:
		return false
	}
}

func (a Axis) Label() string {
	switch a {
	case AxisVertical:
		return "Vertical"
	case AxisFront:
		return "Front"
	case AxisRear:
		return "Rear"
	case AxisLeft:
		return "Left"
	case AxisRight:
		return "Right"
	default:
		return string(a)
	}
}
