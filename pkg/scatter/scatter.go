// Package scatter maps parsed status values to scatter chart geometry: one
// point per record with the record index on x, the payload on y and a color
// chosen by status.
package scatter

import (
	"github.com/iwvelando/status-plot/pkg/constants"
	"github.com/iwvelando/status-plot/pkg/mathutil"
	"github.com/iwvelando/status-plot/pkg/statuslog"
)

// RenderConfig holds the non-data chart parameters, in pixels.
type RenderConfig struct {
	Width  int
	Height int
	// Margin is applied uniformly to all four sides.
	Margin int
	// Radius is the point radius.
	Radius int
}

// DefaultRenderConfig returns a 640x480 chart with a 15px margin and 2px points.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:  constants.DefaultWidth,
		Height: constants.DefaultHeight,
		Margin: constants.DefaultMargin,
		Radius: constants.DefaultRadius,
	}
}

// Color is the fill color of a point.
type Color uint8

const (
	Red Color = iota
	Blue
	Green
	Black
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	case Green:
		return "green"
	case Black:
		return "black"
	default:
		return "unknown"
	}
}

// ColorFor returns the fixed color of a status.
func ColorFor(status statuslog.Status) Color {
	switch status {
	case statuslog.Linear:
		return Blue
	case statuslog.Integer:
		return Green
	case statuslog.Timeout:
		return Black
	default:
		return Red
	}
}

// Point is one filled scatter point.
type Point struct {
	X      float64
	Y      float64
	Color  Color
	Status statuslog.Status
}

// Geometry is everything a renderer needs to draw the chart.
type Geometry struct {
	Points []Point
	// XMax is the exclusive upper bound of the x-axis, equal to the record count.
	XMax float64
	// YMax is the largest payload scaled by the headroom multiplier.
	YMax   float64
	Config RenderConfig
}

// BuildGeometry maps records to points in input order. records must not be
// empty for the result to be drawable; an empty input gives a geometry with
// no points and zero bounds.
func BuildGeometry(records []statuslog.StatusValue, cfg RenderConfig) Geometry {
	g := Geometry{
		Points: make([]Point, 0, len(records)),
		XMax:   float64(len(records)),
		Config: cfg,
	}

	var maxValue float64
	for i, record := range records {
		if i == 0 {
			maxValue = record.Value
		} else {
			maxValue = mathutil.Max(maxValue, record.Value)
		}
		g.Points = append(g.Points, Point{
			X:      float64(i),
			Y:      record.Value,
			Color:  ColorFor(record.Status),
			Status: record.Status,
		})
	}
	g.YMax = maxValue * constants.HeadroomMultiplier
	return g
}
