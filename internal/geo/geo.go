// Package geo converts between normalized board coordinates and geometry
// points. Persisted slot positions are stored as WKB points so they survive
// storage backends with no spatial awareness and can be re-read with the
// inherent Scan function during migrations.
package geo

import (
	"errors"
	"strconv"
	"strings"

	geom "github.com/peterstace/simplefeatures/geom"
)

// ErrInvalidCoordinates is returned when a coordinate string cannot be parsed.
var ErrInvalidCoordinates = errors.New("invalid coordinates provided")

// PointFromXY builds a 2D point from normalized board coordinates.
func PointFromXY(x, y float64) geom.Point {
	return geom.NewPoint(geom.Coordinates{
		XY:   geom.XY{X: x, Y: y},
		Type: geom.DimXY,
	})
}

// XYFromPoint extracts normalized board coordinates from a stored point.
// An empty point yields the origin.
func XYFromPoint(p geom.Point) (x, y float64) {
	coord, ok := p.Coordinates()
	if !ok {
		return 0, 0
	}
	return coord.XY.X, coord.XY.Y
}

// ParseXY parses an "x,y" string into normalized board coordinates. Used by
// the CLI to accept scripted move operations.
func ParseXY(coords string) (x, y float64, err error) {
	parts := strings.Split(coords, ",")
	if len(parts) != 2 {
		return 0, 0, ErrInvalidCoordinates
	}
	x, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, ErrInvalidCoordinates
	}
	y, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, ErrInvalidCoordinates
	}
	return x, y, nil
}
