// pkg/core/sport.go
package core

// Sport identifies one of the supported sports.
type Sport string

// Supported sports. The catalog carries a config for every one of these;
// passing anything else to a catalog lookup is a programming error.
const (
	SportFootball    Sport = "football"
	SportFutsal      Sport = "futsal"
	SportBasketball  Sport = "basketball"
	SportVolleyball  Sport = "volleyball"
	SportHandball    Sport = "handball"
	SportRugby       Sport = "rugby"
	SportFieldHockey Sport = "field_hockey"
	SportIceHockey   Sport = "ice_hockey"
	SportCricket     Sport = "cricket"
	SportBaseball    Sport = "baseball"
	SportTennis      Sport = "tennis"
	SportNetball     Sport = "netball"
)

// SurfaceKind classifies the playing surface geometry used to render a sport.
type SurfaceKind string

const (
	SurfaceRectangle SurfaceKind = "rectangle"
	SurfaceOval      SurfaceKind = "oval"
	SurfaceCourt     SurfaceKind = "court"
	SurfaceDiamond   SurfaceKind = "diamond"
)

// SportConfig is the static per-sport configuration. Built once at startup,
// never mutated.
type SportConfig struct {
	Sport         Sport
	DisplayName   string
	IconGlyph     string
	Surface       SurfaceKind
	PrimaryStat   string
	SecondaryStat string
	TeamSize      int // starting lineup size, equals formation slot count
}
