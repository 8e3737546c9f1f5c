// pkg/core/formation.go
package core

// PositionSlot is a named position in a formation. Coordinates are normalized
// percentages of the playing surface bounding box (0-100 on both axes), not
// pixels, so the model is independent of any rendering size.
type PositionSlot struct {
	X     float64 // 0-100, across the surface width
	Y     float64 // 0-100, along the surface length (0 = own end)
	Role  string  // position abbreviation, e.g. "CB", "PG"
	Label string
}

// FormationDefinition is a named, ordered set of position slots belonging to
// exactly one sport. Slot order is stable and is the join key used to align
// roster entries to positions.
type FormationDefinition struct {
	ID          string
	Sport       Sport
	DisplayName string
	Description string
	Slots       []PositionSlot
}
