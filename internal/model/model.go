package model

import (
	"time"

	geom "github.com/peterstace/simplefeatures/geom"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DatabaseModels lists every struct here that represents a table in the
// database schema. Passed to AutoMigrate on startup.
var DatabaseModels = []interface{}{
	&Team{},
	&RosterEntry{},
	&Tactic{},
	&TacticPosition{},
}

// Team is the owning team for rosters and tactics. Team administration lives
// elsewhere; this subsystem only reads teams to anchor foreign keys.
type Team struct {
	gorm.Model
	Name    string `json:"name" gorm:"size:127"`
	Sport   string `json:"sport" gorm:"size:32;index:idx_team_sport"`
	CoachID uint   `json:"coachId" gorm:"index:idx_team_coach_id"`
}

func (*Team) TableName() string {
	return "teams"
}

// RosterEntry is one player on a team's squad list. RosterOrder defines the
// positional slot mapping used when seeding a formation.
type RosterEntry struct {
	gorm.Model
	TeamID       uint   `json:"teamId" gorm:"index:idx_roster_team_id"`
	Team         Team   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignkey:TeamID;"`
	DisplayName  string `json:"displayName" gorm:"size:64"`
	JerseyNumber int    `json:"jerseyNumber"`
	RosterOrder  int    `json:"rosterOrder" gorm:"index:idx_roster_order"`
}

func (*RosterEntry) TableName() string {
	return "roster_entries"
}

// Tactic is the persisted tactic document. Mutated only by full re-save; the
// position rows are replaced wholesale on every save.
type Tactic struct {
	gorm.Model
	CoachID     uint   `json:"coachId" gorm:"index:idx_tactic_coach_id"`
	TeamID      uint   `json:"teamId" gorm:"index:idx_tactic_team_id"`
	Team        Team   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignkey:TeamID;"`
	Sport       string `json:"sport" gorm:"size:32"`
	Name        string `json:"name" gorm:"size:127"`
	Formation   string `json:"formation" gorm:"size:64"`
	Description string `json:"description" gorm:"size:255"`

	PlayStyle      string `json:"playStyle" gorm:"size:32"`
	DefensiveShape string `json:"defensiveShape" gorm:"size:32"`
	PressType      string `json:"pressType" gorm:"size:32"`
	TempoStyle     string `json:"tempoStyle" gorm:"size:32"`
	BuildUpPlay    string `json:"buildUpPlay" gorm:"size:32"`
	AttackingWidth string `json:"attackingWidth" gorm:"size:32"`
	DefensiveLine  string `json:"defensiveLine" gorm:"size:32"`
	Notes          string `json:"notes" gorm:"size:2000"`

	PlayerPositions []TacticPosition `json:"playerPositions" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`

	IsDefault bool `json:"isDefault" gorm:"default:false"`
}

func (*Tactic) TableName() string {
	return "tactics"
}

// TacticPosition is one persisted slot of a tactic. Position holds the
// normalized coordinates as a 2D point; Occupant is the player snapshot at
// save time as JSON, so later roster changes cannot rewrite saved layouts.
type TacticPosition struct {
	ID        uint           `json:"id" gorm:"primarykey;autoIncrement;"`
	TacticID  uint           `json:"tacticId" gorm:"index:idx_tacticposition_tactic_id"`
	SlotIndex int            `json:"slotIndex" gorm:"index:idx_tacticposition_slot_index"`
	Occupant  datatypes.JSON `json:"occupant"`
	Position  geom.Point     `json:"position"`
	CreatedAt time.Time      `json:"createdAt"`
}

func (*TacticPosition) TableName() string {
	return "tactic_positions"
}
