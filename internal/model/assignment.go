package model

import "time"

// Position is one of the eight on-field referee roles.
type Position string

const (
	PositionCenter Position = "Center"
	PositionAR1    Position = "AR1"
	PositionAR2    Position = "AR2"
	PositionFourth Position = "Fourth"
	PositionVAR    Position = "VAR"
	PositionAVAR   Position = "AVAR"
	PositionAAR1   Position = "AAR1"
	PositionAAR2   Position = "AAR2"
)

var validPositions = map[Position]bool{
	PositionCenter: true,
	PositionAR1:    true,
	PositionAR2:    true,
	PositionFourth: true,
	PositionVAR:    true,
	PositionAVAR:   true,
	PositionAAR1:   true,
	PositionAAR2:   true,
}

func (p Position) Valid() bool {
	return validPositions[p]
}

// Referee is a weak reference to a user plus the role they fill in one
// assignment. The assignment never embeds remote user state.
type Referee struct {
	RefereeID string   `json:"referee_id" bson:"referee_id"`
	Position  Position `json:"position" bson:"position"`
}

// Assignment binds exactly one game to a set of referees. game_id is unique
// across assignments and immutable after creation.
type Assignment struct {
	ID         string    `json:"id" bson:"_id"`
	GameID     string    `json:"game_id" bson:"game_id"`
	Referees   []Referee `json:"referees" bson:"referees,omitempty"`
	AssignedAt time.Time `json:"assigned_at" bson:"assigned_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}

type CreateAssignmentRequest struct {
	GameID   string    `json:"game_id"`
	Referees []Referee `json:"referees,omitempty"`
}

type UpdateAssignmentRequest struct {
	Referees []Referee `json:"referees"`
}

// AssignmentFilter narrows an assignment lookup. Zero-value fields are
// ignored.
type AssignmentFilter struct {
	AssignmentID string
	GameID       string
	RefereeID    string
}

// RefereeDetail is a remote user profile stitched with the assignment-scoped
// position, as returned by the full-details read.
type RefereeDetail struct {
	User
	Position Position `json:"position"`
}

// FullDetails is the aggregated cross-service view of one assignment.
type FullDetails struct {
	AssignmentID string          `json:"assignment_id"`
	Game         *Game           `json:"game"`
	Referees     []RefereeDetail `json:"referees"`
}
