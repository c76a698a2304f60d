package model

import "time"

// CardInfo records a card issued during a completed game.
type CardInfo struct {
	Type         string `json:"type" bson:"type"`
	Team         string `json:"team" bson:"team"`
	PlayerNumber int    `json:"player_number" bson:"player_number"`
	MinuteGiven  int    `json:"minute_given" bson:"minute_given"`
	Reason       string `json:"reason" bson:"reason"`
}

// GameResult is the optional outcome of a completed game.
type GameResult struct {
	HomeTeamScore *int       `json:"home_team_score" bson:"home_team_score,omitempty"`
	AwayTeamScore *int       `json:"away_team_score" bson:"away_team_score,omitempty"`
	CardsIssued   []CardInfo `json:"cards_issued" bson:"cards_issued,omitempty"`
}

type Game struct {
	ID                  string      `json:"id" bson:"_id"`
	League              string      `json:"league" bson:"league"`
	Venue               string      `json:"venue" bson:"venue"`
	HomeTeam            string      `json:"home_team" bson:"home_team"`
	AwayTeam            string      `json:"away_team" bson:"away_team"`
	Level               string      `json:"level" bson:"level"`
	HalvesLengthMinutes int         `json:"halves_length_minutes" bson:"halves_length_minutes"`
	GameCompleted       bool        `json:"game_completed" bson:"game_completed"`
	Result              *GameResult `json:"result" bson:"result,omitempty"`
	ScheduledTime       time.Time   `json:"scheduled_time" bson:"scheduled_time"`
	CreatedAt           time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at" bson:"updated_at"`
}

type CreateGameRequest struct {
	League              string    `json:"league"`
	Venue               string    `json:"venue"`
	HomeTeam            string    `json:"home_team"`
	AwayTeam            string    `json:"away_team"`
	Level               string    `json:"level"`
	HalvesLengthMinutes int       `json:"halves_length_minutes"`
	ScheduledTime       time.Time `json:"scheduled_time"`
}

// UpdateGameRequest carries a partial game update; nil fields are left
// untouched.
type UpdateGameRequest struct {
	League              *string     `json:"league"`
	Venue               *string     `json:"venue"`
	HomeTeam            *string     `json:"home_team"`
	AwayTeam            *string     `json:"away_team"`
	Level               *string     `json:"level"`
	HalvesLengthMinutes *int        `json:"halves_length_minutes"`
	ScheduledTime       *time.Time  `json:"scheduled_time"`
	GameCompleted       *bool       `json:"game_completed"`
	Result              *GameResult `json:"result"`
}

// GameFilter narrows a game lookup. Zero-value fields are ignored.
type GameFilter struct {
	GameID        string
	League        string
	Venue         string
	HomeTeam      string
	AwayTeam      string
	Level         string
	GameCompleted *bool
}
