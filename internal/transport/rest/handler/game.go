package handler

import (
	"encoding/json"
	"net/http"

	"leagueops/internal/model"
	"leagueops/internal/service"

	"github.com/gorilla/mux"
)

// GameHandler handles the game-service endpoints.
type GameHandler struct {
	games *service.GameService
}

func NewGameHandler(games *service.GameService) *GameHandler {
	return &GameHandler{games: games}
}

// Create handles POST /games.
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	switch {
	case req.League == "":
		writeDetail(w, http.StatusBadRequest, "Missing league")
	case req.Venue == "":
		writeDetail(w, http.StatusBadRequest, "Missing venue")
	case req.HomeTeam == "":
		writeDetail(w, http.StatusBadRequest, "Missing home_team")
	case req.AwayTeam == "":
		writeDetail(w, http.StatusBadRequest, "Missing away_team")
	case req.Level == "":
		writeDetail(w, http.StatusBadRequest, "Missing level")
	case req.ScheduledTime.IsZero():
		writeDetail(w, http.StatusBadRequest, "Missing scheduled_time")
	case req.HalvesLengthMinutes < 0 || req.HalvesLengthMinutes > 45:
		writeDetail(w, http.StatusBadRequest, "halves_length_minutes must be between 1 and 45")
	default:
		game, err := h.games.Create(r.Context(), &req)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, game)
	}
}

// List handles GET /games with optional filters.
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := model.GameFilter{
		GameID:   query.Get("game_id"),
		League:   query.Get("league"),
		Venue:    query.Get("venue"),
		HomeTeam: query.Get("home_team"),
		AwayTeam: query.Get("away_team"),
		Level:    query.Get("level"),
	}
	if completed := query.Get("game_completed"); completed != "" {
		value := completed == "true"
		filter.GameCompleted = &value
	}

	games, err := h.games.Find(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, games)
}

// Update handles PUT /games/{game_id}.
func (h *GameHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["game_id"]

	var req model.UpdateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.HalvesLengthMinutes != nil && (*req.HalvesLengthMinutes < 1 || *req.HalvesLengthMinutes > 45) {
		writeDetail(w, http.StatusBadRequest, "halves_length_minutes must be between 1 and 45")
		return
	}

	game, err := h.games.Update(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, game)
}

// Delete handles DELETE /games/{game_id}.
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["game_id"]

	if err := h.games.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
