package handler

import (
	"encoding/json"
	"net/http"

	"leagueops/internal/model"
	"leagueops/internal/service"

	"github.com/gorilla/mux"
)

// AssignmentHandler handles the assignment-service endpoints.
type AssignmentHandler struct {
	assignments *service.AssignmentService
	aggregator  *service.Aggregator
}

func NewAssignmentHandler(assignments *service.AssignmentService, aggregator *service.Aggregator) *AssignmentHandler {
	return &AssignmentHandler{
		assignments: assignments,
		aggregator:  aggregator,
	}
}

// Create handles POST /assignments.
func (h *AssignmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.GameID == "" {
		writeDetail(w, http.StatusBadRequest, "Missing game_id")
		return
	}
	if detail, ok := checkReferees(req.Referees); !ok {
		writeDetail(w, http.StatusBadRequest, detail)
		return
	}

	assignment, err := h.assignments.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, assignment)
}

// List handles GET /assignments with optional assignment_id, game_id and
// referee_id filters.
func (h *AssignmentHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := model.AssignmentFilter{
		AssignmentID: query.Get("assignment_id"),
		GameID:       query.Get("game_id"),
		RefereeID:    query.Get("referee_id"),
	}

	assignments, err := h.assignments.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, assignments)
}

// Update handles PUT /assignments/{assignment_id}. Only the referee list
// is mutable; game_id is fixed at creation.
func (h *AssignmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["assignment_id"]

	var req model.UpdateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Referees == nil {
		writeDetail(w, http.StatusBadRequest, "Missing referees")
		return
	}
	if detail, ok := checkReferees(req.Referees); !ok {
		writeDetail(w, http.StatusBadRequest, detail)
		return
	}

	assignment, err := h.assignments.UpdateReferees(r.Context(), id, req.Referees)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, assignment)
}

// Delete handles DELETE /assignments/{assignment_id}.
func (h *AssignmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["assignment_id"]

	if err := h.assignments.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// FullDetails handles GET /assignments/full-details/{assignment_id}.
func (h *AssignmentHandler) FullDetails(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["assignment_id"]

	details, err := h.aggregator.FullDetails(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, details)
}

func checkReferees(referees []model.Referee) (string, bool) {
	for _, referee := range referees {
		if referee.RefereeID == "" {
			return "Missing referee_id", false
		}
		if !referee.Position.Valid() {
			return "Invalid referee position: " + string(referee.Position), false
		}
	}
	return "", true
}
