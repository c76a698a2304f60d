package handler

import (
	"encoding/json"
	"net/http"

	"leagueops/internal/model"
	"leagueops/internal/service"

	"github.com/gorilla/mux"
)

// UserHandler handles the user-service endpoints. The cache coordinator
// lives inside UserService; the handler only shapes requests and responses.
type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Create handles POST /users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	switch {
	case !req.Status.Valid():
		writeDetail(w, http.StatusBadRequest, "Invalid status: "+string(req.Status))
	case req.FirstName == "":
		writeDetail(w, http.StatusBadRequest, "Missing first_name")
	case req.LastName == "":
		writeDetail(w, http.StatusBadRequest, "Missing last_name")
	case req.Username == "":
		writeDetail(w, http.StatusBadRequest, "Missing username")
	case req.Email == "":
		writeDetail(w, http.StatusBadRequest, "Missing email")
	default:
		user, err := h.users.Create(r.Context(), &req)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, user)
	}
}

// List handles GET /users with optional user_id, status, username and
// email filters.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := model.UserFilter{
		UserID:   query.Get("user_id"),
		Status:   model.UserStatus(query.Get("status")),
		Username: query.Get("username"),
		Email:    query.Get("email"),
	}

	users, err := h.users.Find(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// Update handles PUT /users/{user_id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["user_id"]

	var req model.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Status != nil && !req.Status.Valid() {
		writeDetail(w, http.StatusBadRequest, "Invalid status: "+string(*req.Status))
		return
	}

	user, err := h.users.Update(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Delete handles DELETE /users/{user_id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["user_id"]

	if err := h.users.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
