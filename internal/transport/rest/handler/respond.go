package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"leagueops/internal/client"
	"leagueops/internal/repository"
	"leagueops/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// writeServiceError is the single boundary where failure variants become
// HTTP status codes. Remote rejections pass status and detail through
// verbatim; transport failures surface a generic message so client
// internals never leak.
func writeServiceError(w http.ResponseWriter, err error) {
	var remote *client.RemoteError
	if errors.As(err, &remote) {
		writeDetail(w, remote.StatusCode, remote.Detail)
		return
	}

	var unavailable *client.UnavailableError
	if errors.As(err, &unavailable) {
		writeDetail(w, http.StatusInternalServerError, "Error communicating with the "+unavailable.Service)
		return
	}

	switch {
	case errors.Is(err, repository.ErrDuplicateGameID):
		writeDetail(w, http.StatusConflict, "Duplicate game_id")
	case errors.Is(err, repository.ErrDuplicateUser):
		writeDetail(w, http.StatusConflict, "Duplicate username or email")
	case errors.Is(err, service.ErrNotFound):
		writeDetail(w, http.StatusNotFound, err.Error())
	default:
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
	}
}
