package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"leagueops/internal/model"
)

func TestGetGameSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/games" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("game_id"); got != "g1" {
			t.Errorf("expected game_id=g1, got %q", got)
		}
		json.NewEncoder(w).Encode([]model.Game{{ID: "g1", League: "Premier"}})
	}))
	defer srv.Close()

	game, err := NewGameClient(srv.URL).GetGame(context.Background(), "g1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if game.ID != "g1" || game.League != "Premier" {
		t.Errorf("unexpected game: %+v", game)
	}
}

func TestGetGamePassThroughError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "No game(s) found with properties map[game_id:missing]"})
	}))
	defer srv.Close()

	_, err := NewGameClient(srv.URL).GetGame(context.Background(), "missing")

	var remote *RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
	if remote.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", remote.StatusCode)
	}
	if remote.Detail != "No game(s) found with properties map[game_id:missing]" {
		t.Errorf("detail not passed through verbatim: %q", remote.Detail)
	}
}

func TestGetGameTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // unreachable on purpose

	_, err := NewGameClient(srv.URL).GetGame(context.Background(), "g1")

	var unavailable *UnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected UnavailableError, got %v", err)
	}
	var remote *RemoteError
	if errors.As(err, &remote) {
		t.Error("transport failure must never become a pass-through error")
	}
}

func TestGetGameEmptyListIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]model.Game{})
	}))
	defer srv.Close()

	_, err := NewGameClient(srv.URL).GetGame(context.Background(), "g1")

	var unavailable *UnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected UnavailableError for empty 200 body, got %v", err)
	}
}

func TestGetOfficialAddsStatusFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("status"); got != "Official" {
			t.Errorf("expected status=Official, got %q", got)
		}
		if got := r.URL.Query().Get("user_id"); got != "u1" {
			t.Errorf("expected user_id=u1, got %q", got)
		}
		json.NewEncoder(w).Encode([]model.User{{ID: "u1", Status: model.StatusOfficial}})
	}))
	defer srv.Close()

	user, err := NewUserClient(srv.URL).GetOfficial(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "u1" {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestGetUserOmitsStatusFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("status") {
			t.Error("profile fetch must not re-check Official status")
		}
		json.NewEncoder(w).Encode([]model.User{{ID: "u1", Status: model.StatusNonOfficial}})
	}))
	defer srv.Close()

	user, err := NewUserClient(srv.URL).GetUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Status != model.StatusNonOfficial {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestHealthHealthyOnlyOnExact200(t *testing.T) {
	cases := []struct {
		name   string
		status int
		want   string
	}{
		{"ok", http.StatusOK, model.HealthStatusHealthy},
		{"accepted", http.StatusAccepted, model.HealthStatusUnhealthy},
		{"server error", http.StatusInternalServerError, model.HealthStatusUnhealthy},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer srv.Close()

			health := NewGameClient(srv.URL).Health(context.Background())
			if health.Status != tc.want {
				t.Errorf("status %d: expected %q, got %q", tc.status, tc.want, health.Status)
			}
			if health.ResponseTimeMS < 0 {
				t.Errorf("negative response time %f", health.ResponseTimeMS)
			}
		})
	}
}

func TestHealthUnreachableIsUnhealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	health := NewGameClient(srv.URL).Health(context.Background())
	if health.Status != model.HealthStatusUnhealthy {
		t.Errorf("expected unhealthy, got %q", health.Status)
	}
}
