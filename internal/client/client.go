package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"leagueops/internal/metrics"
	"leagueops/internal/model"
)

const defaultTimeout = 5 * time.Second

// GameAPI is the game-service surface the assignment service consumes.
type GameAPI interface {
	GetGame(ctx context.Context, gameID string) (*model.Game, error)
	Health(ctx context.Context) model.DependencyHealth
}

// UserAPI is the user-service surface the assignment service consumes.
// GetOfficial filters by status=Official and is used by validation;
// GetUser fetches by id alone and is used by the full-details read.
type UserAPI interface {
	GetOfficial(ctx context.Context, userID string) (*model.User, error)
	GetUser(ctx context.Context, userID string) (*model.User, error)
	Health(ctx context.Context) model.DependencyHealth
}

type httpService struct {
	name    string
	baseURL string
	http    *http.Client
}

type gameClient struct {
	httpService
}

type userClient struct {
	httpService
}

func NewGameClient(baseURL string) GameAPI {
	return &gameClient{httpService{
		name:    "game service",
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}}
}

func NewUserClient(baseURL string) UserAPI {
	return &userClient{httpService{
		name:    "user service",
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}}
}

func (c *gameClient) GetGame(ctx context.Context, gameID string) (*model.Game, error) {
	var games []model.Game
	if err := c.getJSON(ctx, "/games?game_id="+url.QueryEscape(gameID), &games); err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, &UnavailableError{Service: c.name, Err: errEmptyResult}
	}
	return &games[0], nil
}

func (c *userClient) GetOfficial(ctx context.Context, userID string) (*model.User, error) {
	return c.getUser(ctx, "/users?user_id="+url.QueryEscape(userID)+"&status=Official")
}

func (c *userClient) GetUser(ctx context.Context, userID string) (*model.User, error) {
	return c.getUser(ctx, "/users?user_id="+url.QueryEscape(userID))
}

func (c *userClient) getUser(ctx context.Context, path string) (*model.User, error) {
	var users []model.User
	if err := c.getJSON(ctx, path, &users); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, &UnavailableError{Service: c.name, Err: errEmptyResult}
	}
	return &users[0], nil
}

// getJSON issues a single GET and decodes the success body into out. A
// non-200 response becomes a RemoteError carrying the remote detail
// verbatim; anything transport-level becomes an UnavailableError.
func (s *httpService) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return &UnavailableError{Service: s.name, Err: err}
	}

	resp, err := s.http.Do(req)
	if err != nil {
		metrics.DependencyRequest(s.name, metrics.OutcomeUnavailable)
		return &UnavailableError{Service: s.name, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.DependencyRequest(s.name, metrics.OutcomeRejected)
		return &RemoteError{
			Service:    s.name,
			StatusCode: resp.StatusCode,
			Detail:     remoteDetail(resp.Body, s.name),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.DependencyRequest(s.name, metrics.OutcomeUnavailable)
		return &UnavailableError{Service: s.name, Err: err}
	}

	metrics.DependencyRequest(s.name, metrics.OutcomeOK)
	return nil
}

// Health issues one bounded probe and measures it end to end. Only an
// exact 200 counts as healthy.
func (s *httpService) Health(ctx context.Context) model.DependencyHealth {
	start := time.Now()
	status := model.HealthStatusUnhealthy

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/health", nil)
	if err == nil {
		resp, doErr := s.http.Do(req)
		if doErr == nil {
			if resp.StatusCode == http.StatusOK {
				status = model.HealthStatusHealthy
			}
			resp.Body.Close()
		}
	}

	return model.DependencyHealth{
		Status:         status,
		ResponseTimeMS: float64(time.Since(start).Microseconds()) / 1000.0,
	}
}

type detailPayload struct {
	Detail string `json:"detail"`
}

func remoteDetail(body io.Reader, service string) string {
	var payload detailPayload
	if err := json.NewDecoder(body).Decode(&payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}
	return "Error from " + service
}
