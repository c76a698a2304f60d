package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"leagueops/internal/client"
	"leagueops/internal/model"
	"leagueops/internal/repository"
)

type fakeGameAPI struct {
	games       map[string]*model.Game
	unavailable bool
	calls       int
	health      model.DependencyHealth
}

func (f *fakeGameAPI) GetGame(ctx context.Context, id string) (*model.Game, error) {
	f.calls++
	if f.unavailable {
		return nil, &client.UnavailableError{Service: "game service", Err: errors.New("connection refused")}
	}
	if game, ok := f.games[id]; ok {
		return game, nil
	}
	return nil, &client.RemoteError{
		Service:    "game service",
		StatusCode: http.StatusNotFound,
		Detail:     "No game(s) found with properties map[game_id:" + id + "]",
	}
}

func (f *fakeGameAPI) Health(ctx context.Context) model.DependencyHealth {
	return f.health
}

type fakeUserAPI struct {
	users           map[string]*model.User
	officialQueried []string
	profileQueried  []string
	health          model.DependencyHealth
}

func (f *fakeUserAPI) GetOfficial(ctx context.Context, id string) (*model.User, error) {
	f.officialQueried = append(f.officialQueried, id)
	if user, ok := f.users[id]; ok && user.Status == model.StatusOfficial {
		return user, nil
	}
	return nil, &client.RemoteError{
		Service:    "user service",
		StatusCode: http.StatusNotFound,
		Detail:     "No user(s) found with properties map[status:Official user_id:" + id + "]",
	}
}

func (f *fakeUserAPI) GetUser(ctx context.Context, id string) (*model.User, error) {
	f.profileQueried = append(f.profileQueried, id)
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, &client.RemoteError{
		Service:    "user service",
		StatusCode: http.StatusNotFound,
		Detail:     "No user(s) found with properties map[user_id:" + id + "]",
	}
}

func (f *fakeUserAPI) Health(ctx context.Context) model.DependencyHealth {
	return f.health
}

type fakeAssignmentRepo struct {
	byID        map[string]*model.Assignment
	createCalls int
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{byID: make(map[string]*model.Assignment)}
}

func (f *fakeAssignmentRepo) EnsureIndexes(ctx context.Context) error {
	return nil
}

func (f *fakeAssignmentRepo) Create(ctx context.Context, assignment *model.Assignment) error {
	f.createCalls++
	for _, existing := range f.byID {
		if existing.GameID == assignment.GameID {
			return repository.ErrDuplicateGameID
		}
	}
	stored := *assignment
	f.byID[assignment.ID] = &stored
	return nil
}

func (f *fakeAssignmentRepo) Find(ctx context.Context, filter model.AssignmentFilter) ([]model.Assignment, error) {
	var out []model.Assignment
	for _, a := range f.byID {
		if filter.AssignmentID != "" && a.ID != filter.AssignmentID {
			continue
		}
		if filter.GameID != "" && a.GameID != filter.GameID {
			continue
		}
		if filter.RefereeID != "" && !hasReferee(a, filter.RefereeID) {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAssignmentRepo) UpdateReferees(ctx context.Context, id string, referees []model.Referee, updatedAt time.Time) (*model.Assignment, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	a.Referees = referees
	a.UpdatedAt = updatedAt
	updated := *a
	return &updated, nil
}

func (f *fakeAssignmentRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := f.byID[id]; !ok {
		return false, nil
	}
	delete(f.byID, id)
	return true, nil
}

func hasReferee(a *model.Assignment, refereeID string) bool {
	for _, referee := range a.Referees {
		if referee.RefereeID == refereeID {
			return true
		}
	}
	return false
}

type fakeUserRepo struct {
	byID      map[string]*model.User
	disabled  bool // simulates a store outage
	findCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*model.User)}
}

var errStoreDisabled = errors.New("store disabled")

func (f *fakeUserRepo) EnsureIndexes(ctx context.Context) error {
	return nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	if f.disabled {
		return errStoreDisabled
	}
	stored := *user
	f.byID[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) Find(ctx context.Context, filter model.UserFilter) ([]model.User, error) {
	f.findCalls++
	if f.disabled {
		return nil, errStoreDisabled
	}
	var out []model.User
	for _, u := range f.byID {
		if filter.UserID != "" && u.ID != filter.UserID {
			continue
		}
		if filter.Status != "" && u.Status != filter.Status {
			continue
		}
		if filter.Username != "" && u.Username != filter.Username {
			continue
		}
		if filter.Email != "" && u.Email != filter.Email {
			continue
		}
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, id string, update *model.UpdateUserRequest, updatedAt time.Time) (*model.User, error) {
	if f.disabled {
		return nil, errStoreDisabled
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	if update.Status != nil {
		u.Status = *update.Status
	}
	if update.FirstName != nil {
		u.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		u.LastName = *update.LastName
	}
	if update.Username != nil {
		u.Username = *update.Username
	}
	if update.Email != nil {
		u.Email = *update.Email
	}
	u.UpdatedAt = updatedAt
	updated := *u
	return &updated, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) (bool, error) {
	if f.disabled {
		return false, errStoreDisabled
	}
	if _, ok := f.byID[id]; !ok {
		return false, nil
	}
	delete(f.byID, id)
	return true, nil
}

type fakeUserCache struct {
	entries  map[string]*model.User
	fail     bool // simulates an unreachable cache backend
	getCalls int
}

func newFakeUserCache() *fakeUserCache {
	return &fakeUserCache{entries: make(map[string]*model.User)}
}

var errCacheDown = errors.New("cache down")

func (f *fakeUserCache) Get(ctx context.Context, id string) (*model.User, error) {
	f.getCalls++
	if f.fail {
		return nil, errCacheDown
	}
	if user, ok := f.entries[id]; ok {
		cached := *user
		return &cached, nil
	}
	return nil, nil
}

func (f *fakeUserCache) Set(ctx context.Context, user *model.User) error {
	if f.fail {
		return errCacheDown
	}
	cached := *user
	f.entries[user.ID] = &cached
	return nil
}

func (f *fakeUserCache) Delete(ctx context.Context, id string) error {
	if f.fail {
		return errCacheDown
	}
	delete(f.entries, id)
	return nil
}
