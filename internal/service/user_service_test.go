package service

import (
	"context"
	"errors"
	"testing"

	"leagueops/internal/model"

	"go.uber.org/zap"
)

func newUserFixture() (*UserService, *fakeUserRepo, *fakeUserCache) {
	repo := newFakeUserRepo()
	userCache := newFakeUserCache()
	svc := NewUserService(repo, userCache, zap.NewNop())
	return svc, repo, userCache
}

func createTestUser(t *testing.T, svc *UserService) *model.User {
	t.Helper()
	user, err := svc.Create(context.Background(), &model.CreateUserRequest{
		Status:    model.StatusOfficial,
		FirstName: "Ana",
		LastName:  "Silva",
		Username:  "asilva",
		Email:     "ana@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return user
}

// After a create, the single-id lookup must be served from the cache: the
// store is disabled and the read must still succeed.
func TestIDLookupServedFromCache(t *testing.T) {
	svc, repo, _ := newUserFixture()
	user := createTestUser(t, svc)

	repo.disabled = true

	found, err := svc.Find(context.Background(), model.UserFilter{UserID: user.ID})
	if err != nil {
		t.Fatalf("expected a cache hit, got %v", err)
	}
	if found[0].Username != "asilva" {
		t.Errorf("unexpected user: %+v", found[0])
	}
	if repo.findCalls != 0 {
		t.Errorf("store must not be queried on a cache hit, got %d calls", repo.findCalls)
	}
}

// Compound filters bypass the cache unconditionally, even when id is one
// of the filters.
func TestCompoundFilterBypassesCache(t *testing.T) {
	svc, repo, userCache := newUserFixture()
	user := createTestUser(t, svc)

	_, err := svc.Find(context.Background(), model.UserFilter{
		UserID: user.ID,
		Status: model.StatusOfficial,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userCache.getCalls != 0 {
		t.Errorf("cache must not serve compound filters, got %d lookups", userCache.getCalls)
	}
	if repo.findCalls != 1 {
		t.Errorf("expected 1 store query, got %d", repo.findCalls)
	}
}

// After an update, the lookup must reflect the new fields, not a stale
// cached copy.
func TestUpdateRefreshesCache(t *testing.T) {
	svc, repo, _ := newUserFixture()
	user := createTestUser(t, svc)

	newName := "Anabela"
	if _, err := svc.Update(context.Background(), user.ID, &model.UpdateUserRequest{FirstName: &newName}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo.disabled = true
	found, err := svc.Find(context.Background(), model.UserFilter{UserID: user.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found[0].FirstName != "Anabela" {
		t.Errorf("stale cache entry served after update: %+v", found[0])
	}
}

func TestDeleteRemovesCacheEntry(t *testing.T) {
	svc, _, userCache := newUserFixture()
	user := createTestUser(t, svc)

	if err := svc.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := userCache.entries[user.ID]; ok {
		t.Error("cache entry must be removed on delete")
	}
	if _, err := svc.Find(context.Background(), model.UserFilter{UserID: user.ID}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

// With the cache backend entirely unreachable every operation must still
// succeed on the store alone, with no user-visible error.
func TestCacheOutageIsInvisible(t *testing.T) {
	svc, _, userCache := newUserFixture()
	userCache.fail = true

	user := createTestUser(t, svc)

	found, err := svc.Find(context.Background(), model.UserFilter{UserID: user.ID})
	if err != nil {
		t.Fatalf("read must fall back to the store, got %v", err)
	}
	if found[0].ID != user.ID {
		t.Errorf("unexpected user: %+v", found[0])
	}

	newName := "Anabela"
	updated, err := svc.Update(context.Background(), user.ID, &model.UpdateUserRequest{FirstName: &newName})
	if err != nil {
		t.Fatalf("update must succeed despite cache outage, got %v", err)
	}
	if updated.FirstName != "Anabela" {
		t.Errorf("unexpected user: %+v", updated)
	}

	if err := svc.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("delete must succeed despite cache outage, got %v", err)
	}
}

func TestFindNotFound(t *testing.T) {
	svc, _, _ := newUserFixture()

	_, err := svc.Find(context.Background(), model.UserFilter{UserID: "nope"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateNotFound(t *testing.T) {
	svc, _, _ := newUserFixture()

	name := "x"
	_, err := svc.Update(context.Background(), "nope", &model.UpdateUserRequest{FirstName: &name})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
