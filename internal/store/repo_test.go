package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gisqo-media/tracker/internal/model"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(newTestStore(t))
}

func TestEnsureDefaultAdmin_SeedsOnce(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.EnsureDefaultAdmin(ctx, "hashed-pw"))

	users, err := repo.Creators(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, model.RoleAdmin, users[0].Role)
	assert.Equal(t, "admin@gisqo.com", users[0].Email)

	// a second call against a populated collection is a no-op
	require.NoError(t, repo.EnsureDefaultAdmin(ctx, "other-pw"))
	users, err = repo.Creators(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, "hashed-pw", users[0].HashedPassword)
}

func TestEnsureDefaultAdmin_SkipsWhenAnyAccountExists(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	existing := model.User{ID: "u1", Name: "Kept", Email: "kept@example.com", Role: model.RoleCreator, Active: true}
	require.NoError(t, repo.PutCreator(ctx, existing))

	require.NoError(t, repo.EnsureDefaultAdmin(ctx, "hashed-pw"))
	users, err := repo.Creators(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "u1", users[0].ID)
}

func TestSettings_DefaultsWhenMissing(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	settings, err := repo.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSettings(), settings)
}

func TestSettings_NormalizesBlankAppName(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	saved := model.DefaultSettings()
	saved.AppName = "   "
	require.NoError(t, repo.SaveSettings(ctx, saved))

	settings, err := repo.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "GisqoTracker", settings.AppName)
}

func TestLoadAll_SkipsUnreadableDocuments(t *testing.T) {
	backend := newTestStore(t)
	repo := NewRepository(backend)
	ctx := context.Background()

	require.NoError(t, repo.PutClient(ctx, model.Client{ID: "c1", Name: "Acme", Active: true}))
	require.NoError(t, backend.Put(ctx, Clients, "broken", []byte("definitely not json")))
	require.NoError(t, repo.PutClient(ctx, model.Client{ID: "c2", Name: "Globex", Active: true}))

	clients, err := repo.Clients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, "c1", clients[0].ID)
	assert.Equal(t, "c2", clients[1].ID)
}

func TestCreatorByEmail(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.PutCreator(ctx, model.User{ID: "u1", Email: "a@example.com"}))

	found, err := repo.CreatorByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "u1", found.ID)

	missing, err := repo.CreatorByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
