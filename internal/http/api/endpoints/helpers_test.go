package endpoints_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/gisqo-media/tracker/internal/http/api"
	"github.com/gisqo-media/tracker/internal/http/api/endpoints"
	"github.com/gisqo-media/tracker/internal/http/middleware"
	"github.com/gisqo-media/tracker/internal/model"
	"github.com/gisqo-media/tracker/internal/storage"
	"github.com/gisqo-media/tracker/internal/store"
)

const testSecret = "test-secret"

type testEnv struct {
	router *gin.Engine
	repo   *store.Repository

	admin        model.User
	adminToken   string
	creator      model.User
	creatorToken string
}

// newTestEnv builds a full router over a throwaway sqlite store with
// one admin and one creator account already seeded.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend, err := store.NewSQLite(filepath.Join(t.TempDir(), "tracker.db"))
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	repo := store.NewRepository(backend)

	env := &testEnv{repo: repo}
	env.admin = env.seedUser(t, "admin-1", "Ada Admin", "admin@example.com", "admin-pass", model.RoleAdmin)
	env.creator = env.seedUser(t, "creator-1", "Carol Creator", "carol@example.com", "carol-pass", model.RoleCreator)

	env.adminToken = mustToken(t, env.admin.ID)
	env.creatorToken = mustToken(t, env.creator.ID)

	r := gin.New()

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api",
		Auth:   false,
	},
		endpoints.AuthPublicModule(testSecret, repo),
		endpoints.BrandingModule(repo),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api",
		Auth:      true,
		SecretKey: testSecret,
		Users:     repo,
	},
		endpoints.AuthSessionModule(testSecret, repo),
		endpoints.EntryModule(repo),
		endpoints.ClientListModule(repo),
		endpoints.NoticeReadModule(repo),
		endpoints.HolidayReadModule(repo),
		endpoints.ReportModule(repo),
		endpoints.ShootingModule(repo),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		AdminOnly: true,
		SecretKey: testSecret,
		Users:     repo,
	},
		endpoints.PeopleModule(repo),
		endpoints.ClientAdminModule(repo),
		endpoints.NoticeAdminModule(repo),
		endpoints.HolidayAdminModule(repo),
		endpoints.SettingsModule(repo, storage.NewLocalStorage(t.TempDir())),
	)

	env.router = r
	return env
}

func (e *testEnv) seedUser(t *testing.T, id, name, email, password string, role model.Role) model.User {
	t.Helper()
	hashed, err := middleware.HashPassword(password)
	require.NoError(t, err)
	user := model.User{
		ID:             id,
		Name:           name,
		Email:          email,
		HashedPassword: hashed,
		Role:           role,
		Active:         true,
	}
	require.NoError(t, e.repo.PutCreator(context.Background(), user))
	return user
}

func (e *testEnv) seedClient(t *testing.T, id, name string) model.Client {
	t.Helper()
	client := model.Client{ID: id, Name: name, Active: true}
	require.NoError(t, e.repo.PutClient(context.Background(), client))
	return client
}

func mustToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := middleware.GenerateJWT(userID, testSecret)
	require.NoError(t, err)
	return token
}

// request marshals body (when non-nil), sends it through the router
// and returns the recorder.
func (e *testEnv) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
