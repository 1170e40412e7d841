package endpoints_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "carol@example.com",
		"password": "carol-pass",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[struct {
		Token string `json:"token"`
		User  struct {
			ID   string `json:"id"`
			Role string `json:"role"`
		} `json:"user"`
	}](t, w)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "creator-1", resp.User.ID)
	assert.Equal(t, "CREATOR", resp.User.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "carol@example.com",
		"password": "not-her-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_ArchivedAccount(t *testing.T) {
	env := newTestEnv(t)

	archived := env.creator
	archived.Active = false
	require.NoError(t, env.repo.PutCreator(context.Background(), archived))

	w := env.request(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "carol@example.com",
		"password": "carol-pass",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decode[map[string]string](t, w)
	assert.Equal(t, "this account has been deactivated", resp["error"])
}

func TestCurrentProfile_RequiresToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/auth/current_profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCurrentProfile_Get(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/auth/current_profile", env.creatorToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[map[string]any](t, w)
	assert.Equal(t, "Carol Creator", resp["name"])
	assert.NotContains(t, resp, "hashed_password")
}

func TestCurrentProfile_UpdateEmailConflict(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPut, "/api/auth/current_profile", env.creatorToken, map[string]string{
		"name":  "Carol Creator",
		"email": "admin@example.com",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAdminRoutes_RejectCreator(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/admin/people", env.creatorToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
