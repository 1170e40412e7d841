package endpoints_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gisqo-media/tracker/internal/model"
)

func TestShootings_SplitUpcomingAndPast(t *testing.T) {
	env := newTestEnv(t)
	env.seedClient(t, "client-1", "Acme")

	// dates far enough out that the wall clock cannot flip them
	w := env.request(t, http.MethodPost, "/api/shootings", env.creatorToken, map[string]any{
		"title":       "Rooftop session",
		"client_id":   "client-1",
		"date":        "2099-01-15",
		"time":        "10:00",
		"location":    "HQ rooftop",
		"creator_ids": []string{env.creator.ID},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	upcoming := decode[model.Shooting](t, w)

	w = env.request(t, http.MethodPost, "/api/shootings", env.creatorToken, map[string]any{
		"title":     "Archive session",
		"client_id": "client-1",
		"date":      "2020-03-02",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.request(t, http.MethodGet, "/api/shootings", env.creatorToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[struct {
		Upcoming []model.Shooting `json:"upcoming"`
		Past     []model.Shooting `json:"past"`
		PastPage int              `json:"past_page"`
	}](t, w)
	require.Len(t, resp.Upcoming, 1)
	assert.Equal(t, upcoming.ID, resp.Upcoming[0].ID)
	require.Len(t, resp.Past, 1)
	assert.Equal(t, "Archive session", resp.Past[0].Title)
	assert.Equal(t, 1, resp.PastPage)
}

func TestUpdateShooting_Missing(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPut, "/api/shootings/nope", env.creatorToken, map[string]any{
		"title":     "Ghost",
		"client_id": "client-1",
		"date":      "2099-01-01",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteShooting(t *testing.T) {
	env := newTestEnv(t)
	env.seedClient(t, "client-1", "Acme")

	w := env.request(t, http.MethodPost, "/api/shootings", env.creatorToken, map[string]any{
		"title":     "One take",
		"client_id": "client-1",
		"date":      "2099-06-01",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	shooting := decode[model.Shooting](t, w)

	w = env.request(t, http.MethodDelete, "/api/shootings/"+shooting.ID, env.creatorToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodGet, "/api/shootings", env.creatorToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[map[string]any](t, w)
	assert.Empty(t, resp["upcoming"])
}
