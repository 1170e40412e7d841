package endpoints_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gisqo-media/tracker/internal/model"
	"github.com/gisqo-media/tracker/internal/report"
)

func seedEntries(t *testing.T, env *testEnv, creatorID, clientID string, dates ...string) {
	t.Helper()
	for i, date := range dates {
		entry := model.ContentEntry{
			ID:        fmt.Sprintf("entry-%s-%d", creatorID, i),
			CreatorID: creatorID,
			ClientID:  clientID,
			Title:     fmt.Sprintf("Post %d", i),
			Type:      model.TypeVideo,
			Link:      "https://cdn.example.com/post",
			Date:      date,
		}
		require.NoError(t, env.repo.PutEntry(context.Background(), entry))
	}
}

func TestTeamReport_Monthly(t *testing.T) {
	env := newTestEnv(t)
	env.seedClient(t, "client-1", "Acme")
	// three weekday entries in June 2024 plus one in May that must not count
	seedEntries(t, env, env.creator.ID, "client-1",
		"2024-06-10", "2024-06-11", "2024-06-12", "2024-05-20")

	// month is 0-based, 5 = June
	w := env.request(t, http.MethodGet, "/api/reports/team?period=monthly&month=5&year=2024", env.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[struct {
		Period string           `json:"period"`
		Stats  report.TeamStats `json:"stats"`
	}](t, w)
	assert.Equal(t, "monthly", resp.Period)
	assert.Equal(t, 3, resp.Stats.Total)
	assert.Equal(t, 3, resp.Stats.ByType.Video)

	require.Len(t, resp.Stats.Performance, 1)
	perf := resp.Stats.Performance[0]
	assert.Equal(t, env.creator.ID, perf.ID)
	assert.Equal(t, 3, perf.Count)
	// monthly goal is daily goal times a fixed 22 working days
	assert.Equal(t, 66, perf.Goal)
	assert.Equal(t, -63, perf.Diff)
}

func TestTeamReport_InvalidPeriod(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/reports/team?period=yearly", env.adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalendar_July2024(t *testing.T) {
	env := newTestEnv(t)

	// 6 = July with a 0-based month
	w := env.request(t, http.MethodGet, "/api/reports/calendar?month=6&year=2024", env.creatorToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	weeks := decode[[]report.Week](t, w)
	require.NotEmpty(t, weeks)
	// weekends are excluded by default, five days per week
	assert.Len(t, weeks[0].Days, 5)
	assert.Equal(t, 1, weeks[0].Number)
	// July 1st 2024 is a Monday, so the first week starts in-month
	assert.Equal(t, "2024-07-01", weeks[0].Days[0].Format(model.DateLayout))
}

func TestClientHealth_PercentageCapped(t *testing.T) {
	env := newTestEnv(t)
	env.seedClient(t, "client-1", "Acme")

	// default monthly client goal is 12; log 14 weekday entries
	dates := make([]string, 0, 14)
	for day := 3; day <= 14; day++ { // Jun 3..14 2024 covers 10 weekdays
		date := fmt.Sprintf("2024-06-%02d", day)
		dates = append(dates, date)
	}
	dates = append(dates, "2024-06-17", "2024-06-18", "2024-06-19", "2024-06-20")
	seedEntries(t, env, env.creator.ID, "client-1", dates...)

	w := env.request(t, http.MethodGet, "/api/reports/clients?month=5&year=2024", env.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	health := decode[[]report.ClientHealth](t, w)
	require.Len(t, health, 1)
	assert.Equal(t, "Acme", health[0].Name)
	assert.Equal(t, 14, health[0].Count)
	assert.Equal(t, 100.0, health[0].Percentage)
}

func TestContentBank_SearchAndPaging(t *testing.T) {
	env := newTestEnv(t)
	env.seedClient(t, "client-1", "Acme")

	for i := 0; i < 10; i++ {
		entry := model.ContentEntry{
			ID:        fmt.Sprintf("bank-%02d", i),
			CreatorID: env.creator.ID,
			ClientID:  "client-1",
			Title:     fmt.Sprintf("Summer Promo %d", i),
			Type:      model.TypeFlyer,
			Link:      "https://cdn.example.com/flyer",
			Date:      "2024-06-10",
		}
		require.NoError(t, env.repo.PutEntry(context.Background(), entry))
	}

	w := env.request(t, http.MethodGet, "/api/reports/bank?search=promo", env.creatorToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[struct {
		Entries []struct {
			Title string `json:"title"`
		} `json:"entries"`
		Page       int `json:"page"`
		TotalPages int `json:"total_pages"`
		Total      int `json:"total"`
	}](t, w)
	assert.Equal(t, 10, resp.Total)
	assert.Equal(t, 2, resp.TotalPages)
	require.Len(t, resp.Entries, report.BankPageSize)
	// newest first: the last insert leads the first page
	assert.Equal(t, "Summer Promo 9", resp.Entries[0].Title)

	w = env.request(t, http.MethodGet, "/api/reports/bank?search=promo&page=2", env.creatorToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	page2 := decode[struct {
		Entries []struct {
			Title string `json:"title"`
		} `json:"entries"`
	}](t, w)
	require.Len(t, page2.Entries, 2)
	assert.Equal(t, "Summer Promo 0", page2.Entries[1].Title)
}
