package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gisqo-media/tracker/internal/model"
)

func entry(id, creatorID, clientID, date string, ct model.ContentType) model.ContentEntry {
	return model.ContentEntry{
		ID:        id,
		CreatorID: creatorID,
		ClientID:  clientID,
		Title:     "t-" + id,
		Type:      ct,
		Link:      "https://example.com/" + id,
		Date:      date,
	}
}

func creator(id, name string) model.User {
	return model.User{ID: id, Name: name, Role: model.RoleCreator, Active: true}
}

func weekendSettings(allow bool) model.AppSettings {
	s := model.DefaultSettings()
	s.AllowWeekends = allow
	return s
}

func TestBuildTeamStats_WeeklyWindowIsSevenDaysInclusive(t *testing.T) {
	now := time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)
	entries := []model.ContentEntry{
		entry("in", "c1", "cl1", "2024-06-08", model.TypeVideo),  // exactly 7 days back
		entry("out", "c1", "cl1", "2024-06-07", model.TypeVideo), // 8 days back
	}

	stats := BuildTeamStats(StatsInput{
		Entries:  entries,
		Creators: []model.User{creator("c1", "Amina")},
		Settings: weekendSettings(true),
		Period:   PeriodWeekly,
		Now:      now,
	})

	require.Equal(t, 1, stats.Total)
	require.Equal(t, 1, stats.Performance[0].Count)
}

func TestBuildTeamStats_DailyMatchesCalendarDay(t *testing.T) {
	now := time.Date(2024, 6, 14, 9, 0, 0, 0, time.UTC) // a Friday
	entries := []model.ContentEntry{
		entry("a", "c1", "cl1", "2024-06-14", model.TypeFlyer),
		entry("b", "c1", "cl1", "2024-06-13", model.TypeFlyer),
	}

	stats := BuildTeamStats(StatsInput{
		Entries:  entries,
		Creators: []model.User{creator("c1", "Amina")},
		Settings: weekendSettings(false),
		Period:   PeriodDaily,
		Now:      now,
	})

	require.Equal(t, 1, stats.Total)
	require.Equal(t, 1, stats.ByType.Flyer)
}

func TestBuildTeamStats_ByTypeSumsToTotal(t *testing.T) {
	now := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	entries := []model.ContentEntry{
		entry("a", "c1", "cl1", "2024-06-03", model.TypeVideo),
		entry("b", "c1", "cl1", "2024-06-04", model.TypeFlyer),
		entry("c", "c2", "cl1", "2024-06-05", model.TypeAnimation),
		entry("d", "c2", "cl2", "2024-06-06", model.TypeNewsletter),
		entry("e", "c2", "cl2", "2024-06-07", model.TypeOther),
		entry("f", "c2", "cl2", "2024-05-07", model.TypeOther), // outside month
	}

	stats := BuildTeamStats(StatsInput{
		Entries:  entries,
		Creators: []model.User{creator("c1", "Amina"), creator("c2", "Bilal")},
		Settings: weekendSettings(false),
		Period:   PeriodMonthly,
		Now:      now,
	})

	sum := stats.ByType.Video + stats.ByType.Flyer + stats.ByType.Animation +
		stats.ByType.Newsletter + stats.ByType.Other
	require.Equal(t, stats.Total, sum)
	require.Equal(t, 5, stats.Total)
}

func TestBuildTeamStats_GoalDiffAndStatus(t *testing.T) {
	now := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	settings := weekendSettings(false)
	settings.DailyGoal = 2

	var entries []model.ContentEntry
	// c1 logs 3 on one weekday, meeting the daily goal with excess;
	// c2 logs 1, falling short.
	entries = append(entries,
		entry("a", "c1", "cl1", "2024-06-14", model.TypeVideo),
		entry("b", "c1", "cl1", "2024-06-14", model.TypeVideo),
		entry("c", "c1", "cl1", "2024-06-14", model.TypeVideo),
		entry("d", "c2", "cl1", "2024-06-14", model.TypeVideo),
	)

	stats := BuildTeamStats(StatsInput{
		Entries:  entries,
		Creators: []model.User{creator("c1", "Amina"), creator("c2", "Bilal")},
		Settings: settings,
		Period:   PeriodDaily,
		Now:      now,
	})

	require.Len(t, stats.Performance, 2)
	for _, p := range stats.Performance {
		require.Equal(t, p.Count-p.Goal, p.Diff)
		if p.Count >= p.Goal {
			require.Equal(t, StatusExcess, p.Status)
		} else {
			require.Equal(t, StatusShortage, p.Status)
		}
	}
	require.Equal(t, StatusExcess, stats.Performance[0].Status)
	require.Equal(t, StatusShortage, stats.Performance[1].Status)
}

func TestBuildTeamStats_PeriodGoalMultipliers(t *testing.T) {
	now := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	settings := weekendSettings(false)
	settings.DailyGoal = 3

	cases := []struct {
		period Period
		goal   int
	}{
		{PeriodDaily, 3},
		{PeriodWeekly, 15},
		{PeriodMonthly, 66},
	}
	for _, tc := range cases {
		stats := BuildTeamStats(StatsInput{
			Creators: []model.User{creator("c1", "Amina")},
			Settings: settings,
			Period:   tc.period,
			Now:      now,
		})
		require.Equal(t, tc.goal, stats.Performance[0].Goal, "period %s", tc.period)
	}
}

func TestBuildTeamStats_ExcludesWeekendEntries(t *testing.T) {
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	entries := []model.ContentEntry{
		entry("sat", "c1", "cl1", "2024-06-08", model.TypeVideo), // Saturday
		entry("mon", "c1", "cl1", "2024-06-10", model.TypeVideo),
	}

	stats := BuildTeamStats(StatsInput{
		Entries:  entries,
		Creators: []model.User{creator("c1", "Amina")},
		Settings: weekendSettings(false),
		Period:   PeriodMonthly,
		Now:      now,
	})
	require.Equal(t, 1, stats.Total)

	stats = BuildTeamStats(StatsInput{
		Entries:  entries,
		Creators: []model.User{creator("c1", "Amina")},
		Settings: weekendSettings(true),
		Period:   PeriodMonthly,
		Now:      now,
	})
	require.Equal(t, 2, stats.Total)
}

func TestBuildTeamStats_SkipsArchivedAndAdminAccounts(t *testing.T) {
	now := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	archived := creator("c2", "Bilal")
	archived.Active = false
	admin := model.User{ID: "a1", Name: "Root", Role: model.RoleAdmin, Active: true}

	stats := BuildTeamStats(StatsInput{
		Creators: []model.User{creator("c1", "Amina"), archived, admin},
		Settings: weekendSettings(false),
		Period:   PeriodDaily,
		Now:      now,
	})
	require.Len(t, stats.Performance, 1)
	require.Equal(t, "c1", stats.Performance[0].ID)
}

func TestBuildTeamStats_CreatorFilterNarrowsTotals(t *testing.T) {
	now := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	entries := []model.ContentEntry{
		entry("a", "c1", "cl1", "2024-06-14", model.TypeVideo),
		entry("b", "c2", "cl1", "2024-06-14", model.TypeFlyer),
	}

	stats := BuildTeamStats(StatsInput{
		Entries:   entries,
		Creators:  []model.User{creator("c1", "Amina"), creator("c2", "Bilal")},
		Settings:  weekendSettings(false),
		Period:    PeriodDaily,
		Now:       now,
		CreatorID: "c2",
	})
	require.Equal(t, 1, stats.Total)
	require.Equal(t, 1, stats.ByType.Flyer)
	require.Equal(t, 0, stats.ByType.Video)
}

func TestBuildClientHealth_CapsAtHundredPercent(t *testing.T) {
	settings := weekendSettings(true)
	settings.MonthlyClientGoal = 2

	clients := []model.Client{
		{ID: "cl1", Name: "Acme", Active: true},
		{ID: "cl2", Name: "Globex", Active: true},
		{ID: "cl3", Name: "Initech", Active: false},
	}
	entries := []model.ContentEntry{
		entry("a", "c1", "cl1", "2024-06-03", model.TypeVideo),
		entry("b", "c1", "cl1", "2024-06-04", model.TypeVideo),
		entry("c", "c1", "cl1", "2024-06-05", model.TypeVideo),
		entry("d", "c1", "cl2", "2024-06-05", model.TypeVideo),
	}

	health := BuildClientHealth(entries, clients, settings, time.June, 2024)
	require.Len(t, health, 2, "archived clients are excluded")
	require.Equal(t, 3, health[0].Count)
	require.InDelta(t, 100, health[0].Percentage, 0.001)
	require.InDelta(t, 50, health[1].Percentage, 0.001)
}

func TestSplitShootings_UpcomingIncludesToday(t *testing.T) {
	shootings := []model.Shooting{
		{ID: "s1", Title: "Spring shoot", Date: "2024-06-10"},
		{ID: "s2", Title: "Launch day", Date: "2024-06-15"},
		{ID: "s3", Title: "Retro promo", Date: "2024-06-01"},
		{Title: "no id, dropped"},
	}

	upcoming, past := SplitShootings(shootings, "2024-06-10")
	require.Len(t, upcoming, 2)
	require.Equal(t, "s2", upcoming[0].ID, "sorted newest first")
	require.Equal(t, "s1", upcoming[1].ID)
	require.Len(t, past, 1)
	require.Equal(t, "s3", past[0].ID)
}

func TestPaginatePast_FixedPageSize(t *testing.T) {
	var past []model.Shooting
	for i := 0; i < 12; i++ {
		past = append(past, model.Shooting{ID: string(rune('a' + i))})
	}

	require.Len(t, PaginatePast(past, 1), 5)
	require.Len(t, PaginatePast(past, 2), 5)
	require.Len(t, PaginatePast(past, 3), 2)
	require.Nil(t, PaginatePast(past, 4))
}
