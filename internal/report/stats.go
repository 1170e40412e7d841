package report

import (
	"time"

	"github.com/gisqo-media/tracker/internal/model"
)

type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// Goal multipliers per period. These are fixed and deliberately not
// calendar-aware: the monthly and weekly goals ignore allowWeekends and
// holidays, so goals can overshoot the actually available working days.
// Kept as-is; correcting it is a product decision.
const (
	weeklyGoalDays  = 5
	monthlyGoalDays = 22
)

const (
	StatusExcess   = "Excess"
	StatusShortage = "Shortage"
)

// TypeCounts is the per-type breakdown, zero-filled by construction.
type TypeCounts struct {
	Video      int `json:"video"`
	Flyer      int `json:"flyer"`
	Animation  int `json:"animation"`
	Newsletter int `json:"newsletter"`
	Other      int `json:"other"`
}

func (t *TypeCounts) add(ct model.ContentType) {
	switch ct {
	case model.TypeVideo:
		t.Video++
	case model.TypeFlyer:
		t.Flyer++
	case model.TypeAnimation:
		t.Animation++
	case model.TypeNewsletter:
		t.Newsletter++
	case model.TypeOther:
		t.Other++
	}
}

func (t TypeCounts) total() int {
	return t.Video + t.Flyer + t.Animation + t.Newsletter + t.Other
}

// Performance is one creator's standing against the period goal.
type Performance struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Count  int    `json:"count"`
	Goal   int    `json:"goal"`
	Diff   int    `json:"diff"`
	Status string `json:"status"`
}

type TeamStats struct {
	Total       int           `json:"total"`
	ByType      TypeCounts    `json:"by_type"`
	Performance []Performance `json:"performance"`
}

// StatsInput carries everything the aggregator needs; Now supplies the
// wall clock so the computation stays deterministic under test.
type StatsInput struct {
	Entries  []model.ContentEntry
	Creators []model.User
	Settings model.AppSettings
	Period   Period
	Now      time.Time
	// Month and Year select the monthly window; zero values mean the
	// month and year of Now.
	Month time.Month
	Year  int
	// CreatorID limits totals and the type breakdown to one creator.
	CreatorID string
}

// ExcludeWeekends drops entries dated on Saturday or Sunday. Malformed
// dates are kept; they fail every period filter anyway.
func ExcludeWeekends(entries []model.ContentEntry) []model.ContentEntry {
	out := make([]model.ContentEntry, 0, len(entries))
	for _, e := range entries {
		wd := e.Day().Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			continue
		}
		out = append(out, e)
	}
	return out
}

// inPeriod applies the window rule: daily is calendar-day string
// equality with today, weekly is a continuous inclusive window from
// seven days ago (not calendar-week aligned), monthly matches month and
// year.
func inPeriod(e model.ContentEntry, period Period, now time.Time, month time.Month, year int) bool {
	switch period {
	case PeriodDaily:
		return e.Date == now.Format(model.DateLayout)
	case PeriodWeekly:
		weekAgo := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -7)
		d := e.Day()
		return !d.IsZero() && !d.Before(weekAgo)
	default:
		d := e.Day()
		return d.Month() == month && d.Year() == year
	}
}

// BuildTeamStats computes the aggregate panel: total and per-type
// counts for the period (optionally narrowed to one creator), plus
// goal standing for every active creator. Creator order is preserved
// from the input; display buckets filter by status.
func BuildTeamStats(in StatsInput) TeamStats {
	month, year := in.Month, in.Year
	if year == 0 {
		month, year = in.Now.Month(), in.Now.Year()
	}

	entries := in.Entries
	if !in.Settings.AllowWeekends {
		entries = ExcludeWeekends(entries)
	}

	var stats TeamStats
	for _, e := range entries {
		if !inPeriod(e, in.Period, in.Now, month, year) {
			continue
		}
		if in.CreatorID != "" && e.CreatorID != in.CreatorID {
			continue
		}
		stats.ByType.add(e.Type)
	}
	stats.Total = stats.ByType.total()

	goal := in.Settings.DailyGoal
	switch in.Period {
	case PeriodWeekly:
		goal = in.Settings.DailyGoal * weeklyGoalDays
	case PeriodMonthly:
		goal = in.Settings.DailyGoal * monthlyGoalDays
	}

	for _, c := range in.Creators {
		if c.Role != model.RoleCreator || !c.Active {
			continue
		}
		count := 0
		for _, e := range entries {
			if e.CreatorID == c.ID && inPeriod(e, in.Period, in.Now, month, year) {
				count++
			}
		}
		status := StatusShortage
		if count >= goal {
			status = StatusExcess
		}
		stats.Performance = append(stats.Performance, Performance{
			ID:     c.ID,
			Name:   c.Name,
			Count:  count,
			Goal:   goal,
			Diff:   count - goal,
			Status: status,
		})
	}
	return stats
}

// ClientHealth is one client's progress against the monthly goal.
type ClientHealth struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// BuildClientHealth reports monthly output per active client, with the
// percentage capped at 100.
func BuildClientHealth(entries []model.ContentEntry, clients []model.Client, settings model.AppSettings, month time.Month, year int) []ClientHealth {
	if !settings.AllowWeekends {
		entries = ExcludeWeekends(entries)
	}

	out := make([]ClientHealth, 0, len(clients))
	for _, c := range clients {
		if !c.Active {
			continue
		}
		count := 0
		for _, e := range entries {
			d := e.Day()
			if e.ClientID == c.ID && d.Month() == month && d.Year() == year {
				count++
			}
		}
		pct := 0.0
		if settings.MonthlyClientGoal > 0 {
			pct = float64(count) / float64(settings.MonthlyClientGoal) * 100
			if pct > 100 {
				pct = 100
			}
		}
		out = append(out, ClientHealth{ID: c.ID, Name: c.Name, Count: count, Percentage: pct})
	}
	return out
}
