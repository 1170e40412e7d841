package report

import (
	"sort"

	"github.com/gisqo-media/tracker/internal/model"
)

// PastShootingsPageSize is the page size for the past-sessions list.
const PastShootingsPageSize = 5

// SplitShootings sorts sessions newest-date-first and splits them
// around today (inclusive: a session dated today is upcoming).
func SplitShootings(shootings []model.Shooting, today string) (upcoming, past []model.Shooting) {
	sorted := make([]model.Shooting, 0, len(shootings))
	for _, s := range shootings {
		if s.ID == "" {
			continue
		}
		sorted = append(sorted, s)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})

	for _, s := range sorted {
		if s.Date >= today {
			upcoming = append(upcoming, s)
		} else {
			past = append(past, s)
		}
	}
	return upcoming, past
}

// PaginatePast slices the past list into fixed-size pages.
func PaginatePast(past []model.Shooting, page int) []model.Shooting {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * PastShootingsPageSize
	if start >= len(past) {
		return nil
	}
	end := start + PastShootingsPageSize
	if end > len(past) {
		end = len(past)
	}
	return past[start:end]
}
