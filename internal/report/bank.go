package report

import (
	"strings"

	"github.com/gisqo-media/tracker/internal/model"
)

// BankPageSize is the fixed number of entries per content-bank page.
const BankPageSize = 8

type BankQuery struct {
	Search    string
	CreatorID string
	ClientID  string
	Page      int
}

type BankPage struct {
	Entries    []model.ContentEntry `json:"entries"`
	Page       int                  `json:"page"`
	TotalPages int                  `json:"total_pages"`
	Total      int                  `json:"total"`
}

// FilterBank produces the content-bank listing: newest insertion first
// (the input array is reversed, not sorted by date, so entries logged
// out of chronological order list in insertion order), narrowed by
// creator, client and a case-insensitive title substring, then sliced
// into fixed-size pages. Page numbers outside the valid range yield an
// empty slice; clamping is the navigation's job.
func FilterBank(entries []model.ContentEntry, q BankQuery) BankPage {
	reversed := make([]model.ContentEntry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		reversed = append(reversed, entries[i])
	}

	needle := strings.ToLower(strings.TrimSpace(q.Search))
	filtered := reversed[:0]
	for _, e := range reversed {
		if q.CreatorID != "" && e.CreatorID != q.CreatorID {
			continue
		}
		if q.ClientID != "" && e.ClientID != q.ClientID {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(e.Title), needle) {
			continue
		}
		filtered = append(filtered, e)
	}

	total := len(filtered)
	totalPages := (total + BankPageSize - 1) / BankPageSize

	page := q.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * BankPageSize
	end := start + BankPageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return BankPage{
		Entries:    filtered[start:end],
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}
}
