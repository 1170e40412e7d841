package model

import "time"

type ContentType string

const (
	TypeVideo      ContentType = "Video"
	TypeFlyer      ContentType = "Flyer"
	TypeAnimation  ContentType = "Animation"
	TypeNewsletter ContentType = "Newsletter"
	TypeOther      ContentType = "Other"
)

// ContentTypes lists the five recognized buckets in display order.
var ContentTypes = []ContentType{TypeVideo, TypeFlyer, TypeAnimation, TypeNewsletter, TypeOther}

// DateLayout is the calendar-day format used on every dated record.
// Entries carry no time component.
const DateLayout = "2006-01-02"

type ContentEntry struct {
	ID        string      `json:"id"`
	CreatorID string      `json:"creator_id"`
	ClientID  string      `json:"client_id"`
	Title     string      `json:"title"`
	Type      ContentType `json:"type"`
	Link      string      `json:"link"`
	Date      string      `json:"date"`
}

// Day parses the entry date. A zero time is returned for malformed dates.
func (e ContentEntry) Day() time.Time {
	t, err := time.Parse(DateLayout, e.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}
