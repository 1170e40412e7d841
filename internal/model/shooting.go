package model

// Shooting is a scheduled production session (photo/video shoot) that
// one or more creators attend for a client.
type Shooting struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	ClientID   string   `json:"client_id"`
	Date       string   `json:"date"`
	Time       string   `json:"time,omitempty"`
	Location   string   `json:"location,omitempty"`
	CreatorIDs []string `json:"creator_ids"`
}
