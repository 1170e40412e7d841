package packets

import (
	"github.com/gisqo-media/tracker/internal/model"
	"github.com/gisqo-media/tracker/internal/report"
)

// Fallback labels for dangling references; references to deleted or
// archived records are expected and rendered, never errors.
const (
	ArchivedUserLabel     = "Archived User"
	UnassignedClientLabel = "Unassigned"
)

type ProfileResponse struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Email  string     `json:"email"`
	Role   model.Role `json:"role"`
	Avatar string     `json:"avatar,omitempty"`
	Active bool       `json:"active"`
}

func NewProfileResponse(u model.User) ProfileResponse {
	return ProfileResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
		Avatar: u.Avatar,
		Active: u.Active,
	}
}

type LoginResponse struct {
	Token string          `json:"token"`
	User  ProfileResponse `json:"user"`
}

type EntryResponse struct {
	ID          string            `json:"id"`
	CreatorID   string            `json:"creator_id"`
	CreatorName string            `json:"creator_name"`
	ClientID    string            `json:"client_id"`
	ClientName  string            `json:"client_name"`
	Title       string            `json:"title"`
	Type        model.ContentType `json:"type"`
	Link        string            `json:"link"`
	Date        string            `json:"date"`
}

// NewEntryResponse resolves the soft creator/client references,
// substituting fallback labels when they dangle.
func NewEntryResponse(e model.ContentEntry, creators []model.User, clients []model.Client) EntryResponse {
	creatorName := ArchivedUserLabel
	if u, ok := model.FindUser(creators, e.CreatorID); ok {
		creatorName = u.Name
	}
	clientName := UnassignedClientLabel
	if c, ok := model.FindClient(clients, e.ClientID); ok {
		clientName = c.Name
	}
	return EntryResponse{
		ID:          e.ID,
		CreatorID:   e.CreatorID,
		CreatorName: creatorName,
		ClientID:    e.ClientID,
		ClientName:  clientName,
		Title:       e.Title,
		Type:        e.Type,
		Link:        e.Link,
		Date:        e.Date,
	}
}

type BankResponse struct {
	Entries    []EntryResponse `json:"entries"`
	Page       int             `json:"page"`
	TotalPages int             `json:"total_pages"`
	Total      int             `json:"total"`
}

type TeamReportResponse struct {
	Period string            `json:"period"`
	Stats  report.TeamStats  `json:"stats"`
	Health []ClientHealthRow `json:"client_health,omitempty"`
}

type ClientHealthRow = report.ClientHealth

type ShootingsResponse struct {
	Upcoming []model.Shooting `json:"upcoming"`
	Past     []model.Shooting `json:"past"`
	PastPage int              `json:"past_page"`
}

// BrandingResponse is the public subset of settings the login screen
// needs before anyone authenticates.
type BrandingResponse struct {
	AppName      string `json:"app_name"`
	Theme        string `json:"theme"`
	Logo         string `json:"logo,omitempty"`
	Favicon      string `json:"favicon,omitempty"`
	PrimaryColor string `json:"primary_color,omitempty"`
}
