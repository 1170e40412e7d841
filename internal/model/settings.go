package model

import "strings"

// AppSettings is the process-wide configuration singleton. It is stored
// as a single document and passed explicitly into the reporting code,
// never read as ambient state.
type AppSettings struct {
	AppName           string `json:"app_name"`
	DailyGoal         int    `json:"daily_goal"`
	MonthlyClientGoal int    `json:"monthly_client_goal"`
	AllowWeekends     bool   `json:"allow_weekends"`
	Theme             string `json:"theme"`
	Logo              string `json:"logo,omitempty"`
	Favicon           string `json:"favicon,omitempty"`
	PrimaryColor      string `json:"primary_color,omitempty"`
}

func DefaultSettings() AppSettings {
	return AppSettings{
		AppName:           "GisqoTracker",
		DailyGoal:         3,
		MonthlyClientGoal: 12,
		AllowWeekends:     false,
		Theme:             "dark",
		PrimaryColor:      "#ffa500",
	}
}

// Normalize guards against a blank app name having been persisted.
func (s AppSettings) Normalize() AppSettings {
	if strings.TrimSpace(s.AppName) == "" {
		s.AppName = DefaultSettings().AppName
	}
	return s
}
