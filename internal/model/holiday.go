package model

type Holiday struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
}
