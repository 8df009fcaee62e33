package dto

import "time"

type EventResp struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	DateTime    time.Time  `json:"date_time"`
	ImageURL    string     `json:"image_url,omitempty"`
	Category    string     `json:"category,omitempty"`
	Price       *float64   `json:"price,omitempty"`
	Attendees   *int       `json:"attendees,omitempty"`
	IsHot       bool       `json:"is_hot"`
	IsFree      bool       `json:"is_free"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type ClubResp struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Location       string  `json:"location"`
	ImageURL       string  `json:"image_url,omitempty"`
	Rating         float64 `json:"rating"`
	UpcomingEvents int     `json:"upcoming_events"`
}

// ListResp carries the canonical query next to the items so clients can
// bookmark or share the exact view. ActiveFilters counts the constraints
// other than search and sort.
type ListResp[T any] struct {
	Items         []T               `json:"items"`
	Count         int               `json:"count"`
	ActiveFilters int               `json:"active_filters"`
	Query         map[string]string `json:"query"`
	QueryString   string            `json:"query_string"`
}

type HomeResp struct {
	Upcoming []EventResp `json:"upcoming"`
	Trending []EventResp `json:"trending"`
	Featured []ClubResp  `json:"featured_clubs"`
}
