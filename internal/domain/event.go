package domain

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

type Event struct {
	ID          string
	Title       string
	Description string
	Location    string
	DateTime    time.Time
	ImageURL    string
	Category    string

	Price     *float64 // nil = free
	Attendees *int     // nil = unknown
	IsHot     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AttendeeCount treats an unknown attendee count as zero.
func (e Event) AttendeeCount() int {
	if e.Attendees == nil {
		return 0
	}
	return *e.Attendees
}

func (e Event) IsFree() bool {
	return e.Price == nil || *e.Price == 0
}

type NewEventInput struct {
	Title       string
	Description string
	Location    string
	DateTime    time.Time
	ImageURL    string
	Category    string
	Price       *float64
	Attendees   *int
	IsHot       bool
}

const (
	maxTitleLen       = 120
	maxDescriptionLen = 4000
	maxLocationLen    = 120
	maxCategoryLen    = 40
)

// NewEvent validates in and builds an event with a fresh id. Every missing
// required field is reported in a single validation error.
func NewEvent(in NewEventInput, now time.Time) (Event, error) {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	location := strings.TrimSpace(in.Location)
	category := strings.ToLower(strings.TrimSpace(in.Category))
	imageURL := strings.TrimSpace(in.ImageURL)

	missing := map[string]string{}
	if title == "" {
		missing["title"] = "required"
	}
	if location == "" {
		missing["location"] = "required"
	}
	if in.DateTime.IsZero() {
		missing["date_time"] = "required"
	}
	if len(missing) > 0 {
		return Event{}, ErrValidationMeta("missing required fields", missing)
	}

	invalid := map[string]string{}
	if utf8.RuneCountInString(title) > maxTitleLen {
		invalid["title"] = "must be <= 120 chars"
	}
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		invalid["description"] = "must be <= 4000 chars"
	}
	if utf8.RuneCountInString(location) > maxLocationLen {
		invalid["location"] = "must be <= 120 chars"
	}
	if utf8.RuneCountInString(category) > maxCategoryLen {
		invalid["category"] = "must be <= 40 chars"
	}
	if in.Price != nil && (*in.Price < 0 || math.IsNaN(*in.Price) || math.IsInf(*in.Price, 0)) {
		invalid["price"] = "must be a non-negative number"
	}
	if in.Attendees != nil && *in.Attendees < 0 {
		invalid["attendees"] = "must be >= 0"
	}
	if len(invalid) > 0 {
		return Event{}, ErrValidationMeta("invalid fields", invalid)
	}

	return Event{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Location:    location,
		DateTime:    in.DateTime,
		ImageURL:    imageURL,
		Category:    category,
		Price:       in.Price,
		Attendees:   in.Attendees,
		IsHot:       in.IsHot,
		CreatedAt:   now.UTC(),
		UpdatedAt:   now.UTC(),
	}, nil
}
