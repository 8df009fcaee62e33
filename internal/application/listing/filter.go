package listing

import "github.com/partytracker/party-service/internal/domain"

type EventSort string

const (
	EventSortDate       EventSort = "date"
	EventSortPopularity EventSort = "popularity"
)

func (s EventSort) Valid() bool {
	return s == EventSortDate || s == EventSortPopularity
}

// OrDefault returns the order applied when no sort was chosen.
func (s EventSort) OrDefault() EventSort {
	if !s.Valid() {
		return EventSortDate
	}
	return s
}

type ClubSort string

const (
	ClubSortAlphabetical ClubSort = "alphabetical"
	ClubSortRating       ClubSort = "rating"
	ClubSortEvents       ClubSort = "events"
)

func (s ClubSort) Valid() bool {
	return s == ClubSortAlphabetical || s == ClubSortRating || s == ClubSortEvents
}

func (s ClubSort) OrDefault() ClubSort {
	if !s.Valid() {
		return ClubSortAlphabetical
	}
	return s
}

// EventFilter is the filter set of the events listing. Empty strings and nil
// pointers mean "no constraint".
type EventFilter struct {
	Search   string
	Location string
	Category string
	Date     *domain.Day
	Sort     EventSort
}

func (f EventFilter) Equal(o EventFilter) bool {
	return f.Search == o.Search &&
		f.Location == o.Location &&
		f.Category == o.Category &&
		f.Sort == o.Sort &&
		equalPtr(f.Date, o.Date)
}

// Constraints counts the active non-search constraints.
func (f EventFilter) Constraints() int {
	n := 0
	if f.Location != "" {
		n++
	}
	if f.Category != "" {
		n++
	}
	if f.Date != nil {
		n++
	}
	return n
}

// ClubFilter is the filter set of the clubs listing.
type ClubFilter struct {
	Search   string
	Location string
	Rating   *float64 // minimum rating
	Sort     ClubSort
}

func (f ClubFilter) Equal(o ClubFilter) bool {
	return f.Search == o.Search &&
		f.Location == o.Location &&
		f.Sort == o.Sort &&
		equalPtr(f.Rating, o.Rating)
}

func (f ClubFilter) Constraints() int {
	n := 0
	if f.Location != "" {
		n++
	}
	if f.Rating != nil {
		n++
	}
	return n
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
