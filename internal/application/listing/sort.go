package listing

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/partytracker/party-service/internal/domain"
)

// SortEvents returns a stably sorted copy of events. An unset key sorts by date.
func SortEvents(events []domain.Event, key EventSort) []domain.Event {
	out := slices.Clone(events)
	if out == nil {
		out = []domain.Event{}
	}
	switch key.OrDefault() {
	case EventSortPopularity:
		slices.SortStableFunc(out, func(a, b domain.Event) int {
			return cmp.Compare(b.AttendeeCount(), a.AttendeeCount())
		})
	default:
		slices.SortStableFunc(out, func(a, b domain.Event) int {
			return a.DateTime.Compare(b.DateTime)
		})
	}
	return out
}

// SortClubs returns a stably sorted copy of clubs. An unset key sorts by name.
// Names are compared with English collation so accented names sit next to
// their base letters; case only breaks ties.
func SortClubs(clubs []domain.Club, key ClubSort) []domain.Club {
	out := slices.Clone(clubs)
	if out == nil {
		out = []domain.Club{}
	}
	switch key.OrDefault() {
	case ClubSortRating:
		slices.SortStableFunc(out, func(a, b domain.Club) int {
			return cmp.Compare(b.Rating, a.Rating)
		})
	case ClubSortEvents:
		slices.SortStableFunc(out, func(a, b domain.Club) int {
			return cmp.Compare(b.UpcomingEvents, a.UpcomingEvents)
		})
	default:
		// collators keep internal buffers and are not safe for concurrent use
		col := collate.New(language.English)
		slices.SortStableFunc(out, func(a, b domain.Club) int {
			return col.CompareString(a.Name, b.Name)
		})
	}
	return out
}
