package listing

import (
	"time"

	"github.com/partytracker/party-service/internal/domain"
)

const (
	DefaultUpcomingWindow = 72 * time.Hour
	DefaultHomeLimit      = 4
)

// Upcoming returns events strictly inside (now, now+window), soonest first,
// capped at limit.
func Upcoming(events []domain.Event, now time.Time, window time.Duration, limit int) []domain.Event {
	if window <= 0 {
		window = DefaultUpcomingWindow
	}
	end := now.Add(window)
	out := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if e.DateTime.After(now) && e.DateTime.Before(end) {
			out = append(out, e)
		}
	}
	return capped(SortEvents(out, EventSortDate), limit)
}

// Trending returns the most attended events.
func Trending(events []domain.Event, limit int) []domain.Event {
	return capped(SortEvents(events, EventSortPopularity), limit)
}

// Featured returns the best rated clubs.
func Featured(clubs []domain.Club, limit int) []domain.Club {
	return capped(SortClubs(clubs, ClubSortRating), limit)
}

func capped[T any](items []T, limit int) []T {
	if limit <= 0 {
		limit = DefaultHomeLimit
	}
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
