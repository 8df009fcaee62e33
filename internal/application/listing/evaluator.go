package listing

import (
	"strings"
	"time"

	"github.com/partytracker/party-service/internal/domain"
)

// Evaluator decides record membership for a filter set. Loc is the zone in
// which event date-times are truncated to calendar days for the date filter.
type Evaluator struct {
	Loc *time.Location
}

func NewEvaluator(loc *time.Location) Evaluator {
	if loc == nil {
		loc = time.Local
	}
	return Evaluator{Loc: loc}
}

func (ev Evaluator) MatchEvent(e domain.Event, f EventFilter) bool {
	if f.Search != "" && !containsFold(e.Title, f.Search) && !containsFold(e.Description, f.Search) {
		return false
	}
	if f.Location != "" && !containsFold(e.Location, f.Location) {
		return false
	}
	if f.Category != "" && !strings.EqualFold(e.Category, f.Category) {
		return false
	}
	if f.Date != nil && domain.DayOf(e.DateTime, ev.Loc) != *f.Date {
		return false
	}
	return true
}

func (ev Evaluator) MatchClub(c domain.Club, f ClubFilter) bool {
	if f.Search != "" && !containsFold(c.Name, f.Search) && !containsFold(c.Description, f.Search) {
		return false
	}
	if f.Location != "" && !containsFold(c.Location, f.Location) {
		return false
	}
	if f.Rating != nil && !(c.Rating >= *f.Rating) {
		return false
	}
	return true
}

// FilterEvents returns the matching events in input order. The input slice is
// not modified.
func (ev Evaluator) FilterEvents(events []domain.Event, f EventFilter) []domain.Event {
	out := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if ev.MatchEvent(e, f) {
			out = append(out, e)
		}
	}
	return out
}

func (ev Evaluator) FilterClubs(clubs []domain.Club, f ClubFilter) []domain.Club {
	out := make([]domain.Club, 0, len(clubs))
	for _, c := range clubs {
		if ev.MatchClub(c, f) {
			out = append(out, c)
		}
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
