package listing

import "github.com/partytracker/party-service/internal/domain"

// ApplyEvents filters then sorts. It is pure: the same inputs always give the
// same output sequence and records are never modified.
func ApplyEvents(ev Evaluator, events []domain.Event, f EventFilter) []domain.Event {
	return SortEvents(ev.FilterEvents(events, f), f.Sort)
}

func ApplyClubs(ev Evaluator, clubs []domain.Club, f ClubFilter) []domain.Club {
	return SortClubs(ev.FilterClubs(clubs, f), f.Sort)
}
