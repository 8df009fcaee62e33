package listing

import (
	"testing"
	"time"

	"github.com/partytracker/party-service/internal/domain"
)

var testLoc = time.FixedZone("UTC+2", 2*60*60)

func intPtr(v int) *int               { return &v }
func floatPtr(v float64) *float64     { return &v }
func dayPtr(d domain.Day) *domain.Day { return &d }

func mustDay(t *testing.T, s string) domain.Day {
	t.Helper()
	d, err := domain.ParseDay(s)
	if err != nil {
		t.Fatalf("bad day %q: %v", s, err)
	}
	return d
}

// local builds a wall-clock time in testLoc, like the zoneless ISO strings
// the listing pages were fed.
func local(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, testLoc)
}

func sampleEvents() []domain.Event {
	return []domain.Event{
		{ID: "event1", Title: "Summer Vibes Festival", Description: "The biggest electronic music festival of the summer.",
			Location: "Riverside Park", DateTime: local(2025, 8, 15, 14, 0), Category: "festival",
			Price: floatPtr(75), Attendees: intPtr(350), IsHot: true},
		{ID: "event2", Title: "Techno Tuesdays", Description: "Underground techno night featuring local DJs.",
			Location: "The Basement", DateTime: local(2025, 8, 18, 22, 0), Category: "club",
			Price: floatPtr(15), Attendees: intPtr(120)},
		{ID: "event6", Title: "Jazz Night", Description: "Intimate jazz performances by local musicians.",
			Location: "Blue Note Lounge", DateTime: local(2025, 8, 17, 19, 30), Category: "music",
			Price: floatPtr(20), Attendees: intPtr(80)},
		{ID: "event7", Title: "Freshman Welcome Party", Description: "The biggest welcome party for all freshman students.",
			Location: "Student Union Building", DateTime: local(2025, 9, 15, 20, 0), Category: "campus",
			Attendees: intPtr(230), IsHot: true},
		{ID: "event8", Title: "Friday Night Fever", Description: "Start your weekend with the hottest beats in town!",
			Location: "Neon Lounge, Downtown", DateTime: local(2025, 9, 12, 21, 0), Category: "club",
			Price: floatPtr(20)},
	}
}

func sampleClubs() []domain.Club {
	return []domain.Club{
		{ID: "club1", Name: "Neon Lounge", Description: "Upscale nightclub with the best DJs in town", Location: "Downtown", Rating: 4.8, UpcomingEvents: 3},
		{ID: "club2", Name: "The Basement", Description: "Underground club featuring techno and house music", Location: "Arts District", Rating: 4.5, UpcomingEvents: 2},
		{ID: "club3", Name: "Skyline Rooftop", Description: "Rooftop bar with panoramic city views", Location: "Financial District", Rating: 4.9, UpcomingEvents: 5},
		{ID: "club4", Name: "Vinyl Room", Description: "Retro-style club with vinyl DJs and classic cocktails", Location: "Downtown", Rating: 4.3, UpcomingEvents: 1},
	}
}

func eventIDs(events []domain.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}

func eventTitles(events []domain.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Title)
	}
	return out
}

func clubNames(clubs []domain.Club) []string {
	out := make([]string, 0, len(clubs))
	for _, c := range clubs {
		out = append(out, c.Name)
	}
	return out
}
