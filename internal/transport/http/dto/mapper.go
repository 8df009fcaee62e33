package dto

import (
	"time"

	"github.com/partytracker/party-service/internal/application/catalog"
	"github.com/partytracker/party-service/internal/application/listing"
	"github.com/partytracker/party-service/internal/domain"
)

func (r CreateEventReq) ToCmd() catalog.CreateEventCmd {
	var dt time.Time
	if r.DateTime != nil {
		dt = *r.DateTime
	}
	return catalog.CreateEventCmd{
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		DateTime:    dt,
		ImageURL:    r.ImageURL,
		Category:    r.Category,
		Price:       r.Price,
		Attendees:   r.Attendees,
		IsHot:       r.IsHot,
	}
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func ToEventResp(e domain.Event) EventResp {
	return EventResp{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		DateTime:    e.DateTime,
		ImageURL:    e.ImageURL,
		Category:    e.Category,
		Price:       e.Price,
		Attendees:   e.Attendees,
		IsHot:       e.IsHot,
		IsFree:      e.IsFree(),
		CreatedAt:   optionalTime(e.CreatedAt),
		UpdatedAt:   optionalTime(e.UpdatedAt),
	}
}

func ToClubResp(c domain.Club) ClubResp {
	return ClubResp{
		ID:             c.ID,
		Name:           c.Name,
		Description:    c.Description,
		Location:       c.Location,
		ImageURL:       c.ImageURL,
		Rating:         c.Rating,
		UpcomingEvents: c.UpcomingEvents,
	}
}

func ToEventResps(events []domain.Event) []EventResp {
	out := make([]EventResp, 0, len(events))
	for _, e := range events {
		out = append(out, ToEventResp(e))
	}
	return out
}

func ToClubResps(clubs []domain.Club) []ClubResp {
	out := make([]ClubResp, 0, len(clubs))
	for _, c := range clubs {
		out = append(out, ToClubResp(c))
	}
	return out
}

func NewListResp[T any](items []T, q listing.Query, active int) ListResp[T] {
	query := map[string]string(q)
	if query == nil {
		query = map[string]string{}
	}
	return ListResp[T]{
		Items:         items,
		Count:         len(items),
		ActiveFilters: active,
		Query:         query,
		QueryString:   q.Encode(),
	}
}

func ToEventList(p catalog.EventPage) ListResp[EventResp] {
	return NewListResp(ToEventResps(p.Items), p.Query, p.Filter.Constraints())
}

func ToClubList(p catalog.ClubPage) ListResp[ClubResp] {
	return NewListResp(ToClubResps(p.Items), p.Query, p.Filter.Constraints())
}

func ToHomeResp(h catalog.HomePage) HomeResp {
	return HomeResp{
		Upcoming: ToEventResps(h.Upcoming),
		Trending: ToEventResps(h.Trending),
		Featured: ToClubResps(h.Featured),
	}
}
