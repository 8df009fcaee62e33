package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/partytracker/party-service/internal/application/catalog"
	"github.com/partytracker/party-service/internal/application/listing"
	"github.com/partytracker/party-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToEventResp(t *testing.T) {
	when := time.Date(2025, 9, 12, 21, 0, 0, 0, time.UTC)

	t.Run("maps_all_fields", func(t *testing.T) {
		price := 20.0
		attendees := 153
		e := domain.Event{
			ID: "event8", Title: "Friday Night Fever", Location: "Neon Lounge, Downtown",
			DateTime: when, Category: "club", Price: &price, Attendees: &attendees, IsHot: true,
			CreatedAt: when, UpdatedAt: when,
		}
		resp := ToEventResp(e)

		assert.Equal(t, "event8", resp.ID)
		assert.Equal(t, &price, resp.Price)
		assert.False(t, resp.IsFree)
		require.NotNil(t, resp.CreatedAt)
		assert.Equal(t, when, *resp.CreatedAt)
	})

	t.Run("absent_optionals_are_omitted", func(t *testing.T) {
		resp := ToEventResp(domain.Event{ID: "event7", DateTime: when})
		assert.True(t, resp.IsFree)

		b, err := json.Marshal(resp)
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(b, &m))
		for _, k := range []string{"price", "attendees", "created_at", "image_url"} {
			assert.NotContains(t, m, k)
		}
		assert.Equal(t, false, m["is_hot"])
	})
}

func TestToCmd(t *testing.T) {
	when := time.Date(2026, 1, 1, 20, 0, 0, 0, time.UTC)
	cmd := CreateEventReq{Title: "T", Location: "L", DateTime: &when, IsHot: true}.ToCmd()
	assert.Equal(t, when, cmd.DateTime)
	assert.True(t, cmd.IsHot)

	assert.True(t, CreateEventReq{Title: "T"}.ToCmd().DateTime.IsZero())
}

func TestNewListResp(t *testing.T) {
	resp := NewListResp([]ClubResp{{ID: "c1"}}, listing.Query{listing.KeyRating: "4.5", listing.KeySearch: "neon"}, 1)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, 1, resp.ActiveFilters)
	assert.Equal(t, "rating=4.5&search=neon", resp.QueryString)

	empty := NewListResp([]ClubResp{}, nil, 0)
	b, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[],"count":0,"active_filters":0,"query":{},"query_string":""}`, string(b))
}

func TestToEventList_ActiveFilters(t *testing.T) {
	f := listing.EventFilter{Search: "techno", Location: "Downtown", Category: "club"}
	resp := ToEventList(catalog.EventPage{
		Items:  []domain.Event{{ID: "event2"}},
		Filter: f,
		Query:  listing.SerializeEvents(f),
	})
	assert.Equal(t, 2, resp.ActiveFilters)
	assert.Equal(t, "category=club&location=Downtown&search=techno", resp.QueryString)
}

func TestToHomeResp(t *testing.T) {
	h := ToHomeResp(catalog.HomePage{
		Trending: []domain.Event{{ID: "a"}, {ID: "b"}},
		Featured: []domain.Club{{ID: "c"}},
	})
	assert.NotNil(t, h.Upcoming)
	assert.Len(t, h.Trending, 2)
	assert.Equal(t, "c", h.Featured[0].ID)
}
