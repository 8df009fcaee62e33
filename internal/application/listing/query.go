package listing

import (
	"maps"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/partytracker/party-service/internal/domain"
)

// Query keys, shared by the events and clubs listings.
const (
	KeySearch   = "search"
	KeyLocation = "location"
	KeyCategory = "category"
	KeyDate     = "date"
	KeyRating   = "rating"
	KeySort     = "sort"
)

// Query is the shareable, string-keyed form of a filter set. A key is
// present only when its filter value is non-empty.
type Query map[string]string

func (q Query) Equal(o Query) bool {
	return maps.Equal(q, o)
}

// Values converts q for use in a URL.
func (q Query) Values() url.Values {
	v := make(url.Values, len(q))
	for k, s := range q {
		v.Set(k, s)
	}
	return v
}

// Encode renders q as a URL query string with keys in sorted order.
func (q Query) Encode() string {
	return q.Values().Encode()
}

// QueryFromValues keeps the first value of every key. Empty values are dropped.
func QueryFromValues(v url.Values) Query {
	q := make(Query, len(v))
	for k, vals := range v {
		if len(vals) > 0 && vals[0] != "" {
			q[k] = vals[0]
		}
	}
	return q
}

// ParseQuery parses a raw URL query string. Malformed pairs are skipped.
func ParseQuery(raw string) Query {
	v, _ := url.ParseQuery(raw)
	return QueryFromValues(v)
}

func SerializeEvents(f EventFilter) Query {
	q := Query{}
	setString(q, KeySearch, f.Search)
	setString(q, KeyLocation, f.Location)
	setString(q, KeyCategory, f.Category)
	if f.Date != nil {
		q[KeyDate] = f.Date.String()
	}
	if f.Sort.Valid() {
		q[KeySort] = string(f.Sort)
	}
	return q
}

func DeserializeEvents(q Query) EventFilter {
	f := EventFilter{
		Search:   q[KeySearch],
		Location: q[KeyLocation],
		Category: q[KeyCategory],
	}
	if raw, ok := q[KeyDate]; ok {
		if d, err := domain.ParseDay(raw); err == nil {
			f.Date = &d
		}
	}
	if s := EventSort(q[KeySort]); s.Valid() {
		f.Sort = s
	}
	return f
}

func SerializeClubs(f ClubFilter) Query {
	q := Query{}
	setString(q, KeySearch, f.Search)
	setString(q, KeyLocation, f.Location)
	if f.Rating != nil {
		q[KeyRating] = formatNumber(*f.Rating)
	}
	if f.Sort.Valid() {
		q[KeySort] = string(f.Sort)
	}
	return q
}

func DeserializeClubs(q Query) ClubFilter {
	f := ClubFilter{
		Search:   q[KeySearch],
		Location: q[KeyLocation],
	}
	if raw, ok := q[KeyRating]; ok {
		if v, ok := parseNumber(raw); ok {
			f.Rating = &v
		}
	}
	if s := ClubSort(q[KeySort]); s.Valid() {
		f.Sort = s
	}
	return f
}

func setString(q Query, key, val string) {
	if val != "" {
		q[key] = val
	}
}

// formatNumber renders the shortest decimal that parses back to v.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseNumber rejects anything that is not a finite decimal number.
func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
