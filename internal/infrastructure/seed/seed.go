package seed

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/partytracker/party-service/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultCatalog []byte

// Accepted date_time layouts. The offset-less form is read in the caller's zone.
var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"}

type eventRecord struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Location    string   `yaml:"location"`
	DateTime    string   `yaml:"date_time"`
	ImageURL    string   `yaml:"image_url"`
	Category    string   `yaml:"category"`
	Price       *float64 `yaml:"price"`
	Attendees   *int     `yaml:"attendees"`
	IsHot       bool     `yaml:"is_hot"`
}

type clubRecord struct {
	ID             string  `yaml:"id"`
	Name           string  `yaml:"name"`
	Description    string  `yaml:"description"`
	Location       string  `yaml:"location"`
	ImageURL       string  `yaml:"image_url"`
	Rating         float64 `yaml:"rating"`
	UpcomingEvents int     `yaml:"upcoming_events"`
}

type file struct {
	Events []eventRecord `yaml:"events"`
	Clubs  []clubRecord  `yaml:"clubs"`
}

// Catalog is a parsed seed file in file order.
type Catalog struct {
	Events []domain.Event
	Clubs  []domain.Club
}

// Default returns the embedded catalog.
func Default(loc *time.Location) (Catalog, error) {
	return Parse(defaultCatalog, loc)
}

// Load reads path, or the embedded catalog when path is empty.
func Load(path string, loc *time.Location) (Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default(loc)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(b, loc)
}

func Parse(b []byte, loc *time.Location) (Catalog, error) {
	if loc == nil {
		loc = time.Local
	}
	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		return Catalog{}, fmt.Errorf("parse seed: %w", err)
	}

	cat := Catalog{
		Events: make([]domain.Event, 0, len(f.Events)),
		Clubs:  make([]domain.Club, 0, len(f.Clubs)),
	}

	seen := map[string]bool{}
	for i, r := range f.Events {
		e, err := r.toDomain(loc)
		if err != nil {
			return Catalog{}, fmt.Errorf("events[%d]: %w", i, err)
		}
		if seen["e:"+e.ID] {
			return Catalog{}, fmt.Errorf("events[%d]: duplicate id %q", i, e.ID)
		}
		seen["e:"+e.ID] = true
		cat.Events = append(cat.Events, e)
	}
	for i, r := range f.Clubs {
		c, err := r.toDomain()
		if err != nil {
			return Catalog{}, fmt.Errorf("clubs[%d]: %w", i, err)
		}
		if seen["c:"+c.ID] {
			return Catalog{}, fmt.Errorf("clubs[%d]: duplicate id %q", i, c.ID)
		}
		seen["c:"+c.ID] = true
		cat.Clubs = append(cat.Clubs, c)
	}
	return cat, nil
}

func (r eventRecord) toDomain(loc *time.Location) (domain.Event, error) {
	if strings.TrimSpace(r.ID) == "" {
		return domain.Event{}, fmt.Errorf("missing id")
	}
	if strings.TrimSpace(r.Title) == "" || strings.TrimSpace(r.Location) == "" {
		return domain.Event{}, fmt.Errorf("event %q: title and location are required", r.ID)
	}
	dt, err := parseDateTime(r.DateTime, loc)
	if err != nil {
		return domain.Event{}, fmt.Errorf("event %q: %w", r.ID, err)
	}
	if r.Price != nil && *r.Price < 0 {
		return domain.Event{}, fmt.Errorf("event %q: negative price", r.ID)
	}
	if r.Attendees != nil && *r.Attendees < 0 {
		return domain.Event{}, fmt.Errorf("event %q: negative attendees", r.ID)
	}
	return domain.Event{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		DateTime:    dt,
		ImageURL:    r.ImageURL,
		Category:    strings.ToLower(r.Category),
		Price:       r.Price,
		Attendees:   r.Attendees,
		IsHot:       r.IsHot,
	}, nil
}

func (r clubRecord) toDomain() (domain.Club, error) {
	if strings.TrimSpace(r.ID) == "" {
		return domain.Club{}, fmt.Errorf("missing id")
	}
	if strings.TrimSpace(r.Name) == "" {
		return domain.Club{}, fmt.Errorf("club %q: name is required", r.ID)
	}
	if r.Rating < 0 || r.Rating > 5 {
		return domain.Club{}, fmt.Errorf("club %q: rating %v out of range [0,5]", r.ID, r.Rating)
	}
	if r.UpcomingEvents < 0 {
		return domain.Club{}, fmt.Errorf("club %q: negative upcoming_events", r.ID)
	}
	return domain.Club{
		ID:             r.ID,
		Name:           r.Name,
		Description:    r.Description,
		Location:       r.Location,
		ImageURL:       r.ImageURL,
		Rating:         r.Rating,
		UpcomingEvents: r.UpcomingEvents,
	}, nil
}

func parseDateTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("missing date_time")
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date_time %q", s)
}
