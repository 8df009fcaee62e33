package domain

type Club struct {
	ID             string
	Name           string
	Description    string
	Location       string
	ImageURL       string
	Rating         float64 // 0..5
	UpcomingEvents int
}
