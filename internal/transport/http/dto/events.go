package dto

import "time"

type CreateEventReq struct {
	Title       string     `json:"title" validate:"required,max=120"`
	Description string     `json:"description" validate:"max=4000"`
	Location    string     `json:"location" validate:"required,max=120"`
	DateTime    *time.Time `json:"date_time" validate:"required"`
	ImageURL    string     `json:"image_url" validate:"omitempty,url"`
	Category    string     `json:"category" validate:"max=40"`
	Price       *float64   `json:"price" validate:"omitempty,gte=0"`
	Attendees   *int       `json:"attendees" validate:"omitempty,gte=0"`
	IsHot       bool       `json:"is_hot"`
}
