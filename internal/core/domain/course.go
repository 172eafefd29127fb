package domain

import (
	"errors"
	"time"
)

var ErrCourseNotFound = errors.New("course not found")

// Course is a catalog entry created and maintained by a single admin.
// Updates are full-field overwrites and are only applied when the updating
// admin is the creator.
type Course struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Price       float64   `json:"price"`
	CreatorID   string    `json:"creatorId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
