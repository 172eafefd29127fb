package domain

import "time"

// Purchase links a user to a course they bought. Records are append-only;
// nothing ever mutates or deletes them. No payment check backs the link.
type Purchase struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	CourseID  string    `json:"courseId"`
	CreatedAt time.Time `json:"createdAt"`
}
