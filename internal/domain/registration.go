package domain

import "time"

// Registration is a participant's enrollment record against one workshop.
type Registration struct {
	ID           int64
	WorkshopID   int64
	UserID       int64 // 0 for anonymous registrations via the public link
	Name         string
	Email        string
	Phone        string
	RegisteredAt time.Time

	Attended          bool
	FeedbackSubmitted bool
	Feedback          string
}
