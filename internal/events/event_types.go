package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventWorkshopCreated       EventType = "workshop_created"
	EventParticipantRegistered EventType = "participant_registered"
	EventAttendanceUpdated     EventType = "attendance_updated"
	EventFeedbackSubmitted     EventType = "feedback_submitted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	WorkshopID int64       `json:"workshop_id"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload"`
}

// WorkshopCreatedPayload payload.
type WorkshopCreatedPayload struct {
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	Price     float64   `json:"price"`
	Capacity  int       `json:"capacity"`
	CreatorID int64     `json:"creator_id"`
}

// ParticipantRegisteredPayload payload.
type ParticipantRegisteredPayload struct {
	RegistrationID int64  `json:"registration_id"`
	ParticipantID  int64  `json:"participant_id,omitempty"`
	Email          string `json:"email"`
	SpotsLeft      int    `json:"spots_left"`
}

// AttendanceUpdatedPayload payload.
type AttendanceUpdatedPayload struct {
	RegistrationID int64 `json:"registration_id"`
	Attended       bool  `json:"attended"`
	UpdatedBy      int64 `json:"updated_by"`
}

// FeedbackSubmittedPayload payload.
type FeedbackSubmittedPayload struct {
	RegistrationID int64  `json:"registration_id"`
	Preview        string `json:"preview"`
}

// Preview trims text for event payloads.
func Preview(text string, max int) string {
	if len(text) <= max {
		return text
	}
	return text[:max]
}
