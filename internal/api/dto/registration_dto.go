package dto

import (
	"time"

	"github.com/mrpavithran/WorkShop/internal/domain"
)

// RegisterParticipantRequest payload.
type RegisterParticipantRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// AttendanceRequest payload.
type AttendanceRequest struct {
	Attended bool `json:"attended"`
}

// FeedbackRequest payload.
type FeedbackRequest struct {
	Feedback string `json:"feedback"`
}

// RegistrationResponse public registration representation.
type RegistrationResponse struct {
	ID                int64     `json:"id"`
	WorkshopID        int64     `json:"workshop_id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	RegisteredAt      time.Time `json:"registered_at"`
	Attended          bool      `json:"attended"`
	FeedbackSubmitted bool      `json:"feedback_submitted"`
	Feedback          string    `json:"feedback,omitempty"`
}

// NewRegistrationResponse maps a domain registration.
func NewRegistrationResponse(r domain.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:                r.ID,
		WorkshopID:        r.WorkshopID,
		Name:              r.Name,
		Email:             r.Email,
		Phone:             r.Phone,
		RegisteredAt:      r.RegisteredAt,
		Attended:          r.Attended,
		FeedbackSubmitted: r.FeedbackSubmitted,
		Feedback:          r.Feedback,
	}
}

// NewRegistrationResponses maps a registration slice preserving order.
func NewRegistrationResponses(regs []domain.Registration) []RegistrationResponse {
	out := make([]RegistrationResponse, 0, len(regs))
	for _, r := range regs {
		out = append(out, NewRegistrationResponse(r))
	}
	return out
}

// RegisteredWorkshopResponse pairs a workshop with the caller's registration.
type RegisteredWorkshopResponse struct {
	Workshop     WorkshopResponse     `json:"workshop"`
	Registration RegistrationResponse `json:"registration"`
}

// ProfileResponse is the participant's workshop history.
type ProfileResponse struct {
	User           UserResponse                 `json:"user"`
	Upcoming       []RegisteredWorkshopResponse `json:"upcoming"`
	Past           []RegisteredWorkshopResponse `json:"past"`
	Attended       []RegisteredWorkshopResponse `json:"attended"`
	TotalSpent     float64                      `json:"total_spent"`
	CompletedCount int                          `json:"completed_count"`
}
