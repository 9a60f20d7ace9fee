package dto

import (
	"time"

	"github.com/mrpavithran/WorkShop/internal/domain"
)

// CreateWorkshopRequest payload.
type CreateWorkshopRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Price       float64 `json:"price"`
	Capacity    int     `json:"capacity"`
}

// WorkshopResponse public workshop representation.
type WorkshopResponse struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	Price           float64   `json:"price"`
	CreatorID       int64     `json:"creator_id"`
	Capacity        int       `json:"capacity"`
	RegisteredCount int       `json:"registered_count"`
	AvailableSpots  int       `json:"available_spots"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewWorkshopResponse maps a domain workshop.
func NewWorkshopResponse(w domain.Workshop) WorkshopResponse {
	return WorkshopResponse{
		ID:              w.ID,
		Title:           w.Title,
		Description:     w.Description,
		Date:            w.Date.Format("2006-01-02"),
		Time:            w.Time,
		Price:           w.Price,
		CreatorID:       w.CreatorID,
		Capacity:        w.Capacity,
		RegisteredCount: w.RegisteredCount,
		AvailableSpots:  w.AvailableSpots(),
		CreatedAt:       w.CreatedAt,
	}
}

// NewWorkshopResponses maps a workshop slice preserving order.
func NewWorkshopResponses(workshops []domain.Workshop) []WorkshopResponse {
	out := make([]WorkshopResponse, 0, len(workshops))
	for _, w := range workshops {
		out = append(out, NewWorkshopResponse(w))
	}
	return out
}

// CreatorDashboardResponse aggregates a creator's workshops.
type CreatorDashboardResponse struct {
	WorkshopCount     int                `json:"workshop_count"`
	TotalParticipants int                `json:"total_participants"`
	TotalRevenue      float64            `json:"total_revenue"`
	Workshops         []WorkshopResponse `json:"workshops"`
}

// ManagementViewResponse is the creator's per-workshop roster.
type ManagementViewResponse struct {
	Workshop       WorkshopResponse       `json:"workshop"`
	Registrations  []RegistrationResponse `json:"registrations"`
	AttendedCount  int                    `json:"attended_count"`
	FeedbackCount  int                    `json:"feedback_count"`
	AvailableSpots int                    `json:"available_spots"`
}
