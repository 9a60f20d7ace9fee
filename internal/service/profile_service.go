package service

import (
	"time"

	"github.com/mrpavithran/WorkShop/internal/domain"
	"github.com/mrpavithran/WorkShop/internal/ledger"
)

// ProfileService derives a participant's workshop history from the ledger.
type ProfileService struct {
	store *ledger.Store
	now   func() time.Time
}

// NewProfileService constructs the service.
func NewProfileService(store *ledger.Store) *ProfileService {
	return &ProfileService{store: store, now: time.Now}
}

// RegisteredWorkshop pairs a registration with its workshop.
type RegisteredWorkshop struct {
	Workshop     domain.Workshop
	Registration domain.Registration
}

// History partitions a participant's registered workshops by date.
type History struct {
	Upcoming       []RegisteredWorkshop
	Past           []RegisteredWorkshop
	Attended       []RegisteredWorkshop
	TotalSpent     float64
	CompletedCount int
}

// HistoryForUser returns the participant's registrations joined with their
// workshops, partitioned into upcoming and past at call time. Attended is the
// subset of past workshops whose registration carries the attended flag.
// TotalSpent sums list prices independent of attendance.
func (s *ProfileService) HistoryForUser(userID int64) History {
	return s.historyAt(userID, s.now())
}

func (s *ProfileService) historyAt(userID int64, now time.Time) History {
	var history History
	today := now.Truncate(24 * time.Hour)

	for _, reg := range s.store.RegistrationsForUser(userID) {
		workshop, err := s.store.GetWorkshop(reg.WorkshopID)
		if err != nil {
			continue
		}
		entry := RegisteredWorkshop{Workshop: workshop, Registration: reg}
		history.TotalSpent += workshop.Price

		if workshop.Date.Before(today) {
			history.Past = append(history.Past, entry)
			if reg.Attended {
				history.Attended = append(history.Attended, entry)
			}
		} else {
			history.Upcoming = append(history.Upcoming, entry)
		}
	}
	history.CompletedCount = len(history.Attended)
	return history
}
