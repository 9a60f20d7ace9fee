// Package ledger holds the authoritative in-memory collections of workshops,
// registrations and user accounts. The Store is the only mutation entry point;
// every operation is serialized by a single mutex and either applies fully or
// leaves the collections untouched. State lives for the lifetime of the
// process, there is no persistence behind it.
package ledger

import (
	"strings"
	"sync"
	"time"

	"github.com/mrpavithran/WorkShop/internal/domain"
	"github.com/mrpavithran/WorkShop/pkg/util/errorutil"
)

// Store owns the canonical workshop and registration records.
type Store struct {
	mu sync.Mutex

	workshops      []*domain.Workshop
	workshopByID   map[int64]*domain.Workshop
	registrations  []*domain.Registration
	registrationBy map[int64]*domain.Registration
	users          []*domain.User
	userByID       map[int64]*domain.User
	userByEmail    map[string]*domain.User

	nextWorkshopID     int64
	nextRegistrationID int64
	nextUserID         int64

	now func() time.Time
}

// NewStore initializes an empty ledger.
func NewStore() *Store {
	return &Store{
		workshopByID:   make(map[int64]*domain.Workshop),
		registrationBy: make(map[int64]*domain.Registration),
		userByID:       make(map[int64]*domain.User),
		userByEmail:    make(map[string]*domain.User),
		now:            time.Now,
	}
}

// CreateWorkshop assigns a new id, zeroes the registration count and records
// the workshop. Input validation is the caller's responsibility.
func (s *Store) CreateWorkshop(w domain.Workshop) domain.Workshop {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextWorkshopID++
	w.ID = s.nextWorkshopID
	w.RegisteredCount = 0
	w.CreatedAt = s.now()

	stored := w
	s.workshops = append(s.workshops, &stored)
	s.workshopByID[stored.ID] = &stored
	return stored
}

// GetWorkshop returns the workshop by id.
func (s *Store) GetWorkshop(id int64) (domain.Workshop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.workshopByID[id]
	if !ok {
		return domain.Workshop{}, errorutil.NewNotFound("workshop", map[string]any{"workshop_id": id})
	}
	return *w, nil
}

// ListWorkshops returns all workshops in insertion order.
func (s *Store) ListWorkshops() []domain.Workshop {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Workshop, 0, len(s.workshops))
	for _, w := range s.workshops {
		out = append(out, *w)
	}
	return out
}

// WorkshopsByCreator returns the creator's workshops in insertion order.
func (s *Store) WorkshopsByCreator(creatorID int64) []domain.Workshop {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Workshop
	for _, w := range s.workshops {
		if w.CreatorID == creatorID {
			out = append(out, *w)
		}
	}
	return out
}

// RegisterParticipant appends a registration and increments the workshop's
// registered count in the same critical section. It rejects unknown workshops,
// full workshops and duplicate emails per workshop, leaving the ledger
// unchanged in every failure case.
func (s *Store) RegisterParticipant(workshopID int64, reg domain.Registration) (domain.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.workshopByID[workshopID]
	if !ok {
		return domain.Registration{}, errorutil.NewNotFound("workshop", map[string]any{"workshop_id": workshopID})
	}
	if w.RegisteredCount >= w.Capacity {
		return domain.Registration{}, errorutil.NewCapacityExceeded(workshopID, w.Capacity)
	}
	email := strings.ToLower(strings.TrimSpace(reg.Email))
	for _, existing := range s.registrations {
		if existing.WorkshopID == workshopID && strings.EqualFold(existing.Email, email) {
			return domain.Registration{}, errorutil.NewAlreadyRegistered(workshopID, email)
		}
	}

	s.nextRegistrationID++
	reg.ID = s.nextRegistrationID
	reg.WorkshopID = workshopID
	reg.Email = email
	reg.RegisteredAt = s.now()
	reg.Attended = false
	reg.FeedbackSubmitted = false
	reg.Feedback = ""

	stored := reg
	s.registrations = append(s.registrations, &stored)
	s.registrationBy[stored.ID] = &stored
	w.RegisteredCount++
	return stored, nil
}

// SetAttendance idempotently sets the attended flag. The toggle is reversible.
func (s *Store) SetAttendance(registrationID int64, attended bool) (domain.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reg, ok := s.registrationBy[registrationID]
	if !ok {
		return domain.Registration{}, errorutil.NewNotFound("registration", map[string]any{"registration_id": registrationID})
	}
	reg.Attended = attended
	return *reg, nil
}

// SubmitFeedback records feedback text exactly once per registration.
// Resubmission is rejected, the first submission stands.
func (s *Store) SubmitFeedback(registrationID int64, feedback string) (domain.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reg, ok := s.registrationBy[registrationID]
	if !ok {
		return domain.Registration{}, errorutil.NewNotFound("registration", map[string]any{"registration_id": registrationID})
	}
	if reg.FeedbackSubmitted {
		return domain.Registration{}, errorutil.NewAlreadySubmitted(registrationID)
	}
	reg.Feedback = feedback
	reg.FeedbackSubmitted = true
	return *reg, nil
}

// GetRegistration returns the registration by id.
func (s *Store) GetRegistration(id int64) (domain.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reg, ok := s.registrationBy[id]
	if !ok {
		return domain.Registration{}, errorutil.NewNotFound("registration", map[string]any{"registration_id": id})
	}
	return *reg, nil
}

// RegistrationsForWorkshop returns registrations in insertion order.
func (s *Store) RegistrationsForWorkshop(workshopID int64) []domain.Registration {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Registration
	for _, reg := range s.registrations {
		if reg.WorkshopID == workshopID {
			out = append(out, *reg)
		}
	}
	return out
}

// RegistrationsForUser returns registrations carrying the canonical user id.
// Anonymous registrations (UserID zero) are never matched.
func (s *Store) RegistrationsForUser(userID int64) []domain.Registration {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Registration
	if userID == 0 {
		return out
	}
	for _, reg := range s.registrations {
		if reg.UserID == userID {
			out = append(out, *reg)
		}
	}
	return out
}

// CreateUser records a new account. Emails are unique across the ledger.
func (s *Store) CreateUser(u domain.User) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(strings.TrimSpace(u.Email))
	if _, exists := s.userByEmail[email]; exists {
		return domain.User{}, errorutil.NewConflict("email already in use", map[string]any{"email": email})
	}

	s.nextUserID++
	u.ID = s.nextUserID
	u.Email = email
	u.CreatedAt = s.now()

	stored := u
	s.users = append(s.users, &stored)
	s.userByID[stored.ID] = &stored
	s.userByEmail[stored.Email] = &stored
	return stored, nil
}

// GetUser returns the account by id.
func (s *Store) GetUser(id int64) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.userByID[id]
	if !ok {
		return domain.User{}, errorutil.NewNotFound("user", map[string]any{"user_id": id})
	}
	return *u, nil
}

// GetUserByEmail returns the account by email.
func (s *Store) GetUserByEmail(email string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.userByEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return domain.User{}, errorutil.NewNotFound("user", map[string]any{"email": email})
	}
	return *u, nil
}

// Stats summarizes ledger population for health reporting.
type Stats struct {
	Workshops     int
	Registrations int
	Users         int
}

// Stats returns current collection sizes.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Stats{
		Workshops:     len(s.workshops),
		Registrations: len(s.registrations),
		Users:         len(s.users),
	}
}
