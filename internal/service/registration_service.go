package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/mrpavithran/WorkShop/internal/domain"
	"github.com/mrpavithran/WorkShop/internal/events"
	"github.com/mrpavithran/WorkShop/internal/ledger"
	"github.com/mrpavithran/WorkShop/pkg/util/errorutil"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RegistrationService coordinates registration state transitions.
type RegistrationService struct {
	store      *ledger.Store
	dispatcher events.Dispatcher
}

// RegistrationDependencies bundles collaborators for the registration service.
type RegistrationDependencies struct {
	Store      *ledger.Store
	Dispatcher events.Dispatcher
}

// NewRegistrationService constructs the service.
func NewRegistrationService(deps RegistrationDependencies) *RegistrationService {
	return &RegistrationService{store: deps.Store, dispatcher: deps.Dispatcher}
}

// ParticipantInput describes the contact info captured at registration time.
type ParticipantInput struct {
	Name  string
	Email string
	Phone string
	// UserID links the registration to an account when the participant is
	// logged in; zero for anonymous registrations via the public link.
	UserID int64
}

// Register validates participant data and appends a registration. The ledger
// enforces capacity and the duplicate-email guard atomically.
func (s *RegistrationService) Register(ctx context.Context, workshopID int64, input ParticipantInput) (domain.Registration, error) {
	details := map[string]any{}
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	phone := strings.TrimSpace(input.Phone)
	if name == "" {
		details["name"] = "name is required"
	}
	if email == "" {
		details["email"] = "email is required"
	} else if !emailPattern.MatchString(email) {
		details["email"] = "please enter a valid email address"
	}
	if phone == "" {
		details["phone"] = "phone is required"
	}
	if len(details) > 0 {
		return domain.Registration{}, errorutil.NewValidationError("invalid participant data", details)
	}

	registration, err := s.store.RegisterParticipant(workshopID, domain.Registration{
		UserID: input.UserID,
		Name:   name,
		Email:  email,
		Phone:  phone,
	})
	if err != nil {
		return domain.Registration{}, err
	}

	workshop, err := s.store.GetWorkshop(workshopID)
	if err == nil {
		s.publish(ctx, events.Event{
			Type:       events.EventParticipantRegistered,
			WorkshopID: workshopID,
			Payload: events.ParticipantRegisteredPayload{
				RegistrationID: registration.ID,
				ParticipantID:  registration.UserID,
				Email:          registration.Email,
				SpotsLeft:      workshop.AvailableSpots(),
			},
		})
	}
	return registration, nil
}

// SetAttendance toggles the attended flag. Only the creator of the referenced
// workshop may do so; the toggle is idempotent and reversible.
func (s *RegistrationService) SetAttendance(ctx context.Context, creatorID, registrationID int64, attended bool) (domain.Registration, error) {
	registration, err := s.store.GetRegistration(registrationID)
	if err != nil {
		return domain.Registration{}, err
	}
	workshop, err := s.store.GetWorkshop(registration.WorkshopID)
	if err != nil {
		return domain.Registration{}, err
	}
	if workshop.CreatorID != creatorID {
		return domain.Registration{}, errorutil.NewForbidden("only the workshop creator may update attendance")
	}

	updated, err := s.store.SetAttendance(registrationID, attended)
	if err != nil {
		return domain.Registration{}, err
	}
	s.publish(ctx, events.Event{
		Type:       events.EventAttendanceUpdated,
		WorkshopID: updated.WorkshopID,
		Payload: events.AttendanceUpdatedPayload{
			RegistrationID: updated.ID,
			Attended:       updated.Attended,
			UpdatedBy:      creatorID,
		},
	})
	return updated, nil
}

// SubmitFeedback records feedback once on the caller's own registration.
func (s *RegistrationService) SubmitFeedback(ctx context.Context, userID, registrationID int64, feedback string) (domain.Registration, error) {
	feedback = strings.TrimSpace(feedback)
	if feedback == "" {
		return domain.Registration{}, errorutil.NewValidationError("feedback text is required", nil)
	}

	registration, err := s.store.GetRegistration(registrationID)
	if err != nil {
		return domain.Registration{}, err
	}
	if registration.UserID != userID {
		return domain.Registration{}, errorutil.NewForbidden("registration belongs to another participant")
	}

	updated, err := s.store.SubmitFeedback(registrationID, feedback)
	if err != nil {
		return domain.Registration{}, err
	}
	s.publish(ctx, events.Event{
		Type:       events.EventFeedbackSubmitted,
		WorkshopID: updated.WorkshopID,
		Payload: events.FeedbackSubmittedPayload{
			RegistrationID: updated.ID,
			Preview:        events.Preview(updated.Feedback, 120),
		},
	})
	return updated, nil
}

// GetRegistration returns a registration by id.
func (s *RegistrationService) GetRegistration(id int64) (domain.Registration, error) {
	return s.store.GetRegistration(id)
}

func (s *RegistrationService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
