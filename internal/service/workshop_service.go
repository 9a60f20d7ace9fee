package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/mrpavithran/WorkShop/internal/domain"
	"github.com/mrpavithran/WorkShop/internal/events"
	"github.com/mrpavithran/WorkShop/internal/ledger"
	"github.com/mrpavithran/WorkShop/pkg/util/errorutil"
)

// WorkshopService coordinates workshop creation and read-side derivations.
type WorkshopService struct {
	store      *ledger.Store
	dispatcher events.Dispatcher
	now        func() time.Time
}

// WorkshopDependencies bundles collaborators for the workshop service.
type WorkshopDependencies struct {
	Store      *ledger.Store
	Dispatcher events.Dispatcher
}

// NewWorkshopService constructs the service.
func NewWorkshopService(deps WorkshopDependencies) *WorkshopService {
	return &WorkshopService{
		store:      deps.Store,
		dispatcher: deps.Dispatcher,
		now:        time.Now,
	}
}

// WorkshopCreateInput describes workshop creation payload.
type WorkshopCreateInput struct {
	Title       string
	Description string
	Date        string // 2006-01-02
	Time        string // wall-clock, e.g. "10:00"
	Price       float64
	Capacity    int
}

// CreateWorkshop validates input and records a new workshop for the creator.
func (s *WorkshopService) CreateWorkshop(ctx context.Context, creatorID int64, input WorkshopCreateInput) (domain.Workshop, error) {
	details := map[string]any{}
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" {
		details["title"] = "workshop title is required"
	}
	if description == "" {
		details["description"] = "description is required"
	}
	if input.Price < 0 {
		details["price"] = "price must not be negative"
	}
	if input.Capacity <= 0 {
		details["capacity"] = "capacity must be a positive integer"
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		details["date"] = "date must be formatted as YYYY-MM-DD"
	} else {
		today := s.now().Truncate(24 * time.Hour)
		if date.Before(today) {
			details["date"] = "workshop date must be in the future"
		}
	}
	if len(details) > 0 {
		return domain.Workshop{}, errorutil.NewValidationError("invalid workshop", details)
	}

	workshop := s.store.CreateWorkshop(domain.Workshop{
		Title:       title,
		Description: description,
		Date:        date,
		Time:        strings.TrimSpace(input.Time),
		Price:       input.Price,
		CreatorID:   creatorID,
		Capacity:    input.Capacity,
	})

	s.publish(ctx, events.Event{
		Type:       events.EventWorkshopCreated,
		WorkshopID: workshop.ID,
		Payload: events.WorkshopCreatedPayload{
			Title:     workshop.Title,
			Date:      workshop.Date,
			Price:     workshop.Price,
			Capacity:  workshop.Capacity,
			CreatorID: workshop.CreatorID,
		},
	})
	return workshop, nil
}

// GetWorkshop returns a single workshop.
func (s *WorkshopService) GetWorkshop(id int64) (domain.Workshop, error) {
	return s.store.GetWorkshop(id)
}

// PriceFilterKind enumerates price filter options.
type PriceFilterKind string

const (
	PriceAll  PriceFilterKind = "all"
	PriceFree PriceFilterKind = "free"
	PricePaid PriceFilterKind = "paid"
	// PriceUnder and PriceOver carry a threshold, e.g. "under-100" / "over-100".
	PriceUnder PriceFilterKind = "under"
	PriceOver  PriceFilterKind = "over"
)

// DateFilterKind enumerates date filter options.
type DateFilterKind string

const (
	DateAll       DateFilterKind = "all"
	DateUpcoming  DateFilterKind = "upcoming"
	DateThisMonth DateFilterKind = "this-month"
)

// ListFilter configures workshop listing.
type ListFilter struct {
	SearchText     string
	Price          PriceFilterKind
	PriceThreshold float64
	Date           DateFilterKind
	Now            time.Time
}

// ParseListFilter builds a ListFilter from raw query values. Unrecognized
// values fall back to "all" rather than erroring, matching lenient UI filters.
func ParseListFilter(search, price, date string) ListFilter {
	filter := ListFilter{
		SearchText: strings.TrimSpace(search),
		Price:      PriceAll,
		Date:       DateAll,
		Now:        time.Now(),
	}

	switch {
	case price == "" || price == string(PriceAll):
	case price == string(PriceFree):
		filter.Price = PriceFree
	case price == string(PricePaid):
		filter.Price = PricePaid
	case strings.HasPrefix(price, "under-"):
		if n, err := strconv.ParseFloat(strings.TrimPrefix(price, "under-"), 64); err == nil {
			filter.Price = PriceUnder
			filter.PriceThreshold = n
		}
	case strings.HasPrefix(price, "over-"):
		if n, err := strconv.ParseFloat(strings.TrimPrefix(price, "over-"), 64); err == nil {
			filter.Price = PriceOver
			filter.PriceThreshold = n
		}
	}

	switch DateFilterKind(date) {
	case DateUpcoming:
		filter.Date = DateUpcoming
	case DateThisMonth:
		filter.Date = DateThisMonth
	}
	return filter
}

// ListWorkshops returns workshops matching the filter, in insertion order.
func (s *WorkshopService) ListWorkshops(filter ListFilter) []domain.Workshop {
	now := filter.Now
	if now.IsZero() {
		now = s.now()
	}
	search := strings.ToLower(filter.SearchText)

	var out []domain.Workshop
	for _, w := range s.store.ListWorkshops() {
		if search != "" &&
			!strings.Contains(strings.ToLower(w.Title), search) &&
			!strings.Contains(strings.ToLower(w.Description), search) {
			continue
		}
		if !matchesPrice(w.Price, filter) {
			continue
		}
		if !matchesDate(w.Date, filter.Date, now) {
			continue
		}
		out = append(out, w)
	}
	return out
}

func matchesPrice(price float64, filter ListFilter) bool {
	switch filter.Price {
	case PriceFree:
		return price == 0
	case PricePaid:
		return price > 0
	case PriceUnder:
		return price < filter.PriceThreshold
	case PriceOver:
		return price >= filter.PriceThreshold
	default:
		return true
	}
}

func matchesDate(date time.Time, kind DateFilterKind, now time.Time) bool {
	switch kind {
	case DateUpcoming:
		return !date.Before(now.Truncate(24 * time.Hour))
	case DateThisMonth:
		return date.Year() == now.Year() && date.Month() == now.Month()
	default:
		return true
	}
}

// WorkshopsByCreator returns the creator's workshops in insertion order.
func (s *WorkshopService) WorkshopsByCreator(creatorID int64) []domain.Workshop {
	return s.store.WorkshopsByCreator(creatorID)
}

// CreatorStats aggregates a creator's workshops.
type CreatorStats struct {
	WorkshopCount     int
	TotalParticipants int
	TotalRevenue      float64
}

// AggregateForCreator computes dashboard totals across the creator's workshops.
func (s *WorkshopService) AggregateForCreator(creatorID int64) CreatorStats {
	var stats CreatorStats
	for _, w := range s.store.WorkshopsByCreator(creatorID) {
		stats.WorkshopCount++
		stats.TotalParticipants += w.RegisteredCount
		stats.TotalRevenue += w.Revenue()
	}
	return stats
}

// ManagementView is the creator's per-workshop roster.
type ManagementView struct {
	Workshop       domain.Workshop
	Registrations  []domain.Registration
	AttendedCount  int
	FeedbackCount  int
	AvailableSpots int
}

// ManageWorkshop returns the roster for a workshop owned by the creator.
func (s *WorkshopService) ManageWorkshop(creatorID, workshopID int64) (ManagementView, error) {
	workshop, err := s.store.GetWorkshop(workshopID)
	if err != nil {
		return ManagementView{}, err
	}
	if workshop.CreatorID != creatorID {
		return ManagementView{}, errorutil.NewForbidden("workshop belongs to another creator")
	}

	view := ManagementView{
		Workshop:       workshop,
		Registrations:  s.store.RegistrationsForWorkshop(workshopID),
		AvailableSpots: workshop.AvailableSpots(),
	}
	for _, reg := range view.Registrations {
		if reg.Attended {
			view.AttendedCount++
		}
		if reg.FeedbackSubmitted {
			view.FeedbackCount++
		}
	}
	return view, nil
}

func (s *WorkshopService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
