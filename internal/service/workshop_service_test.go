package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mrpavithran/WorkShop/internal/domain"
	"github.com/mrpavithran/WorkShop/internal/events"
	"github.com/mrpavithran/WorkShop/internal/ledger"
	"github.com/mrpavithran/WorkShop/pkg/util/errorutil"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestWorkshopService(store *ledger.Store, dispatcher events.Dispatcher) *WorkshopService {
	svc := NewWorkshopService(WorkshopDependencies{Store: store, Dispatcher: dispatcher})
	svc.now = func() time.Time { return testNow }
	return svc
}

func validCreateInput() WorkshopCreateInput {
	return WorkshopCreateInput{
		Title:       "Intro to X",
		Description: "Learn X from scratch",
		Date:        "2030-01-01",
		Time:        "10:00",
		Price:       100,
		Capacity:    2,
	}
}

func TestCreateWorkshopValidation(t *testing.T) {
	svc := newTestWorkshopService(ledger.NewStore(), nil)

	cases := []struct {
		name   string
		mutate func(*WorkshopCreateInput)
		field  string
	}{
		{"empty title", func(in *WorkshopCreateInput) { in.Title = "  " }, "title"},
		{"empty description", func(in *WorkshopCreateInput) { in.Description = "" }, "description"},
		{"negative price", func(in *WorkshopCreateInput) { in.Price = -1 }, "price"},
		{"zero capacity", func(in *WorkshopCreateInput) { in.Capacity = 0 }, "capacity"},
		{"malformed date", func(in *WorkshopCreateInput) { in.Date = "01/01/2030" }, "date"},
		{"past date", func(in *WorkshopCreateInput) { in.Date = "2020-01-01" }, "date"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validCreateInput()
			tc.mutate(&input)

			_, err := svc.CreateWorkshop(context.Background(), 1, input)
			require.True(t, errorutil.HasCode(err, "VALIDATION_FAILED"))
			domainErr := errorutil.ToDomainError(err)
			require.Contains(t, domainErr.Details, tc.field)
		})
	}
}

func TestCreateWorkshopPublishesEvent(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	var seen []events.EventType
	dispatcher.Subscribe(events.EventWorkshopCreated, func(ctx context.Context, e events.Event) error {
		seen = append(seen, e.Type)
		return nil
	})

	svc := newTestWorkshopService(ledger.NewStore(), dispatcher)
	workshop, err := svc.CreateWorkshop(context.Background(), 1, validCreateInput())
	require.NoError(t, err)
	require.Equal(t, int64(1), workshop.ID)
	require.Equal(t, []events.EventType{events.EventWorkshopCreated}, seen)
}

func TestListWorkshopsFilters(t *testing.T) {
	store := ledger.NewStore()
	svc := newTestWorkshopService(store, nil)

	// Seeded via the store so past dates are allowed.
	free := store.CreateWorkshop(domain.Workshop{
		Title: "Community Meetup", Description: "Free for everyone",
		Date: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), Price: 0, CreatorID: 1, Capacity: 100,
	})
	premium := store.CreateWorkshop(domain.Workshop{
		Title: "React Advanced Patterns", Description: "Deep dive",
		Date: time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), Price: 199, CreatorID: 1, Capacity: 50,
	})
	archived := store.CreateWorkshop(domain.Workshop{
		Title: "Legacy Tooling", Description: "Archived session",
		Date: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), Price: 50, CreatorID: 1, Capacity: 30,
	})

	baseFilter := func() ListFilter {
		return ListFilter{Price: PriceAll, Date: DateAll, Now: testNow}
	}
	ids := func(ws []domain.Workshop) []int64 {
		out := make([]int64, 0, len(ws))
		for _, w := range ws {
			out = append(out, w.ID)
		}
		return out
	}

	t.Run("no filter keeps insertion order", func(t *testing.T) {
		require.Equal(t, []int64{free.ID, premium.ID, archived.ID}, ids(svc.ListWorkshops(baseFilter())))
	})

	t.Run("free", func(t *testing.T) {
		filter := baseFilter()
		filter.Price = PriceFree
		require.Equal(t, []int64{free.ID}, ids(svc.ListWorkshops(filter)))
	})

	t.Run("paid", func(t *testing.T) {
		filter := baseFilter()
		filter.Price = PricePaid
		require.Equal(t, []int64{premium.ID, archived.ID}, ids(svc.ListWorkshops(filter)))
	})

	t.Run("under threshold", func(t *testing.T) {
		filter := baseFilter()
		filter.Price = PriceUnder
		filter.PriceThreshold = 100
		require.Equal(t, []int64{free.ID, archived.ID}, ids(svc.ListWorkshops(filter)))
	})

	t.Run("at or over threshold", func(t *testing.T) {
		filter := baseFilter()
		filter.Price = PriceOver
		filter.PriceThreshold = 100
		require.Equal(t, []int64{premium.ID}, ids(svc.ListWorkshops(filter)))
	})

	t.Run("upcoming", func(t *testing.T) {
		filter := baseFilter()
		filter.Date = DateUpcoming
		require.Equal(t, []int64{free.ID, premium.ID}, ids(svc.ListWorkshops(filter)))
	})

	t.Run("this month", func(t *testing.T) {
		filter := baseFilter()
		filter.Date = DateThisMonth
		require.Equal(t, []int64{premium.ID}, ids(svc.ListWorkshops(filter)))
	})

	t.Run("search is case-insensitive over title and description", func(t *testing.T) {
		filter := baseFilter()
		filter.SearchText = "react"
		require.Equal(t, []int64{premium.ID}, ids(svc.ListWorkshops(filter)))

		filter.SearchText = "ARCHIVED"
		require.Equal(t, []int64{archived.ID}, ids(svc.ListWorkshops(filter)))
	})
}

func TestParseListFilter(t *testing.T) {
	filter := ParseListFilter(" react ", "under-100", "upcoming")
	require.Equal(t, "react", filter.SearchText)
	require.Equal(t, PriceUnder, filter.Price)
	require.Equal(t, float64(100), filter.PriceThreshold)
	require.Equal(t, DateUpcoming, filter.Date)

	filter = ParseListFilter("", "over-250", "this-month")
	require.Equal(t, PriceOver, filter.Price)
	require.Equal(t, float64(250), filter.PriceThreshold)
	require.Equal(t, DateThisMonth, filter.Date)

	filter = ParseListFilter("", "bogus", "someday")
	require.Equal(t, PriceAll, filter.Price)
	require.Equal(t, DateAll, filter.Date)
}

// Scenario from the product brief: one workshop, capacity 2, price 100.
func TestCreatorScenario(t *testing.T) {
	store := ledger.NewStore()
	svc := newTestWorkshopService(store, nil)
	regSvc := NewRegistrationService(RegistrationDependencies{Store: store})

	workshop, err := svc.CreateWorkshop(context.Background(), 1, validCreateInput())
	require.NoError(t, err)

	_, err = regSvc.Register(context.Background(), workshop.ID, ParticipantInput{
		Name: "First", Email: "first@example.com", Phone: "555-0001",
	})
	require.NoError(t, err)
	_, err = regSvc.Register(context.Background(), workshop.ID, ParticipantInput{
		Name: "Second", Email: "second@example.com", Phone: "555-0002",
	})
	require.NoError(t, err)

	current, err := svc.GetWorkshop(workshop.ID)
	require.NoError(t, err)
	require.Equal(t, 2, current.RegisteredCount)
	require.Zero(t, current.AvailableSpots())

	_, err = regSvc.Register(context.Background(), workshop.ID, ParticipantInput{
		Name: "Third", Email: "third@example.com", Phone: "555-0003",
	})
	require.True(t, errorutil.HasCode(err, "CAPACITY_EXCEEDED"))

	stats := svc.AggregateForCreator(1)
	require.Equal(t, CreatorStats{WorkshopCount: 1, TotalParticipants: 2, TotalRevenue: 200}, stats)

	require.Equal(t, CreatorStats{}, svc.AggregateForCreator(42), "other creators see empty stats")
}

func TestManageWorkshop(t *testing.T) {
	store := ledger.NewStore()
	svc := newTestWorkshopService(store, nil)
	regSvc := NewRegistrationService(RegistrationDependencies{Store: store})

	workshop, err := svc.CreateWorkshop(context.Background(), 1, validCreateInput())
	require.NoError(t, err)
	reg, err := regSvc.Register(context.Background(), workshop.ID, ParticipantInput{
		Name: "First", Email: "first@example.com", Phone: "555-0001",
	})
	require.NoError(t, err)
	_, err = regSvc.SetAttendance(context.Background(), 1, reg.ID, true)
	require.NoError(t, err)

	view, err := svc.ManageWorkshop(1, workshop.ID)
	require.NoError(t, err)
	require.Len(t, view.Registrations, 1)
	require.Equal(t, 1, view.AttendedCount)
	require.Zero(t, view.FeedbackCount)
	require.Equal(t, 1, view.AvailableSpots)

	_, err = svc.ManageWorkshop(2, workshop.ID)
	require.True(t, errorutil.HasCode(err, "FORBIDDEN"))

	_, err = svc.ManageWorkshop(1, 999)
	require.True(t, errorutil.HasCode(err, "NOT_FOUND"))
}
