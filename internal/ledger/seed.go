package ledger

import (
	"time"

	"github.com/mrpavithran/WorkShop/internal/domain"
)

// SeedDemoData loads a demo creator account and two workshops so a fresh
// instance has something to browse. Intended for development only.
func SeedDemoData(store *Store) error {
	creator, err := store.CreateUser(domain.User{
		Name:  "Demo Creator",
		Email: "creator@example.com",
		Role:  domain.RoleCreator,
	})
	if err != nil {
		return err
	}

	nextMonth := time.Now().AddDate(0, 1, 0)
	store.CreateWorkshop(domain.Workshop{
		Title:       "React Advanced Patterns",
		Description: "Learn advanced React patterns and best practices",
		Date:        time.Date(nextMonth.Year(), nextMonth.Month(), 15, 0, 0, 0, 0, time.UTC),
		Time:        "10:00",
		Price:       199,
		CreatorID:   creator.ID,
		Capacity:    50,
	})
	store.CreateWorkshop(domain.Workshop{
		Title:       "UI/UX Design Fundamentals",
		Description: "Master the fundamentals of user interface and experience design",
		Date:        time.Date(nextMonth.Year(), nextMonth.Month(), 20, 0, 0, 0, 0, time.UTC),
		Time:        "14:00",
		Price:       149,
		CreatorID:   creator.ID,
		Capacity:    30,
	})
	return nil
}
