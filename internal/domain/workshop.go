package domain

import "time"

// Workshop is the aggregate for a scheduled event with finite capacity.
type Workshop struct {
	ID              int64
	Title           string
	Description     string
	Date            time.Time
	Time            string
	Price           float64
	CreatorID       int64
	Capacity        int
	RegisteredCount int
	CreatedAt       time.Time
}

// AvailableSpots returns the remaining seats.
func (w Workshop) AvailableSpots() int {
	spots := w.Capacity - w.RegisteredCount
	if spots < 0 {
		return 0
	}
	return spots
}

// IsFull reports whether the workshop reached capacity.
func (w Workshop) IsFull() bool {
	return w.RegisteredCount >= w.Capacity
}

// Revenue returns collected revenue assuming every registration paid the list price.
func (w Workshop) Revenue() float64 {
	return float64(w.RegisteredCount) * w.Price
}
