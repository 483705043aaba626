package punch

import (
	"context"
	"time"
)

type PunchRepository interface {
	// GetRange returns all events whose punch-in falls in [from, to),
	// ordered by punch-in ascending.
	GetRange(ctx context.Context, email string, from, to time.Time) ([]Event, error)
	// GetRangeByCompany returns the events of every user belonging to the
	// company whose punch-in falls in [from, to), ordered by punch-in
	// ascending.
	GetRangeByCompany(ctx context.Context, companyID string, from, to time.Time) ([]Event, error)
	GetByID(ctx context.Context, id string) (Event, error)
	// GetOpenInRange returns the first open event whose punch-in falls in
	// [from, to), or nil when there is none.
	GetOpenInRange(ctx context.Context, email string, from, to time.Time) (*Event, error)
	Create(ctx context.Context, newEvent Event) (Event, error)
	Update(ctx context.Context, event Event) error
	Delete(ctx context.Context, id string) error
	// CloseOpenBefore punches out every open event that started before the
	// cutoff, at the end of its punch-in day. Returns the number closed.
	CloseOpenBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
