package punch

import (
	"context"

	"github.com/timewatch/timewatch-backend-go/internal/domain/user"
)

type PunchService interface {
	// Create records an explicit punch event. An empty punch-in means "now";
	// an empty punch-out leaves the event open.
	Create(ctx context.Context, req CreateEventRequest, requester user.Requester) (Event, error)
	// PunchOut closes today's open event for the subject.
	PunchOut(ctx context.Context, req PunchOutRequest, requester user.Requester) (Event, error)
	Update(ctx context.Context, id string, req UpdateEventRequest, requester user.Requester) (Event, error)
	Delete(ctx context.Context, id string, requester user.Requester) error
	List(ctx context.Context, req ListEventsRequest, requester user.Requester) ([]Event, error)
	// CloseStale force-closes open events from previous days. Used by the
	// nightly scheduler job.
	CloseStale(ctx context.Context) (int64, error)
}
