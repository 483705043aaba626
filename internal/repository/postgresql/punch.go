package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/timewatch/timewatch-backend-go/internal/domain/punch"
	"github.com/timewatch/timewatch-backend-go/internal/pkg/database"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

const punchColumns = `
	id, user_email, entered_by, punch_in, punch_out, reporting_type, detail,
	EXTRACT(EPOCH FROM (punch_out - punch_in))::bigint AS work_seconds,
	last_update
`

func scanPunchEvent(row pgx.Row) (punch.Event, error) {
	var e punch.Event
	err := row.Scan(
		&e.ID, &e.UserEmail, &e.EnteredBy, &e.PunchIn, &e.PunchOut,
		&e.ReportingType, &e.Detail, &e.WorkSeconds, &e.LastUpdate,
	)
	return e, err
}

// GetRange implements punch.PunchRepository.
func (r *punchRepositoryImpl) GetRange(ctx context.Context, email string, from, to time.Time) ([]punch.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punch_events
		WHERE user_email = $1
		  AND punch_in >= $2
		  AND punch_in < $3
		ORDER BY punch_in ASC
	`

	rows, err := q.Query(ctx, query, email, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query punch events: %w", err)
	}
	defer rows.Close()

	var events []punch.Event
	for rows.Next() {
		e, err := scanPunchEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch event row: %w", err)
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

// GetRangeByCompany implements punch.PunchRepository.
func (r *punchRepositoryImpl) GetRangeByCompany(ctx context.Context, companyID string, from, to time.Time) ([]punch.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.user_email, e.entered_by, e.punch_in, e.punch_out,
			   e.reporting_type, e.detail,
			   EXTRACT(EPOCH FROM (e.punch_out - e.punch_in))::bigint AS work_seconds,
			   e.last_update
		FROM punch_events e
		JOIN users u ON u.email = e.user_email
		WHERE u.company_id = $1
		  AND e.punch_in >= $2
		  AND e.punch_in < $3
		ORDER BY e.punch_in ASC
	`

	rows, err := q.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query company punch events: %w", err)
	}
	defer rows.Close()

	var events []punch.Event
	for rows.Next() {
		e, err := scanPunchEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch event row: %w", err)
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

// GetByID implements punch.PunchRepository.
func (r *punchRepositoryImpl) GetByID(ctx context.Context, id string) (punch.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + punchColumns + ` FROM punch_events WHERE id = $1`

	e, err := scanPunchEvent(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return punch.Event{}, fmt.Errorf("punch event %s: %w", id, punch.ErrEventNotFound)
		}
		return punch.Event{}, fmt.Errorf("failed to get punch event: %w", err)
	}

	return e, nil
}

// GetOpenInRange implements punch.PunchRepository.
func (r *punchRepositoryImpl) GetOpenInRange(ctx context.Context, email string, from, to time.Time) (*punch.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punch_events
		WHERE user_email = $1
		  AND punch_out IS NULL
		  AND punch_in >= $2
		  AND punch_in < $3
		ORDER BY punch_in ASC
		LIMIT 1
	`

	e, err := scanPunchEvent(q.QueryRow(ctx, query, email, from, to))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open punch event: %w", err)
	}

	return &e, nil
}

// Create implements punch.PunchRepository.
func (r *punchRepositoryImpl) Create(ctx context.Context, newEvent punch.Event) (punch.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punch_events (
			id, user_email, entered_by, punch_in, punch_out, reporting_type, detail
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING last_update
	`

	err := q.QueryRow(ctx, query,
		newEvent.ID,
		newEvent.UserEmail,
		newEvent.EnteredBy,
		newEvent.PunchIn,
		newEvent.PunchOut,
		newEvent.ReportingType,
		newEvent.Detail,
	).Scan(&newEvent.LastUpdate)

	if err != nil {
		return punch.Event{}, fmt.Errorf("failed to create punch event: %w", err)
	}

	if newEvent.PunchOut != nil {
		seconds := int64(newEvent.PunchOut.Sub(newEvent.PunchIn).Seconds())
		newEvent.WorkSeconds = &seconds
	}
	return newEvent, nil
}

// Update implements punch.PunchRepository.
func (r *punchRepositoryImpl) Update(ctx context.Context, event punch.Event) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE punch_events
		SET punch_in = $2,
			punch_out = $3,
			reporting_type = $4,
			detail = $5,
			last_update = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		event.ID, event.PunchIn, event.PunchOut, event.ReportingType, event.Detail,
	)
	if err != nil {
		return fmt.Errorf("failed to update punch event %s: %w", event.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("punch event %s: %w", event.ID, punch.ErrEventNotFound)
	}
	return nil
}

// Delete implements punch.PunchRepository.
func (r *punchRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM punch_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete punch event %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("punch event %s: %w", id, punch.ErrEventNotFound)
	}
	return nil
}

// CloseOpenBefore implements punch.PunchRepository.
func (r *punchRepositoryImpl) CloseOpenBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	// Stale events get punched out at the end of their punch-in day.
	query := `
		UPDATE punch_events
		SET punch_out = date_trunc('day', punch_in) + INTERVAL '23 hours 59 minutes 59 seconds',
			last_update = NOW()
		WHERE punch_out IS NULL
		  AND punch_in < $1
	`

	tag, err := q.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to close stale punch events: %w", err)
	}

	return tag.RowsAffected(), nil
}
