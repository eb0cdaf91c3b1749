package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"kitty-registry/internal/domain/events"
)

type EventsRepo struct {
	db *sql.DB
}

func NewEventsRepo(db *sql.DB) *EventsRepo {
	return &EventsRepo{db: db}
}

func (r *EventsRepo) Append(ctx context.Context, e events.KittyEvent) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kitty_events (
			id, owner_user_id, kitty_id,
			type, dna,
			parent_a, parent_b,
			recorded_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		e.ID,
		e.OwnerUserID,
		int64(e.KittyID),
		string(e.Type),
		e.DNA,
		toNullInt(e.ParentA),
		toNullInt(e.ParentB),
		e.RecordedAt,
	)
	return err
}

func (r *EventsRepo) ListByKitty(ctx context.Context, ownerUserID string, kittyID uint32) ([]events.KittyEvent, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, owner_user_id, kitty_id,
			type, dna,
			parent_a, parent_b,
			recorded_at
		FROM kitty_events
		WHERE owner_user_id = $1 AND kitty_id = $2
		ORDER BY recorded_at DESC
	`, ownerUserID, int64(kittyID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEvents(rows)
}

func (r *EventsRepo) ListByOwner(ctx context.Context, ownerUserID string, filter events.ListFilter) ([]events.KittyEvent, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, nil
	}

	// Base query
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT
			id, owner_user_id, kitty_id,
			type, dna,
			parent_a, parent_b,
			recorded_at
		FROM kitty_events
		WHERE owner_user_id = $1
	`)

	args := []any{ownerUserID}
	argN := 2

	// types filter
	if len(filter.Types) > 0 {
		placeholders := make([]string, 0, len(filter.Types))
		for _, t := range filter.Types {
			placeholders = append(placeholders, fmt.Sprintf("$%d", argN))
			args = append(args, string(t))
			argN++
		}
		sb.WriteString(" AND type IN (" + strings.Join(placeholders, ",") + ")")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	sb.WriteString(" ORDER BY recorded_at DESC")
	sb.WriteString(fmt.Sprintf(" LIMIT $%d", argN))
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEvents(rows)
}

func collectEvents(rows *sql.Rows) ([]events.KittyEvent, error) {
	out := make([]events.KittyEvent, 0)
	for rows.Next() {
		var (
			e       events.KittyEvent
			kittyID int64
			typ     string
			pa, pb  sql.NullInt64
		)
		if err := rows.Scan(
			&e.ID,
			&e.OwnerUserID,
			&kittyID,
			&typ,
			&e.DNA,
			&pa,
			&pb,
			&e.RecordedAt,
		); err != nil {
			return nil, err
		}

		e.KittyID = uint32(kittyID)
		e.Type = events.EventType(typ)
		e.ParentA = fromNullInt(pa)
		e.ParentB = fromNullInt(pb)

		out = append(out, e)
	}

	return out, rows.Err()
}

// parent_a/parent_b son NULL en eventos KITTY_CREATED.
func toNullInt(v *uint32) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{Valid: false}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func fromNullInt(v sql.NullInt64) *uint32 {
	if !v.Valid {
		return nil
	}
	n := uint32(v.Int64)
	return &n
}
