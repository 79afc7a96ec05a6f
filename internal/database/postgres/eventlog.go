package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/HeroArena_Go/internal/eventlog"
)

type eventLogRepository struct {
	db *pgxpool.Pool
}

// NewEventLogRepository creates a new PostgreSQL event history repository
func NewEventLogRepository(db *pgxpool.Pool) eventlog.Repository {
	return &eventLogRepository{db: db}
}

// LogEvent stores an event in the database
func (r *eventLogRepository) LogEvent(ctx context.Context, eventType string, accountID *string, payload, metadata map[string]interface{}) error {
	query := `
		INSERT INTO event_log (event_type, account_id, payload, metadata)
		VALUES ($1, $2, $3, $4)
	`

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	var metadataJSON []byte
	if metadata != nil {
		metadataJSON, err = json.Marshal(metadata)
		if err != nil {
			return err
		}
	}

	if _, err = r.db.Exec(ctx, query, eventType, accountID, payloadJSON, metadataJSON); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLogEvent, err)
	}
	return nil
}

// GetEventsByAccount retrieves the newest events for an account
func (r *eventLogRepository) GetEventsByAccount(ctx context.Context, accountID string, limit int) ([]eventlog.Entry, error) {
	query := `
		SELECT id, event_type, account_id, payload, metadata, created_at
		FROM event_log
		WHERE account_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEvents, err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// CleanupOldEvents removes events older than the specified number of days
func (r *eventLogRepository) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	query := `
		DELETE FROM event_log
		WHERE created_at < NOW() - INTERVAL '1 day' * $1
	`

	result, err := r.db.Exec(ctx, query, retentionDays)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}

func scanEvents(rows pgx.Rows) ([]eventlog.Entry, error) {
	var entries []eventlog.Entry

	for rows.Next() {
		var e eventlog.Entry
		var payloadJSON, metadataJSON []byte

		err := rows.Scan(
			&e.ID,
			&e.EventType,
			&e.AccountID,
			&payloadJSON,
			&metadataJSON,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if err := json.Unmarshal(payloadJSON, &e.Payload); err != nil {
			return nil, err
		}
		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &e.Metadata); err != nil {
				return nil, err
			}
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
