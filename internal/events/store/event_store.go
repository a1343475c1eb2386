package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/wso2/identity-event-analytics-service/internal/events/model"
	"github.com/wso2/identity-event-analytics-service/internal/system/database/provider"
)

const insertEventQuery = `
        INSERT INTO events (id, app_id, event_type, user_id, session_id, url, referrer,
                            ip_address, user_agent, browser, os, device, screen_width, screen_height, metadata, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

// batchTimeout bounds a full batch transaction.
const batchTimeout = 15 * time.Second

// marshalMetadata marshals the optional metadata map, representing a
// nil map as SQL NULL.
func marshalMetadata(data map[string]interface{}) (sql.NullString, error) {
	if data == nil {
		return sql.NullString{Valid: false}, nil
	}
	bytes, err := json.Marshal(data)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(bytes), Valid: true}, nil
}

// AddEvent inserts a single event row.
func AddEvent(event model.Event) error {
	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return fmt.Errorf("failed to get DB client: %w", err)
	}

	metadataJson, err := marshalMetadata(event.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	_, err = dbClient.Exec(insertEventQuery,
		event.ID, event.AppID, event.EventType, nullable(event.UserID), nullable(event.SessionID),
		nullable(event.URL), nullable(event.Referrer), nullable(event.IPAddress), nullable(event.UserAgent),
		event.Browser, event.OS, event.Device, event.ScreenWidth, event.ScreenHeight,
		metadataJson, event.CreatedAt,
	)
	return err
}

// AddEvents inserts a batch of events inside one transaction. A failure
// on any row rolls back every insert in the batch.
func AddEvents(events []model.Event) error {
	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return fmt.Errorf("failed to get DB client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	tx, err := dbClient.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertEventQuery)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, event := range events {
		metadataJson, err := marshalMetadata(event.Metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal metadata for event %s: %w", event.ID, err)
		}

		_, err = stmt.ExecContext(ctx,
			event.ID, event.AppID, event.EventType, nullable(event.UserID), nullable(event.SessionID),
			nullable(event.URL), nullable(event.Referrer), nullable(event.IPAddress), nullable(event.UserAgent),
			event.Browser, event.OS, event.Device, event.ScreenWidth, event.ScreenHeight,
			metadataJson, event.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert event %s: %w", event.ID, err)
		}
	}

	return tx.Commit()
}

// nullable maps an empty string to SQL NULL so distinct counts do not
// conflate absent values with empty ones.
func nullable(value string) sql.NullString {
	if value == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: value, Valid: true}
}
