package store

import (
	"fmt"
	"time"

	"github.com/wso2/identity-event-analytics-service/internal/apps/model"
	"github.com/wso2/identity-event-analytics-service/internal/system/database/provider"
)

// InsertApp persists a new app row.
func InsertApp(app *model.App) error {
	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return fmt.Errorf("failed to get DB client: %w", err)
	}

	query := `INSERT INTO apps (id, user_id, name, description, domain, created_at) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = dbClient.Exec(query, app.ID, app.UserID, app.Name, app.Description, app.Domain, app.CreatedAt)
	return err
}

// GetAppsByUser retrieves every app owned by the user, newest first.
func GetAppsByUser(userID string) ([]model.App, error) {
	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get DB client: %w", err)
	}

	query := `SELECT id, user_id, name, description, domain, created_at FROM apps WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := dbClient.ExecuteQuery(query, userID)
	if err != nil {
		return nil, err
	}

	apps := make([]model.App, 0, len(rows))
	for _, row := range rows {
		apps = append(apps, *mapRowToApp(row))
	}
	return apps, nil
}

// GetAppByIDAndUser retrieves one app only when the user owns it, nil
// otherwise. Ownership is part of the lookup, not a separate check, so
// a foreign app id behaves exactly like a missing one.
func GetAppByIDAndUser(appID, userID string) (*model.App, error) {
	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get DB client: %w", err)
	}

	query := `SELECT id, user_id, name, description, domain, created_at FROM apps WHERE id = $1 AND user_id = $2`
	rows, err := dbClient.ExecuteQuery(query, appID, userID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return mapRowToApp(rows[0]), nil
}

func mapRowToApp(row map[string]interface{}) *model.App {
	app := &model.App{
		ID:          asString(row["id"]),
		UserID:      asString(row["user_id"]),
		Name:        asString(row["name"]),
		Description: asString(row["description"]),
		Domain:      asString(row["domain"]),
	}
	if created, ok := row["created_at"].(time.Time); ok {
		app.CreatedAt = created
	}
	return app
}

func asString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}
