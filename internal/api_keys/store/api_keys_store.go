package store

import (
	"fmt"
	"time"

	"github.com/wso2/identity-event-analytics-service/internal/api_keys/model"
	"github.com/wso2/identity-event-analytics-service/internal/system/constants"
	"github.com/wso2/identity-event-analytics-service/internal/system/database/provider"
)

// InsertAPIKey inserts a new API key row.
func InsertAPIKey(key *model.APIKey) error {
	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return fmt.Errorf("failed to get DB client: %w", err)
	}

	query := `INSERT INTO api_keys (id, app_id, key_hash, key_prefix, name, status, expires_at, usage_count, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = dbClient.Exec(query, key.ID, key.AppID, key.KeyHash, key.KeyPrefix, key.Name,
		key.Status, key.ExpiresAt, key.UsageCount, key.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert API key: %w", err)
	}
	return nil
}

// GetActiveKeyByHash resolves an active key by its hash, joined to the
// owning app so one lookup yields the full request scope. Returns nil
// when no active key matches.
func GetActiveKeyByHash(keyHash string) (*model.APIKey, *model.ResolvedKey, error) {
	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get DB client: %w", err)
	}

	query := `SELECT ak.id, ak.app_id, ak.key_prefix, ak.name, ak.status, ak.expires_at,
	                 ak.last_used_at, ak.usage_count, ak.created_at, a.user_id
	          FROM api_keys ak
	          JOIN apps a ON ak.app_id = a.id
	          WHERE ak.key_hash = $1 AND ak.status = $2`
	rows, err := dbClient.ExecuteQuery(query, keyHash, constants.KeyStateActive)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	key := mapRowToAPIKey(rows[0])
	resolved := &model.ResolvedKey{
		KeyID:       key.ID,
		AppID:       key.AppID,
		OwnerUserID: asString(rows[0]["user_id"]),
	}
	return key, resolved, nil
}

// UpdateStatus transitions a key's lifecycle status.
func UpdateStatus(keyID, status string) error {
	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return fmt.Errorf("failed to get DB client: %w", err)
	}

	query := `UPDATE api_keys SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`
	_, err = dbClient.Exec(query, status, keyID)
	if err != nil {
		return fmt.Errorf("failed to update API key status: %w", err)
	}
	return nil
}

// UpdateStatusOwned transitions a key's status only when the caller
// owns the key's app. Reports whether a row changed.
func UpdateStatusOwned(keyID, userID, status string) (bool, error) {
	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return false, fmt.Errorf("failed to get DB client: %w", err)
	}

	query := `UPDATE api_keys ak SET status = $1, updated_at = CURRENT_TIMESTAMP
	          FROM apps a
	          WHERE ak.app_id = a.id AND ak.id = $2 AND a.user_id = $3`
	result, err := dbClient.Exec(query, status, keyID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to update API key status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// TouchUsage atomically increments the usage counter and stamps the
// last-used time. A single UPDATE keeps concurrent authentications of
// the same key from losing increments.
func TouchUsage(keyID string) error {
	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return fmt.Errorf("failed to get DB client: %w", err)
	}

	query := `UPDATE api_keys SET usage_count = usage_count + 1, last_used_at = CURRENT_TIMESTAMP WHERE id = $1`
	_, err = dbClient.Exec(query, keyID)
	return err
}

// GetKeysByUser lists keys across the caller's apps, optionally
// restricted to one app, newest first.
func GetKeysByUser(userID, appID string) ([]model.APIKey, error) {
	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get DB client: %w", err)
	}

	query := `SELECT ak.id, ak.app_id, ak.key_prefix, ak.name, ak.status, ak.expires_at,
	                 ak.last_used_at, ak.usage_count, ak.created_at, a.name AS app_name
	          FROM api_keys ak
	          JOIN apps a ON ak.app_id = a.id
	          WHERE a.user_id = $1`
	args := []interface{}{userID}
	if appID != "" {
		query += ` AND ak.app_id = $2`
		args = append(args, appID)
	}
	query += ` ORDER BY ak.created_at DESC`

	rows, err := dbClient.ExecuteQuery(query, args...)
	if err != nil {
		return nil, err
	}

	keys := make([]model.APIKey, 0, len(rows))
	for _, row := range rows {
		key := mapRowToAPIKey(row)
		key.AppName = asString(row["app_name"])
		keys = append(keys, *key)
	}
	return keys, nil
}

// GetKeyByIDAndUser retrieves one key only when the caller owns its
// app, nil otherwise.
func GetKeyByIDAndUser(keyID, userID string) (*model.APIKey, error) {
	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get DB client: %w", err)
	}

	query := `SELECT ak.id, ak.app_id, ak.key_prefix, ak.name, ak.status, ak.expires_at,
	                 ak.last_used_at, ak.usage_count, ak.created_at, a.name AS app_name
	          FROM api_keys ak
	          JOIN apps a ON ak.app_id = a.id
	          WHERE ak.id = $1 AND a.user_id = $2`
	rows, err := dbClient.ExecuteQuery(query, keyID, userID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	key := mapRowToAPIKey(rows[0])
	key.AppName = asString(rows[0]["app_name"])
	return key, nil
}

func mapRowToAPIKey(row map[string]interface{}) *model.APIKey {
	key := &model.APIKey{
		ID:        asString(row["id"]),
		AppID:     asString(row["app_id"]),
		KeyPrefix: asString(row["key_prefix"]),
		Name:      asString(row["name"]),
		Status:    asString(row["status"]),
	}
	if expires, ok := row["expires_at"].(time.Time); ok {
		key.ExpiresAt = &expires
	}
	if lastUsed, ok := row["last_used_at"].(time.Time); ok {
		key.LastUsedAt = &lastUsed
	}
	if count, ok := row["usage_count"].(int64); ok {
		key.UsageCount = count
	}
	if created, ok := row["created_at"].(time.Time); ok {
		key.CreatedAt = created
	}
	return key
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
