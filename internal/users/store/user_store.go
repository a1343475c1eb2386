package store

import (
	"fmt"
	"time"

	"github.com/wso2/identity-event-analytics-service/internal/system/database/provider"
	"github.com/wso2/identity-event-analytics-service/internal/users/model"
)

// InsertUser persists a new user row.
func InsertUser(user *model.User) error {
	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return fmt.Errorf("failed to get DB client: %w", err)
	}

	query := `INSERT INTO users (id, email, name, password_hash, created_at) VALUES ($1, $2, $3, $4, $5)`
	_, err = dbClient.Exec(query, user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt)
	if err != nil {
		return err
	}
	return nil
}

// GetUserByEmail retrieves a user by email, nil when absent.
func GetUserByEmail(email string) (*model.User, error) {
	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get DB client: %w", err)
	}

	query := `SELECT id, email, name, password_hash, created_at FROM users WHERE email = $1`
	rows, err := dbClient.ExecuteQuery(query, email)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return mapRowToUser(rows[0]), nil
}

func mapRowToUser(row map[string]interface{}) *model.User {
	user := &model.User{
		ID:    asString(row["id"]),
		Email: asString(row["email"]),
		Name:  asString(row["name"]),
	}
	if hash, ok := row["password_hash"].(string); ok {
		user.PasswordHash = hash
	}
	if created, ok := row["created_at"].(time.Time); ok {
		user.CreatedAt = created
	}
	return user
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
