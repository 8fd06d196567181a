package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Generation is one stored AI-generation result
type Generation struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Kind      string          `json:"kind"`
	Topic     string          `json:"topic"`
	Source    string          `json:"source"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// SaveGeneration stores one generation result as JSONB and returns its ID
func (db *DB) SaveGeneration(ctx context.Context, userID uuid.UUID, kind, topic, source string, payload any) (uuid.UUID, error) {
	jsonBytes, err := json.Marshal(payload)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal generation payload: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO generations (user_id, kind, topic, source, payload)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		userID, kind, topic, source, jsonBytes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save generation: %w", err)
	}
	return id, nil
}

// ListGenerations retrieves a member's recent generations, newest first
func (db *DB) ListGenerations(ctx context.Context, userID uuid.UUID, limit int) ([]Generation, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, kind, topic, source, payload, created_at
		 FROM generations WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}
	defer rows.Close()

	var out []Generation
	for rows.Next() {
		var g Generation
		if err := rows.Scan(&g.ID, &g.UserID, &g.Kind, &g.Topic, &g.Source, &g.Payload, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan generation: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
