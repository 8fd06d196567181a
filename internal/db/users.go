package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// User represents a member record
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Bio          string    `json:"bio,omitempty"`
	PasswordHash string    `json:"-"`
	SkillsTeach  []string  `json:"skills_teach"`
	SkillsLearn  []string  `json:"skills_learn"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ErrDuplicateEmail is returned when registering an email that already exists.
var ErrDuplicateEmail = errors.New("email already registered")

// CreateUser inserts a member with a pre-hashed password and returns the record
func (db *DB) CreateUser(ctx context.Context, name, email, bio, passwordHash string) (*User, error) {
	var user User
	err := db.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, bio, password_hash)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (email) DO NOTHING
		 RETURNING id, name, email, COALESCE(bio, ''), password_hash, created_at, updated_at`,
		name, email, bio, passwordHash,
	).Scan(&user.ID, &user.Name, &user.Email, &user.Bio, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	user.SkillsTeach = []string{}
	user.SkillsLearn = []string{}
	return &user, nil
}

// GetUserByEmail retrieves a member by email; returns nil if not found
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return db.getUser(ctx, `WHERE u.email = $1`, email)
}

// GetUserByID retrieves a member by ID; returns nil if not found
func (db *DB) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return db.getUser(ctx, `WHERE u.id = $1`, id)
}

func (db *DB) getUser(ctx context.Context, where string, arg any) (*User, error) {
	var user User
	err := db.pool.QueryRow(ctx,
		`SELECT u.id, u.name, u.email, COALESCE(u.bio, ''), u.password_hash,
		        COALESCE(u.skills_teach, '{}'), COALESCE(u.skills_learn, '{}'),
		        u.created_at, u.updated_at
		 FROM users u `+where,
		arg,
	).Scan(&user.ID, &user.Name, &user.Email, &user.Bio, &user.PasswordHash,
		&user.SkillsTeach, &user.SkillsLearn, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// UpdateUserSkills replaces a member's taught and wanted skill lists
func (db *DB) UpdateUserSkills(ctx context.Context, id uuid.UUID, teach, learn []string) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE users SET skills_teach = $1, skills_learn = $2, updated_at = NOW() WHERE id = $3`,
		teach, learn, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update user skills: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %s", id)
	}
	return nil
}
