package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mtruong/skillswap/internal/config"
	"github.com/mtruong/skillswap/internal/db"
	"github.com/mtruong/skillswap/internal/types"
)

// Store is the slice of the database layer the server needs. It is an
// interface so handler tests can run against an in-memory fake.
type Store interface {
	CreateUser(ctx context.Context, name, email, bio, passwordHash string) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*db.User, error)
	UpdateUserSkills(ctx context.Context, id uuid.UUID, teach, learn []string) error
	SaveGeneration(ctx context.Context, userID uuid.UUID, kind, topic, source string, payload any) (uuid.UUID, error)
	ListGenerations(ctx context.Context, userID uuid.UUID, limit int) ([]db.Generation, error)
}

// UserService provides business logic for member account operations
type UserService struct {
	store          Store
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies
func NewUserService(store Store, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		store:          store,
		passwordConfig: passwordConfig,
	}
}

// toAPIUser converts db.User to types.User, excluding the password hash
func toAPIUser(dbUser *db.User) *types.User {
	if dbUser == nil {
		return nil
	}
	return &types.User{
		ID:          dbUser.ID,
		Name:        dbUser.Name,
		Email:       dbUser.Email,
		Bio:         dbUser.Bio,
		SkillsTeach: dbUser.SkillsTeach,
		SkillsLearn: dbUser.SkillsLearn,
		CreatedAt:   dbUser.CreatedAt,
		UpdatedAt:   dbUser.UpdatedAt,
	}
}

// Register creates a new member with password authentication
func (s *UserService) Register(ctx context.Context, req *types.CreateUserRequest) (*types.User, error) {
	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	dbUser, err := s.store.CreateUser(ctx, req.Name, req.Email, req.Bio, passwordHash)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateEmail) {
			return nil, &ErrEmailAlreadyExists{Email: req.Email}
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return toAPIUser(dbUser), nil
}

// Login authenticates a member and returns the profile
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	dbUser, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Same generic error whether the account is missing or the password is
	// wrong, so login does not leak which emails exist.
	if dbUser == nil {
		return nil, &ErrInvalidCredentials{}
	}
	if !s.passwordConfig.VerifyPassword(req.Password, dbUser.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return toAPIUser(dbUser), nil
}

// Get returns a member profile by ID
func (s *UserService) Get(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	dbUser, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if dbUser == nil {
		return nil, &ErrUserNotFound{UserID: userID}
	}
	return toAPIUser(dbUser), nil
}

// UpdateSkills replaces a member's taught and wanted skill lists
func (s *UserService) UpdateSkills(ctx context.Context, userID uuid.UUID, teach, learn []string) (*types.User, error) {
	if teach == nil {
		teach = []string{}
	}
	if learn == nil {
		learn = []string{}
	}
	if err := s.store.UpdateUserSkills(ctx, userID, teach, learn); err != nil {
		return nil, fmt.Errorf("failed to update skills: %w", err)
	}
	return s.Get(ctx, userID)
}
