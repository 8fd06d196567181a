package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mtruong/skillswap/internal/config"
	"github.com/mtruong/skillswap/internal/db"
	"github.com/mtruong/skillswap/internal/generate"
	"github.com/mtruong/skillswap/internal/types"
)

// fakeStore is an in-memory Store for handler tests.
type fakeStore struct {
	mu          sync.Mutex
	users       map[uuid.UUID]*db.User
	byEmail     map[string]uuid.UUID
	generations []db.Generation
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:   make(map[uuid.UUID]*db.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (f *fakeStore) CreateUser(_ context.Context, name, email, bio, passwordHash string) (*db.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.byEmail[email]; exists {
		return nil, db.ErrDuplicateEmail
	}

	user := &db.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		Bio:          bio,
		PasswordHash: passwordHash,
		SkillsTeach:  []string{},
		SkillsLearn:  []string{},
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	f.users[user.ID] = user
	f.byEmail[email] = user.ID
	return user, nil
}

func (f *fakeStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	u := *f.users[id]
	return &u, nil
}

func (f *fakeStore) GetUserByID(_ context.Context, id uuid.UUID) (*db.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeStore) UpdateUserSkills(_ context.Context, id uuid.UUID, teach, learn []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return &ErrUserNotFound{UserID: id}
	}
	u.SkillsTeach = teach
	u.SkillsLearn = learn
	return nil
}

func (f *fakeStore) SaveGeneration(_ context.Context, userID uuid.UUID, kind, topic, source string, payload any) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, err := json.Marshal(payload)
	if err != nil {
		return uuid.Nil, err
	}
	gen := db.Generation{
		ID:        uuid.New(),
		UserID:    userID,
		Kind:      kind,
		Topic:     topic,
		Source:    source,
		Payload:   raw,
		CreatedAt: time.Now(),
	}
	f.generations = append(f.generations, gen)
	return gen.ID, nil
}

func (f *fakeStore) ListGenerations(_ context.Context, userID uuid.UUID, limit int) ([]db.Generation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []db.Generation
	for i := len(f.generations) - 1; i >= 0 && len(out) < limit; i-- {
		if f.generations[i].UserID == userID {
			out = append(out, f.generations[i])
		}
	}
	return out, nil
}

func (f *fakeStore) savedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.generations)
}

// fakeGenerator returns canned content and records calls.
type fakeGenerator struct {
	source generate.Source

	mu          sync.Mutex
	quizSkills  []string
	matchCalled bool
}

func (g *fakeGenerator) SuggestSkills(_ context.Context, teaches []string, interest string) (*types.SkillSuggestions, generate.Source, error) {
	s := &types.SkillSuggestions{}
	for i := 0; i < types.SkillSuggestionCount; i++ {
		s.Suggestions = append(s.Suggestions, types.SkillSuggestion{
			Name: "skill", Category: "technical", Reason: "related to " + interest, Difficulty: "beginner",
		})
	}
	return s, g.source, nil
}

func (g *fakeGenerator) BuildRoadmap(_ context.Context, skill, level string) (*types.Roadmap, generate.Source, error) {
	rm := &types.Roadmap{Skill: skill}
	for i := 0; i < types.RoadmapMinSteps; i++ {
		rm.Steps = append(rm.Steps, types.RoadmapStep{
			Order: i + 1, Title: "step", Description: "d", Duration: "1 week",
			Resources: make([]types.RoadmapResource, types.RoadmapResourcesPerStep),
		})
	}
	return rm, g.source, nil
}

func (g *fakeGenerator) BuildQuiz(_ context.Context, skill, difficulty string) (*types.Quiz, generate.Source, error) {
	g.mu.Lock()
	g.quizSkills = append(g.quizSkills, skill)
	g.mu.Unlock()

	q := &types.Quiz{Skill: skill}
	for i := 0; i < types.QuizQuestionCount; i++ {
		q.Questions = append(q.Questions, types.QuizQuestion{
			Question: "q", Options: []string{"a", "b", "c", "d"}, CorrectAnswerIndex: 0,
		})
	}
	return q, g.source, nil
}

func (g *fakeGenerator) MatchProfiles(_ context.Context, a, b generate.Profile) (*types.MatchAnalysis, generate.Source, error) {
	g.mu.Lock()
	g.matchCalled = true
	g.mu.Unlock()
	return &types.MatchAnalysis{Score: 80, SharedInterests: []string{"guitar"}, Reasons: []string{"both teach"}}, g.source, nil
}

func newTestServer(t *testing.T) (*Server, *fakeStore, *fakeGenerator) {
	t.Helper()

	store := newFakeStore()
	gen := &fakeGenerator{source: generate.SourceModel}

	srv, err := New(Config{
		Port:     0,
		JWT:      &config.JWTConfig{Secret: "test-secret", ExpirationHours: 1},
		Password: &config.PasswordConfig{BcryptCost: 10},
	}, store, gen)
	require.NoError(t, err)
	return srv, store, gen
}

func doJSON(t *testing.T, handler http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// registerMember creates an account through the API and returns its token and ID.
func registerMember(t *testing.T, srv *Server, email string) (string, uuid.UUID) {
	t.Helper()

	rec := doJSON(t, srv.routes(), "POST", "/auth/register", "", map[string]string{
		"name": "Test Member", "email": email, "password": "password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Token, resp.User.ID
}
