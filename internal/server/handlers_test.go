package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtruong/skillswap/internal/generate"
	"github.com/mtruong/skillswap/internal/types"
)

func TestHealth(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := doJSON(t, srv.routes(), "GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIRequiresToken(t *testing.T) {
	srv, _, _ := newTestServer(t)
	routes := srv.routes()

	for _, tt := range []struct{ method, path string }{
		{"GET", "/api/me"},
		{"POST", "/api/quiz"},
		{"POST", "/api/roadmap"},
		{"POST", "/api/suggestions"},
		{"POST", "/api/match"},
		{"GET", "/api/generations"},
	} {
		rec := doJSON(t, routes, tt.method, tt.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tt.method, tt.path)
	}
}

func TestQuizEndpoint(t *testing.T) {
	srv, store, gen := newTestServer(t)
	token, _ := registerMember(t, srv, "quiz@example.com")

	rec := doJSON(t, srv.routes(), "POST", "/api/quiz", token, map[string]string{
		"skill": "guitar", "difficulty": "beginner",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Source generate.Source `json:"source"`
		Data   types.Quiz      `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, generate.SourceModel, resp.Source)
	assert.Equal(t, "guitar", resp.Data.Skill)
	assert.Len(t, resp.Data.Questions, types.QuizQuestionCount)
	assert.Equal(t, []string{"guitar"}, gen.quizSkills)
	assert.Equal(t, 1, store.savedCount())
}

func TestQuizRequiresSkill(t *testing.T) {
	srv, _, _ := newTestServer(t)
	token, _ := registerMember(t, srv, "noskill@example.com")

	rec := doJSON(t, srv.routes(), "POST", "/api/quiz", token, map[string]string{
		"difficulty": "beginner",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoadmapEndpoint(t *testing.T) {
	srv, _, _ := newTestServer(t)
	token, _ := registerMember(t, srv, "roadmap@example.com")

	rec := doJSON(t, srv.routes(), "POST", "/api/roadmap", token, map[string]string{
		"skill": "python", "level": "beginner",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Data types.Roadmap `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "python", resp.Data.Skill)
	assert.GreaterOrEqual(t, len(resp.Data.Steps), types.RoadmapMinSteps)
}

func TestSuggestionsUsesStoredProfile(t *testing.T) {
	srv, _, _ := newTestServer(t)
	token, _ := registerMember(t, srv, "suggest@example.com")
	routes := srv.routes()

	rec := doJSON(t, routes, "PUT", "/api/me/skills", token, map[string][]string{
		"teach": {"guitar"}, "learn": {"sql"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, routes, "POST", "/api/suggestions", token, map[string]string{
		"interest": "databases",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Data types.SkillSuggestions `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Suggestions, types.SkillSuggestionCount)
}

func TestMatchEndpoint(t *testing.T) {
	srv, _, gen := newTestServer(t)
	routes := srv.routes()

	token, _ := registerMember(t, srv, "one@example.com")
	_, otherID := registerMember(t, srv, "two@example.com")

	rec := doJSON(t, routes, "POST", "/api/match", token, map[string]string{
		"other_user_id": otherID.String(),
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Data types.MatchAnalysis `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 80, resp.Data.Score)
	assert.True(t, gen.matchCalled, "generator was not called")
}

func TestMatchUnknownMember(t *testing.T) {
	srv, _, _ := newTestServer(t)
	token, _ := registerMember(t, srv, "lonely@example.com")

	rec := doJSON(t, srv.routes(), "POST", "/api/match", token, map[string]string{
		"other_user_id": uuid.New().String(),
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGenerationsHistory(t *testing.T) {
	srv, _, _ := newTestServer(t)
	token, _ := registerMember(t, srv, "history@example.com")
	routes := srv.routes()

	for _, skill := range []string{"java", "sql"} {
		rec := doJSON(t, routes, "POST", "/api/quiz", token, map[string]string{"skill": skill})
		require.Equal(t, http.StatusOK, rec.Code, "quiz %q", skill)
	}

	rec := doJSON(t, routes, "GET", "/api/generations", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Generations []struct {
			Kind   string `json:"kind"`
			Topic  string `json:"topic"`
			Source string `json:"source"`
		} `json:"generations"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Generations, 2)

	// Newest first
	assert.Equal(t, "sql", resp.Generations[0].Topic)
	assert.Equal(t, "java", resp.Generations[1].Topic)
}

func TestGenerationsLimitValidation(t *testing.T) {
	srv, _, _ := newTestServer(t)
	token, _ := registerMember(t, srv, "limits@example.com")

	rec := doJSON(t, srv.routes(), "GET", "/api/generations?limit=0", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "limit=0")

	rec = doJSON(t, srv.routes(), "GET", "/api/generations?limit=oops", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "limit=oops")
}

func TestMeAndSkillsUpdate(t *testing.T) {
	srv, _, _ := newTestServer(t)
	token, userID := registerMember(t, srv, "me@example.com")
	routes := srv.routes()

	rec := doJSON(t, routes, "PUT", "/api/me/skills", token, map[string][]string{
		"teach": {"java", "sql"}, "learn": {"guitar"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, routes, "GET", "/api/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var user types.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, []string{"java", "sql"}, user.SkillsTeach)
	assert.Equal(t, []string{"guitar"}, user.SkillsLearn)
}
