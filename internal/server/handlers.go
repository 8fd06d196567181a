package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/mtruong/skillswap/internal/db"
	"github.com/mtruong/skillswap/internal/generate"
	"github.com/mtruong/skillswap/internal/server/middleware"
	"github.com/mtruong/skillswap/internal/types"
)

// ContentGenerator is the generation facade the handlers call. It is an
// interface so handler tests can script results without a model client.
type ContentGenerator interface {
	SuggestSkills(ctx context.Context, teaches []string, interest string) (*types.SkillSuggestions, generate.Source, error)
	BuildRoadmap(ctx context.Context, skill, level string) (*types.Roadmap, generate.Source, error)
	BuildQuiz(ctx context.Context, skill, difficulty string) (*types.Quiz, generate.Source, error)
	MatchProfiles(ctx context.Context, a, b generate.Profile) (*types.MatchAnalysis, generate.Source, error)
}

type suggestionsRequest struct {
	Interest string   `json:"interest"`
	Teaches  []string `json:"teaches,omitempty"`
}

type roadmapRequest struct {
	Skill string `json:"skill" validate:"required,min=1"`
	Level string `json:"level,omitempty"`
}

type quizRequest struct {
	Skill      string `json:"skill" validate:"required,min=1"`
	Difficulty string `json:"difficulty,omitempty"`
}

type matchRequest struct {
	OtherUserID uuid.UUID `json:"other_user_id" validate:"required"`
}

type skillsUpdateRequest struct {
	Teach []string `json:"teach"`
	Learn []string `json:"learn"`
}

// generationResponse wraps every generated payload with its provenance.
type generationResponse struct {
	Source generate.Source `json:"source"`
	Data   any             `json:"data"`
}

// handleSuggestions returns skill suggestions for the authenticated member.
// If the request omits the taught skills, the stored profile is used.
func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	userID, user, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	var req suggestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	teaches := req.Teaches
	if len(teaches) == 0 {
		teaches = user.SkillsTeach
	}

	result, source, err := s.generator.SuggestSkills(r.Context(), teaches, req.Interest)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Generation failed")
		return
	}

	s.recordGeneration(r.Context(), userID, types.KindSkills, req.Interest, source, result)
	s.jsonResponse(w, http.StatusOK, generationResponse{Source: source, Data: result})
}

// handleRoadmap returns a learning roadmap for one skill.
func (s *Server) handleRoadmap(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	var req roadmapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	result, source, err := s.generator.BuildRoadmap(r.Context(), req.Skill, req.Level)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Generation failed")
		return
	}

	s.recordGeneration(r.Context(), userID, types.KindRoadmap, req.Skill, source, result)
	s.jsonResponse(w, http.StatusOK, generationResponse{Source: source, Data: result})
}

// handleQuiz returns a five-question quiz for one skill.
func (s *Server) handleQuiz(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	result, source, err := s.generator.BuildQuiz(r.Context(), req.Skill, req.Difficulty)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Generation failed")
		return
	}

	s.recordGeneration(r.Context(), userID, types.KindQuiz, req.Skill, source, result)
	s.jsonResponse(w, http.StatusOK, generationResponse{Source: source, Data: result})
}

// handleMatch scores the compatibility between the authenticated member and
// another member.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	userID, user, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.OtherUserID == uuid.Nil {
		s.errorResponse(w, http.StatusBadRequest, "other_user_id is required")
		return
	}

	other, err := s.store.GetUserByID(r.Context(), req.OtherUserID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}
	if other == nil {
		s.errorResponse(w, http.StatusNotFound, "Member not found")
		return
	}

	result, source, err := s.generator.MatchProfiles(r.Context(),
		generate.Profile{Teaches: user.SkillsTeach, Learns: user.SkillsLearn},
		generate.Profile{Teaches: other.SkillsTeach, Learns: other.SkillsLearn},
	)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Generation failed")
		return
	}

	s.recordGeneration(r.Context(), userID, types.KindMatch, other.ID.String(), source, result)
	s.jsonResponse(w, http.StatusOK, generationResponse{Source: source, Data: result})
}

// handleListGenerations returns the member's recent generation history.
func (s *Server) handleListGenerations(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	limit := 20
	if q := r.URL.Query().Get("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 1 || n > 100 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	generations, err := s.store.ListGenerations(r.Context(), userID, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list generations")
		return
	}
	if generations == nil {
		generations = []db.Generation{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"generations": generations})
}

// handleMe returns the authenticated member's profile.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	_, user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, user)
}

// handleUpdateSkills replaces the member's skill lists.
func (s *Server) handleUpdateSkills(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	var req skillsUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := s.userService.UpdateSkills(r.Context(), userID, req.Teach, req.Learn)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, user)
}

// requireUser resolves the authenticated member from the request context.
func (s *Server) requireUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, *types.User, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, nil, false
	}

	user, err := s.userService.Get(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return uuid.Nil, nil, false
	}
	return userID, user, true
}

// recordGeneration stores the result for history. Failures are logged, not
// surfaced; the member already has their content.
func (s *Server) recordGeneration(ctx context.Context, userID uuid.UUID, kind types.GenerationKind, topic string, source generate.Source, payload any) {
	if _, err := s.store.SaveGeneration(ctx, userID, string(kind), topic, string(source), payload); err != nil {
		log.Printf("failed to record %s generation for %s: %v", kind, userID, err)
	}
}
