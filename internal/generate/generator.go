// Package generate composes prompts, calls the model through the retry
// policy, validates the response shape per content kind, and falls back to
// deterministic content when the model path fails. Callers always receive a
// shape-valid result; match analysis degrades to a neutral score instead.
package generate

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/mtruong/skillswap/internal/fallback"
	"github.com/mtruong/skillswap/internal/llm"
	"github.com/mtruong/skillswap/internal/prompts"
	"github.com/mtruong/skillswap/internal/retry"
	"github.com/mtruong/skillswap/internal/schemas"
	"github.com/mtruong/skillswap/internal/types"
)

// Source records which path produced a result.
type Source string

const (
	// SourceModel means the remote model produced and the validator accepted it.
	SourceModel Source = "model"
	// SourceFallback means the deterministic selector produced it.
	SourceFallback Source = "fallback"
	// SourceNeutral is the fixed match result used when the model path fails.
	SourceNeutral Source = "neutral"
)

// promptFile is the embedded template file all generation prompts live in.
const promptFile = "generation.json"

// Generator is the AI content generation facade.
type Generator struct {
	client   llm.Client
	policy   *retry.Policy
	selector *fallback.Selector
}

// Option customizes a Generator.
type Option func(*Generator)

// WithPolicy overrides the retry policy.
func WithPolicy(p *retry.Policy) Option {
	return func(g *Generator) { g.policy = p }
}

// WithSelector overrides the fallback selector.
func WithSelector(s *fallback.Selector) Option {
	return func(g *Generator) { g.selector = s }
}

// New creates a Generator around an LLM client. The default retry policy
// logs each scheduled retry.
func New(client llm.Client, opts ...Option) *Generator {
	g := &Generator{
		client: client,
		policy: retry.NewPolicy(retry.WithOnRetry(func(attempt int, delay time.Duration, err error) {
			log.Printf("generation attempt %d failed (%v), retrying in %s", attempt, err, delay)
		})),
		selector: fallback.NewSelector(nil),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SuggestSkills returns five skill suggestions for a member who teaches the
// given skills and stated an interest. Never fails: the fallback selector
// covers every topic.
func (g *Generator) SuggestSkills(ctx context.Context, teaches []string, interest string) (*types.SkillSuggestions, Source, error) {
	prompt := prompts.Format(prompts.MustGet(promptFile, "suggest-skills"), map[string]string{
		"Teaches":  joinOr(teaches, "nothing yet"),
		"Interest": defaultStr(interest, "anything"),
	})

	var result types.SkillSuggestions
	if err := g.generateInto(ctx, types.KindSkills, prompt, &result, func() error {
		return validateSkills(&result)
	}); err != nil {
		log.Printf("skill suggestion falling back: %v", err)
		return g.selector.SkillsFor(interest), SourceFallback, nil
	}
	return &result, SourceModel, nil
}

// BuildRoadmap returns a learning roadmap for a skill at a given level.
func (g *Generator) BuildRoadmap(ctx context.Context, skill, level string) (*types.Roadmap, Source, error) {
	prompt := prompts.Format(prompts.MustGet(promptFile, "build-roadmap"), map[string]string{
		"Skill": skill,
		"Level": defaultStr(level, "beginner"),
	})

	var result types.Roadmap
	if err := g.generateInto(ctx, types.KindRoadmap, prompt, &result, func() error {
		return validateRoadmap(&result)
	}); err != nil {
		log.Printf("roadmap generation falling back: %v", err)
		return g.selector.RoadmapFor(skill), SourceFallback, nil
	}
	return &result, SourceModel, nil
}

// BuildQuiz returns a five-question quiz for a skill.
func (g *Generator) BuildQuiz(ctx context.Context, skill, difficulty string) (*types.Quiz, Source, error) {
	prompt := prompts.Format(prompts.MustGet(promptFile, "build-quiz"), map[string]string{
		"Skill":      skill,
		"Difficulty": defaultStr(difficulty, "beginner"),
	})

	var result types.Quiz
	if err := g.generateInto(ctx, types.KindQuiz, prompt, &result, func() error {
		return validateQuiz(&result)
	}); err != nil {
		log.Printf("quiz generation falling back: %v", err)
		return g.selector.QuizFor(skill), SourceFallback, nil
	}
	return &result, SourceModel, nil
}

// Profile is the slice of a member profile the matcher needs.
type Profile struct {
	Teaches []string
	Learns  []string
}

// MatchProfiles scores the compatibility of two member profiles. There is
// no deterministic heuristic for pairwise compatibility, so on failure the
// neutral result is returned instead of an error.
func (g *Generator) MatchProfiles(ctx context.Context, a, b Profile) (*types.MatchAnalysis, Source, error) {
	prompt := prompts.Format(prompts.MustGet(promptFile, "match-profiles"), map[string]string{
		"TeachesA": joinOr(a.Teaches, "nothing yet"),
		"LearnsA":  joinOr(a.Learns, "nothing yet"),
		"TeachesB": joinOr(b.Teaches, "nothing yet"),
		"LearnsB":  joinOr(b.Learns, "nothing yet"),
	})

	var result types.MatchAnalysis
	if err := g.generateInto(ctx, types.KindMatch, prompt, &result, func() error {
		return validateMatch(&result)
	}); err != nil {
		log.Printf("match analysis degrading to neutral: %v", err)
		return types.NeutralMatch(), SourceNeutral, nil
	}
	return &result, SourceModel, nil
}

// generateInto runs the model call through the retry policy, then decodes
// and validates the payload into out. Validation failures are not retried
// against the network; they surface to the caller's fallback handling.
func (g *Generator) generateInto(ctx context.Context, kind types.GenerationKind, prompt string, out any, validate func() error) error {
	raw, err := g.policy.Do(ctx, func(ctx context.Context) (string, error) {
		return g.client.GenerateJSON(ctx, prompt)
	})
	if err != nil {
		return err
	}

	raw = llm.CleanJSONBlock(raw)

	if err := schemas.ValidateKind(kind, raw); err != nil {
		return &ParseError{Message: "response failed schema validation", Cause: err}
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return &ParseError{Message: "failed to decode response JSON", Cause: err}
	}
	return validate()
}

func joinOr(items []string, fallbackText string) string {
	if len(items) == 0 {
		return fallbackText
	}
	return strings.Join(items, ", ")
}

func defaultStr(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
