// Package fallback provides deterministic offline content selection for the
// generation paths. When the model is unreachable or returns a malformed
// payload, the selector picks or synthesizes shape-valid content from a
// static catalog: exact canonical-key lookup first, then a longest-alias
// keyword scan, then domain classification with a shuffled template pool.
package fallback

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/mtruong/skillswap/internal/types"
)

// Selector picks fallback content for a free-text topic. The random source
// only drives the shuffle on the unmatched-domain quiz path; every other
// path is deterministic.
type Selector struct {
	rng *rand.Rand
}

// NewSelector creates a selector with the given random source. A nil source
// gets a time-seeded one.
func NewSelector(rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{rng: rng}
}

// resolveKey maps a topic to a canonical catalog key. Exact key hits win;
// otherwise every alias list is scanned for substring matches and the
// longest matched alias decides. Ties keep the first key in catalog order.
func resolveKey(topic string) (string, bool) {
	topic = normalize(topic)
	if topic == "" {
		return "", false
	}

	if _, ok := catalog[topic]; ok {
		return topic, true
	}

	bestKey := ""
	bestLen := 0
	for _, key := range catalogOrder {
		for _, alias := range catalog[key].aliases {
			if strings.Contains(topic, alias) && len(alias) > bestLen {
				bestKey = key
				bestLen = len(alias)
			}
		}
	}
	if bestKey != "" {
		return bestKey, true
	}
	return "", false
}

// QuizFor returns a five-question quiz for the topic.
func (s *Selector) QuizFor(topic string) *types.Quiz {
	if key, ok := resolveKey(topic); ok {
		return &types.Quiz{
			Skill:     key,
			Questions: cloneQuestions(catalog[key].quiz),
		}
	}

	domain := classifyDomain(topic)
	pool := questionPools[domain]

	questions := make([]types.QuizQuestion, len(pool))
	for i, q := range pool {
		questions[i] = renderQuestion(q, topic)
	}
	s.rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	if len(questions) > types.QuizQuestionCount {
		questions = questions[:types.QuizQuestionCount]
	}

	return &types.Quiz{
		Skill:     normalize(topic),
		Questions: questions,
	}
}

// RoadmapFor returns a learning roadmap for the topic. Canonical keys get
// their precomputed roadmap; everything else gets the generic template with
// the topic substituted in. Both paths are deterministic.
func (s *Selector) RoadmapFor(topic string) *types.Roadmap {
	if key, ok := resolveKey(topic); ok {
		return cloneRoadmap(catalog[key].roadmap)
	}

	display := strings.TrimSpace(topic)
	if display == "" {
		display = "your new skill"
	}

	steps := make([]types.RoadmapStep, len(genericRoadmapSteps))
	for i, tmpl := range genericRoadmapSteps {
		step := types.RoadmapStep{
			Order:       i + 1,
			Title:       strings.ReplaceAll(tmpl.Title, topicPlaceholder, display),
			Description: strings.ReplaceAll(tmpl.Description, topicPlaceholder, display),
			Duration:    tmpl.Duration,
			Resources:   make([]types.RoadmapResource, len(tmpl.Resources)),
		}
		for j, res := range tmpl.Resources {
			step.Resources[j] = types.RoadmapResource{
				Title: strings.ReplaceAll(res.Title, topicPlaceholder, display),
				Type:  res.Type,
			}
		}
		steps[i] = step
	}

	return &types.Roadmap{Skill: normalize(topic), Steps: steps}
}

// SkillsFor returns five skill suggestions related to the topic. Canonical
// keys carry a curated related-skill list; unmatched topics get the domain
// default list.
func (s *Selector) SkillsFor(topic string) *types.SkillSuggestions {
	if key, ok := resolveKey(topic); ok {
		return &types.SkillSuggestions{
			Suggestions: cloneSuggestions(catalog[key].skills),
		}
	}

	domain := classifyDomain(topic)
	return &types.SkillSuggestions{
		Suggestions: cloneSuggestions(domainSkills[domain]),
	}
}

// normalize lowercases and trims a topic string.
func normalize(topic string) string {
	return strings.ToLower(strings.TrimSpace(topic))
}

// renderQuestion substitutes the topic into a question template.
func renderQuestion(q types.QuizQuestion, topic string) types.QuizQuestion {
	display := strings.TrimSpace(topic)
	if display == "" {
		display = "this skill"
	}

	out := types.QuizQuestion{
		Question:           strings.ReplaceAll(q.Question, topicPlaceholder, display),
		Options:            make([]string, len(q.Options)),
		CorrectAnswerIndex: q.CorrectAnswerIndex,
		Explanation:        strings.ReplaceAll(q.Explanation, topicPlaceholder, display),
	}
	for i, opt := range q.Options {
		out.Options[i] = strings.ReplaceAll(opt, topicPlaceholder, display)
	}
	return out
}

func cloneQuestions(in []types.QuizQuestion) []types.QuizQuestion {
	out := make([]types.QuizQuestion, len(in))
	for i, q := range in {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}

func cloneSuggestions(in []types.SkillSuggestion) []types.SkillSuggestion {
	return append([]types.SkillSuggestion(nil), in...)
}

func cloneRoadmap(in *types.Roadmap) *types.Roadmap {
	out := &types.Roadmap{
		Skill: in.Skill,
		Steps: make([]types.RoadmapStep, len(in.Steps)),
	}
	for i, step := range in.Steps {
		step.Resources = append([]types.RoadmapResource(nil), step.Resources...)
		out.Steps[i] = step
	}
	return out
}

// Keys returns the canonical catalog keys in stable order. Exposed for
// seeding the database skill table.
func Keys() []string {
	return append([]string(nil), catalogOrder...)
}

// validateCatalog is run from tests to keep the static data shape-honest.
func validateCatalog() error {
	for _, key := range catalogOrder {
		e, ok := catalog[key]
		if !ok {
			return fmt.Errorf("catalogOrder key %q missing from catalog", key)
		}
		if len(e.quiz) != types.QuizQuestionCount {
			return fmt.Errorf("catalog %q: %d quiz questions", key, len(e.quiz))
		}
		if len(e.skills) != types.SkillSuggestionCount {
			return fmt.Errorf("catalog %q: %d skill suggestions", key, len(e.skills))
		}
		n := len(e.roadmap.Steps)
		if n < types.RoadmapMinSteps || n > types.RoadmapMaxSteps {
			return fmt.Errorf("catalog %q: %d roadmap steps", key, n)
		}
		for i, step := range e.roadmap.Steps {
			if len(step.Resources) != types.RoadmapResourcesPerStep {
				return fmt.Errorf("catalog %q step %d: %d resources", key, i, len(step.Resources))
			}
		}
	}
	return nil
}
