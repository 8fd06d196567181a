package fallback

import (
	"encoding/json"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtruong/skillswap/internal/types"
)

func newTestSelector() *Selector {
	return NewSelector(rand.New(rand.NewSource(42)))
}

func TestCatalogShapes(t *testing.T) {
	require.NoError(t, validateCatalog())
}

func TestQuizFor_ExactKey(t *testing.T) {
	s := newTestSelector()

	quiz := s.QuizFor("java")
	assert.Equal(t, "java", quiz.Skill)
	require.Len(t, quiz.Questions, types.QuizQuestionCount)
	// Canonical content, not a shuffled template pool.
	assert.Equal(t, catalog["java"].quiz[0].Question, quiz.Questions[0].Question,
		"exact-key path should return precomputed questions in order")
}

func TestQuizFor_AliasMatchesCanonical(t *testing.T) {
	s := newTestSelector()

	byAlias := s.QuizFor("reactjs")
	byKey := s.QuizFor("react")

	a, err := json.Marshal(byAlias)
	require.NoError(t, err)
	b, err := json.Marshal(byKey)
	require.NoError(t, err)
	assert.JSONEq(t, string(b), string(a),
		"alias topic should return the same content as its canonical key")
}

func TestQuizFor_CaseAndWhitespaceNormalized(t *testing.T) {
	s := newTestSelector()
	quiz := s.QuizFor("  Java  ")
	assert.Equal(t, "java", quiz.Skill)
}

func TestResolveKey_LongestAliasWins(t *testing.T) {
	// "javascript" contains the "java" alias (4 chars) and the
	// "javascript" alias (10 chars); the longer alias must win.
	key, ok := resolveKey("learning javascript from scratch")
	require.True(t, ok)
	assert.Equal(t, "javascript", key)
}

func TestResolveKey_NoMatch(t *testing.T) {
	key, ok := resolveKey("competitive cheese rolling")
	assert.False(t, ok, "unexpected match %q", key)

	_, ok = resolveKey("")
	assert.False(t, ok, "empty topic should not match")
}

func TestQuizFor_ExactMatchIdempotent(t *testing.T) {
	s := newTestSelector()

	first, err := json.Marshal(s.QuizFor("python"))
	require.NoError(t, err)
	second, err := json.Marshal(s.QuizFor("python"))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second),
		"exact-match path must be byte-identical across calls")
}

func TestQuizFor_UnmatchedTopicShapeHolds(t *testing.T) {
	s := newTestSelector()

	topics := []string{
		"underwater basket weaving",
		"cloud architecture",  // technical
		"oil painting",        // creative
		"startup fundraising", // business
		"organic chemistry",   // science
		"",
	}
	for _, topic := range topics {
		quiz := s.QuizFor(topic)
		assert.Len(t, quiz.Questions, types.QuizQuestionCount, "topic %q", topic)
		for i, q := range quiz.Questions {
			assert.NotEmpty(t, q.Question, "topic %q: question %d", topic, i)
			assert.GreaterOrEqual(t, q.CorrectAnswerIndex, 0, "topic %q: question %d", topic, i)
			assert.Less(t, q.CorrectAnswerIndex, len(q.Options), "topic %q: question %d", topic, i)
		}
	}
}

func TestClassifyDomain(t *testing.T) {
	tests := []struct {
		topic string
		want  Domain
	}{
		{"web development", DomainTechnical},
		{"watercolor painting", DomainCreative},
		{"sales funnels", DomainBusiness},
		{"organic chemistry", DomainScience},
		{"juggling", DomainGeneral},
		{"", DomainGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.topic, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyDomain(tt.topic))
		})
	}
}

func TestClassifyDomain_PriorityOrder(t *testing.T) {
	// Matches both technical ("software") and business ("business");
	// technical is scanned first and must win.
	assert.Equal(t, DomainTechnical, classifyDomain("software business"))
}

func TestQuizFor_TemplateSubstitution(t *testing.T) {
	s := newTestSelector()
	quiz := s.QuizFor("juggling")
	for i, q := range quiz.Questions {
		assert.False(t, containsPlaceholder(q), "question %d still contains the topic placeholder", i)
	}
}

func containsPlaceholder(q types.QuizQuestion) bool {
	if strings.Contains(q.Question, topicPlaceholder) || strings.Contains(q.Explanation, topicPlaceholder) {
		return true
	}
	for _, opt := range q.Options {
		if strings.Contains(opt, topicPlaceholder) {
			return true
		}
	}
	return false
}

func TestRoadmapFor_CanonicalAndGeneric(t *testing.T) {
	s := newTestSelector()

	canonical := s.RoadmapFor("guitar")
	assert.Equal(t, "guitar", canonical.Skill)
	assert.GreaterOrEqual(t, len(canonical.Steps), types.RoadmapMinSteps)
	assert.LessOrEqual(t, len(canonical.Steps), types.RoadmapMaxSteps)

	generic := s.RoadmapFor("beekeeping")
	require.Len(t, generic.Steps, len(genericRoadmapSteps))
	for i, step := range generic.Steps {
		assert.Equal(t, i+1, step.Order, "step %d", i)
		assert.Len(t, step.Resources, types.RoadmapResourcesPerStep, "step %d", i)
	}
	// Topic substituted into the template.
	assert.Contains(t, generic.Steps[0].Title, "beekeeping")
}

func TestSkillsFor_CountAndFields(t *testing.T) {
	s := newTestSelector()

	for _, topic := range []string{"java", "pottery", "something nobody teaches"} {
		got := s.SkillsFor(topic)
		assert.Len(t, got.Suggestions, types.SkillSuggestionCount, "topic %q", topic)
		for i, sug := range got.Suggestions {
			assert.NotEmpty(t, sug.Name, "topic %q: suggestion %d", topic, i)
			assert.NotEmpty(t, sug.Reason, "topic %q: suggestion %d", topic, i)
		}
	}
}

func TestSelectorDoesNotMutateCatalog(t *testing.T) {
	s := newTestSelector()

	quiz := s.QuizFor("sql")
	quiz.Questions[0].Question = "mutated"
	quiz.Questions[0].Options[0] = "mutated"

	again := s.QuizFor("sql")
	assert.NotEqual(t, "mutated", again.Questions[0].Question, "returned quiz aliases catalog memory")
	assert.NotEqual(t, "mutated", again.Questions[0].Options[0], "returned quiz aliases catalog memory")
}
