package observability

import (
	"bytes"
	"testing"

	"github.com/mtruong/skillswap/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintSuggestions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSuggestions(&types.SkillSuggestions{
		Suggestions: []types.SkillSuggestion{
			{Name: "SQL", Category: "technical", Difficulty: "beginner"},
			{Name: "Public Speaking", Category: "business", Difficulty: "intermediate"},
		},
	}, "model")

	out := buf.String()
	assert.Contains(t, out, "Skill Suggestions")
	assert.Contains(t, out, "1. SQL (technical, beginner)")
	assert.Contains(t, out, "Source: model")
}

func TestPrintRoadmap(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRoadmap(&types.Roadmap{
		Skill: "guitar",
		Steps: []types.RoadmapStep{
			{Order: 1, Title: "Open chords", Duration: "2 weeks", Resources: []types.RoadmapResource{
				{Title: "Chord book", Type: "book"},
			}},
		},
	}, "fallback")

	out := buf.String()
	assert.Contains(t, out, "Learning Roadmap")
	assert.Contains(t, out, "Skill: guitar")
	assert.Contains(t, out, "1. Open chords (2 weeks)")
	assert.Contains(t, out, "[book] Chord book")
	assert.Contains(t, out, "Source: fallback")
}

func TestPrintQuizMarksCorrectAnswer(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintQuiz(&types.Quiz{
		Skill: "java",
		Questions: []types.QuizQuestion{
			{Question: "What is the JVM?", Options: []string{"A compiler", "A runtime"}, CorrectAnswerIndex: 1},
		},
	}, "model")

	out := buf.String()
	assert.Contains(t, out, "Q1: What is the JVM?")
	assert.Contains(t, out, "* b) A runtime")
	assert.Contains(t, out, "  a) A compiler")
}

func TestPrintMatch(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatch(&types.MatchAnalysis{
		Score:           75,
		SharedInterests: []string{"python", "sql"},
		Reasons:         []string{"Complementary skills"},
	}, "model")

	out := buf.String()
	assert.Contains(t, out, "Score: 75/100")
	assert.Contains(t, out, "Shared: python, sql")
	assert.Contains(t, out, "- Complementary skills")
}

func TestPrintNilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSuggestions(nil, "model")
	p.PrintRoadmap(nil, "model")
	p.PrintQuiz(nil, "model")
	p.PrintMatch(nil, "model")

	assert.Empty(t, buf.String())
}
