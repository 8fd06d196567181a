package generate

import (
	"fmt"
	"strings"

	"github.com/mtruong/skillswap/internal/types"
)

// Shape validation is the last gate before a result crosses the generator
// boundary. The JSON Schema pre-check catches structural problems; these
// typed checks enforce the exact cardinalities and ranges the callers
// depend on, so a shape violation can never escape as a result.

func validateSkills(s *types.SkillSuggestions) error {
	if len(s.Suggestions) != types.SkillSuggestionCount {
		return &ShapeError{Field: "suggestions", Message: fmt.Sprintf("got %d suggestions, want %d", len(s.Suggestions), types.SkillSuggestionCount)}
	}
	for i, sug := range s.Suggestions {
		if strings.TrimSpace(sug.Name) == "" {
			return &ShapeError{Field: fmt.Sprintf("suggestions[%d].name", i), Message: "empty"}
		}
		if strings.TrimSpace(sug.Reason) == "" {
			return &ShapeError{Field: fmt.Sprintf("suggestions[%d].reason", i), Message: "empty"}
		}
	}
	return nil
}

func validateRoadmap(r *types.Roadmap) error {
	if strings.TrimSpace(r.Skill) == "" {
		return &ShapeError{Field: "skill", Message: "empty"}
	}
	n := len(r.Steps)
	if n < types.RoadmapMinSteps || n > types.RoadmapMaxSteps {
		return &ShapeError{Field: "steps", Message: fmt.Sprintf("got %d steps, want %d-%d", n, types.RoadmapMinSteps, types.RoadmapMaxSteps)}
	}
	for i, step := range r.Steps {
		if strings.TrimSpace(step.Title) == "" {
			return &ShapeError{Field: fmt.Sprintf("steps[%d].title", i), Message: "empty"}
		}
		if len(step.Resources) != types.RoadmapResourcesPerStep {
			return &ShapeError{Field: fmt.Sprintf("steps[%d].resources", i), Message: fmt.Sprintf("got %d resources, want %d", len(step.Resources), types.RoadmapResourcesPerStep)}
		}
		for j, res := range step.Resources {
			if strings.TrimSpace(res.Title) == "" {
				return &ShapeError{Field: fmt.Sprintf("steps[%d].resources[%d].title", i, j), Message: "empty"}
			}
		}
	}
	return nil
}

func validateQuiz(q *types.Quiz) error {
	if strings.TrimSpace(q.Skill) == "" {
		return &ShapeError{Field: "skill", Message: "empty"}
	}
	if len(q.Questions) != types.QuizQuestionCount {
		return &ShapeError{Field: "questions", Message: fmt.Sprintf("got %d questions, want %d", len(q.Questions), types.QuizQuestionCount)}
	}
	for i, question := range q.Questions {
		if strings.TrimSpace(question.Question) == "" {
			return &ShapeError{Field: fmt.Sprintf("questions[%d].question", i), Message: "empty"}
		}
		if len(question.Options) < 2 {
			return &ShapeError{Field: fmt.Sprintf("questions[%d].options", i), Message: "need at least 2 options"}
		}
		if question.CorrectAnswerIndex < 0 || question.CorrectAnswerIndex >= len(question.Options) {
			return &ShapeError{Field: fmt.Sprintf("questions[%d].correct_answer_index", i), Message: fmt.Sprintf("%d out of range [0,%d)", question.CorrectAnswerIndex, len(question.Options))}
		}
	}
	return nil
}

func validateMatch(m *types.MatchAnalysis) error {
	if m.Score < 0 || m.Score > 100 {
		return &ShapeError{Field: "score", Message: fmt.Sprintf("%d out of range [0,100]", m.Score)}
	}
	if len(m.Reasons) == 0 {
		return &ShapeError{Field: "reasons", Message: "empty"}
	}
	return nil
}
