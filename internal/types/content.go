// Package types defines the shared data structures for AI-generated content.
package types

// GenerationKind identifies which content shape a generation produces.
type GenerationKind string

const (
	// KindSkills is a list of skill suggestions for a member profile.
	KindSkills GenerationKind = "skills"
	// KindRoadmap is a step-by-step learning roadmap for one skill.
	KindRoadmap GenerationKind = "roadmap"
	// KindQuiz is a multiple-choice quiz for one skill.
	KindQuiz GenerationKind = "quiz"
	// KindMatch is a pairwise profile-compatibility analysis.
	KindMatch GenerationKind = "match"
)

// Shape constants enforced before any result crosses the generator boundary.
const (
	// SkillSuggestionCount is the exact number of suggestions returned.
	SkillSuggestionCount = 5
	// RoadmapMinSteps and RoadmapMaxSteps bound the roadmap length.
	RoadmapMinSteps = 5
	RoadmapMaxSteps = 6
	// RoadmapResourcesPerStep is the exact resource count per step.
	RoadmapResourcesPerStep = 3
	// QuizQuestionCount is the exact number of quiz questions.
	QuizQuestionCount = 5
)

// SkillSuggestion is one recommended skill for a member to learn next.
type SkillSuggestion struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	Reason     string `json:"reason"`
	Difficulty string `json:"difficulty"`
}

// SkillSuggestions is the fixed-size suggestion list.
type SkillSuggestions struct {
	Suggestions []SkillSuggestion `json:"suggestions"`
}

// RoadmapResource is one learning resource attached to a roadmap step.
type RoadmapResource struct {
	Title string `json:"title"`
	Type  string `json:"type"`
	URL   string `json:"url,omitempty"`
}

// RoadmapStep is a single stage of a learning roadmap.
type RoadmapStep struct {
	Order       int               `json:"order"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Duration    string            `json:"duration"`
	Resources   []RoadmapResource `json:"resources"`
}

// Roadmap is an ordered learning plan for one skill.
type Roadmap struct {
	Skill string        `json:"skill"`
	Steps []RoadmapStep `json:"steps"`
}

// QuizQuestion is one multiple-choice question.
type QuizQuestion struct {
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correct_answer_index"`
	Explanation        string   `json:"explanation,omitempty"`
}

// Quiz is a fixed-size question set for one skill.
type Quiz struct {
	Skill     string         `json:"skill"`
	Questions []QuizQuestion `json:"questions"`
}

// MatchAnalysis scores the compatibility of two member profiles.
type MatchAnalysis struct {
	Score           int      `json:"score"`
	SharedInterests []string `json:"shared_interests"`
	Reasons         []string `json:"reasons"`
}

// NeutralMatch is returned when the model cannot be reached; there is no
// deterministic heuristic for pairwise compatibility, so the score is the
// midpoint and the interest list is empty.
func NeutralMatch() *MatchAnalysis {
	return &MatchAnalysis{
		Score:           50,
		SharedInterests: []string{},
		Reasons:         []string{"Compatibility could not be analyzed right now."},
	}
}
