// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/mtruong/skillswap/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSuggestions outputs a human-readable summary of skill suggestions.
func (p *Printer) PrintSuggestions(s *types.SkillSuggestions, source string) {
	if s == nil {
		return
	}

	var sb strings.Builder
	for i, sug := range s.Suggestions {
		sb.WriteString(fmt.Sprintf("%d. %s (%s, %s)\n", i+1, sug.Name, sug.Category, sug.Difficulty))
	}
	sb.WriteString(fmt.Sprintf("\nSource: %s", source))

	p.printBox("Skill Suggestions", sb.String())
}

// PrintRoadmap outputs a human-readable summary of a learning roadmap.
func (p *Printer) PrintRoadmap(rm *types.Roadmap, source string) {
	if rm == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skill: %s\n\n", rm.Skill))
	for _, step := range rm.Steps {
		sb.WriteString(fmt.Sprintf("%d. %s (%s)\n", step.Order, step.Title, step.Duration))
		for _, res := range step.Resources {
			sb.WriteString(fmt.Sprintf("   - [%s] %s\n", res.Type, res.Title))
		}
	}
	sb.WriteString(fmt.Sprintf("\nSource: %s", source))

	p.printBox("Learning Roadmap", sb.String())
}

// PrintQuiz outputs a human-readable summary of a quiz, answers included.
func (p *Printer) PrintQuiz(q *types.Quiz, source string) {
	if q == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skill: %s\n\n", q.Skill))
	for i, question := range q.Questions {
		sb.WriteString(fmt.Sprintf("Q%d: %s\n", i+1, question.Question))
		for j, option := range question.Options {
			marker := " "
			if j == question.CorrectAnswerIndex {
				marker = "*"
			}
			sb.WriteString(fmt.Sprintf(" %s %c) %s\n", marker, 'a'+j, option))
		}
	}
	sb.WriteString(fmt.Sprintf("\nSource: %s", source))

	p.printBox("Quiz", sb.String())
}

// PrintMatch outputs a human-readable summary of a profile match analysis.
func (p *Printer) PrintMatch(m *types.MatchAnalysis, source string) {
	if m == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %d/100\n", m.Score))
	if len(m.SharedInterests) > 0 {
		sb.WriteString(fmt.Sprintf("Shared: %s\n", strings.Join(m.SharedInterests, ", ")))
	}
	sb.WriteString("\n")
	for _, reason := range m.Reasons {
		sb.WriteString(fmt.Sprintf("- %s\n", reason))
	}
	sb.WriteString(fmt.Sprintf("\nSource: %s", source))

	p.printBox("Profile Match", sb.String())
}
