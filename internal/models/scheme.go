package models

import (
	"fmt"
	"sort"
	"strings"
)

// LevelDescriptor pairs a level label with its banded quality description.
// Descriptors are kept as an ordered slice because their insertion order is
// also their display order.
type LevelDescriptor struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// MarkSchemeEntry describes the grading rubric for a single question. It is
// constructed once and never mutated afterwards.
type MarkSchemeEntry struct {
	QuestionID        string            `json:"question_id"`
	MaxMarks          int               `json:"max_marks"`
	CommandWord       string            `json:"command_word"`
	ObjectiveWeights  map[string]int    `json:"objective_weights"`
	IndicativeContent []string          `json:"indicative_content"`
	LevelDescriptors  []LevelDescriptor `json:"level_descriptors"`
	SpagMarks         int               `json:"spag_marks"`
}

const (
	// ObjectiveAO3 is the evaluation assessment objective label.
	ObjectiveAO3 = "AO3"
	// CategoryContent is the generic crediting bucket used when no
	// objective-specific rule applies.
	CategoryContent = "content"
)

// SpagApplies reports whether spelling, punctuation and grammar marks are
// available on this entry.
func (e MarkSchemeEntry) SpagApplies() bool {
	return e.SpagMarks > 0
}

// Describe returns a human-readable rendering of the entry: question id, max
// marks, command word, objective weights and SPaG applicability.
func (e MarkSchemeEntry) Describe() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Question %s (%d marks)", e.QuestionID, e.MaxMarks)
	if e.CommandWord != "" {
		fmt.Fprintf(&b, ", command word: %s", e.CommandWord)
	}
	b.WriteString("\n")

	if len(e.ObjectiveWeights) > 0 {
		labels := make([]string, 0, len(e.ObjectiveWeights))
		for label := range e.ObjectiveWeights {
			labels = append(labels, label)
		}
		sort.Strings(labels)

		parts := make([]string, 0, len(labels))
		for _, label := range labels {
			parts = append(parts, fmt.Sprintf("%s: %d", label, e.ObjectiveWeights[label]))
		}
		fmt.Fprintf(&b, "Objectives: %s\n", strings.Join(parts, ", "))
	}

	if e.SpagApplies() {
		fmt.Fprintf(&b, "SPaG: %d marks\n", e.SpagMarks)
	} else {
		b.WriteString("SPaG: not assessed on this question\n")
	}

	return b.String()
}
