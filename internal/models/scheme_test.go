package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpagApplies(t *testing.T) {
	withSpag := MarkSchemeEntry{QuestionID: "1a", MaxMarks: 12, SpagMarks: 4}
	require.True(t, withSpag.SpagApplies())

	withoutSpag := MarkSchemeEntry{QuestionID: "1b", MaxMarks: 8}
	require.False(t, withoutSpag.SpagApplies())
}

func TestDescribeIncludesSchemeSummary(t *testing.T) {
	entry := MarkSchemeEntry{
		QuestionID:       "4c",
		MaxMarks:         8,
		CommandWord:      "Evaluate",
		ObjectiveWeights: map[string]int{"AO3": 8, "AO1": 2},
		SpagMarks:        0,
	}

	described := entry.Describe()

	require.Contains(t, described, "Question 4c (8 marks)")
	require.Contains(t, described, "command word: Evaluate")
	require.Contains(t, described, "AO1: 2, AO3: 8")
	require.Contains(t, described, "SPaG: not assessed")
}

func TestDescribeSpagEntry(t *testing.T) {
	entry := MarkSchemeEntry{QuestionID: "6", MaxMarks: 16, SpagMarks: 4}

	require.Contains(t, entry.Describe(), "SPaG: 4 marks")
}
