package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecomputeTotalSumsCategories(t *testing.T) {
	response := GradedResponse{
		StudentID:    "student_001",
		QuestionID:   "3b",
		AwardedMarks: map[string]int{"AO1": 2, "AO3": 5, "spag": 1},
	}

	total := response.RecomputeTotal()

	require.Equal(t, 8, total)
	require.Equal(t, 8, response.TotalAwarded)
}

func TestRecomputeTotalIdempotent(t *testing.T) {
	response := GradedResponse{
		AwardedMarks: map[string]int{"AO3": 7},
	}

	first := response.RecomputeTotal()
	second := response.RecomputeTotal()

	require.Equal(t, first, second)
	require.Equal(t, 7, response.TotalAwarded)
}

func TestRecomputeTotalEmptyMarks(t *testing.T) {
	response := GradedResponse{AwardedMarks: map[string]int{}}

	require.Equal(t, 0, response.RecomputeTotal())
	require.Equal(t, 0, response.TotalAwarded)
}

func TestRecomputeTotalTracksMutation(t *testing.T) {
	response := GradedResponse{AwardedMarks: map[string]int{"content": 3}}
	require.Equal(t, 3, response.RecomputeTotal())

	response.AwardedMarks["spag"] = 2
	require.Equal(t, 5, response.RecomputeTotal())
}
