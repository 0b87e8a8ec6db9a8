package models

// GradedResponse records a marker's judgment of one student answer against a
// mark-scheme entry. AwardedMarks maps a scheme-defined category (an objective
// label or "content") to the marks credited for it. TotalAwarded is derived
// from AwardedMarks and is never maintained independently of it.
type GradedResponse struct {
	StudentID      string         `json:"student_id"`
	QuestionID     string         `json:"question_id"`
	AnswerText     string         `json:"answer_text"`
	AwardedMarks   map[string]int `json:"awarded_marks"`
	TotalAwarded   int            `json:"total_awarded"`
	MarkerComments string         `json:"marker_comments"`
}

// RecomputeTotal sums the current awarded category marks into TotalAwarded
// and returns it. Calling it repeatedly without changing AwardedMarks yields
// the same value. The total is deliberately not clamped to the entry's
// MaxMarks; capping happens at entry time, not here.
func (r *GradedResponse) RecomputeTotal() int {
	total := 0
	for _, marks := range r.AwardedMarks {
		total += marks
	}
	r.TotalAwarded = total

	return total
}
