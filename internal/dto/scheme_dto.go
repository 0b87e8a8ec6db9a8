package dto

import (
	"github.com/opengrade/markdesk/internal/models"
)

// LevelDescriptorRequest describes one quality band inside a scheme document.
type LevelDescriptorRequest struct {
	Label string `json:"label" validate:"required"`
	Text  string `json:"text" validate:"required"`
}

// MarkSchemeEntryRequest describes one rubric entry in a mark-scheme document.
// Optional fields default to empty collections or zero when omitted.
type MarkSchemeEntryRequest struct {
	QuestionID        string                   `json:"question_id" validate:"required"`
	MaxMarks          int                      `json:"max_marks" validate:"required,min=1"`
	CommandWord       string                   `json:"command_word"`
	ObjectiveWeights  map[string]int           `json:"objective_weights" validate:"omitempty,dive,min=0"`
	IndicativeContent []string                 `json:"indicative_content"`
	LevelDescriptors  []LevelDescriptorRequest `json:"level_descriptors" validate:"omitempty,dive"`
	SpagMarks         int                      `json:"spag_marks" validate:"min=0"`
}

// MarkSchemeDocument is the top-level structure of a mark-scheme JSON file.
type MarkSchemeDocument struct {
	Entries []MarkSchemeEntryRequest `json:"entries" validate:"required,min=1,dive"`
}

// ToModel converts the request into an immutable scheme entry, applying the
// documented defaults for omitted fields.
func (r MarkSchemeEntryRequest) ToModel() models.MarkSchemeEntry {
	weights := make(map[string]int, len(r.ObjectiveWeights))
	for objective, marks := range r.ObjectiveWeights {
		weights[objective] = marks
	}

	content := make([]string, 0, len(r.IndicativeContent))
	content = append(content, r.IndicativeContent...)

	descriptors := make([]models.LevelDescriptor, 0, len(r.LevelDescriptors))
	for _, descriptor := range r.LevelDescriptors {
		descriptors = append(descriptors, models.LevelDescriptor{
			Label: descriptor.Label,
			Text:  descriptor.Text,
		})
	}

	return models.MarkSchemeEntry{
		QuestionID:        r.QuestionID,
		MaxMarks:          r.MaxMarks,
		CommandWord:       r.CommandWord,
		ObjectiveWeights:  weights,
		IndicativeContent: content,
		LevelDescriptors:  descriptors,
		SpagMarks:         r.SpagMarks,
	}
}

// ToModels converts every entry in the document.
func (d MarkSchemeDocument) ToModels() []models.MarkSchemeEntry {
	entries := make([]models.MarkSchemeEntry, 0, len(d.Entries))
	for _, entry := range d.Entries {
		entries = append(entries, entry.ToModel())
	}

	return entries
}
