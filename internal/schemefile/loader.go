package schemefile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/opengrade/markdesk/internal/dto"
	"github.com/opengrade/markdesk/internal/models"
)

// Loader reads mark-scheme documents on behalf of the CLI caller. The grading
// core itself never touches files; sourcing rubric definitions is a caller
// concern.
type Loader struct {
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewLoader constructs the loader.
func NewLoader(validate *validator.Validate, logger zerolog.Logger) *Loader {
	return &Loader{
		validate: validate,
		logger:   logger.With().Str("component", "schemefile_loader").Logger(),
	}
}

// Load reads and parses the mark-scheme document at path.
func (l *Loader) Load(path string) ([]models.MarkSchemeEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scheme file: %w", err)
	}

	entries, err := l.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return entries, nil
}

// Parse decodes and validates a raw scheme document, returning its entries in
// document order.
func (l *Loader) Parse(raw []byte) ([]models.MarkSchemeEntry, error) {
	var doc dto.MarkSchemeDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode scheme document: %w", err)
	}

	if err := l.validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("invalid scheme document: %w", err)
	}

	entries := doc.ToModels()
	l.logger.Info().Int("entries", len(entries)).Msg("mark scheme loaded")

	return entries, nil
}
