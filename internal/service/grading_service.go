package service

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/opengrade/markdesk/internal/models"
	"github.com/opengrade/markdesk/internal/prompt"
	"github.com/opengrade/markdesk/internal/utils"
)

// answerPreviewLimit is the number of characters of the answer shown to the
// marker before truncation.
const answerPreviewLimit = 200

// malformedInputComment replaces the marker's comments when a numeric prompt
// cannot be parsed.
const malformedInputComment = "Error in marking input."

// GradingService runs a single human-in-the-loop grading pass for one
// (entry, answer) pair.
type GradingService interface {
	Grade(ctx context.Context, entry models.MarkSchemeEntry, answerText string) models.GradedResponse
}

type gradingService struct {
	input     prompt.LineReader
	out       io.Writer
	studentID string
	logger    zerolog.Logger
	newID     func() string
}

// NewGradingService constructs the grading service. Responses are stamped
// with studentID; output and prompts flow through out and input so callers
// control the interaction surface.
func NewGradingService(input prompt.LineReader, out io.Writer, studentID string, logger zerolog.Logger) GradingService {
	return &gradingService{
		input:     input,
		out:       out,
		studentID: studentID,
		logger:    logger.With().Str("component", "grading_service").Logger(),
		newID:     uuid.NewString,
	}
}

// Grade renders the scheme and answer preview, collects the marker's level,
// marks and comments, and packages a GradedResponse. It never fails: a
// malformed numeric entry collapses to zero content marks with a fixed
// diagnostic comment, once per call, without re-prompting.
func (s *gradingService) Grade(ctx context.Context, entry models.MarkSchemeEntry, answerText string) models.GradedResponse {
	tracer := otel.Tracer("github.com/opengrade/markdesk/internal/service/grading")
	_, span := tracer.Start(ctx, "grading.interactive")
	span.SetAttributes(
		attribute.String("grading.question_id", entry.QuestionID),
		attribute.Int("grading.max_marks", entry.MaxMarks),
	)
	defer span.End()

	logger := s.logger.With().
		Str("session_id", s.newID()).
		Str("question_id", entry.QuestionID).
		Logger()

	s.renderScheme(entry, answerText)

	awarded, comments, err := s.collectJudgment(entry, logger)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "malformed_marking_input")
		logger.Warn().Err(err).Msg("malformed marking input, awarding zero content marks")

		awarded = map[string]int{models.CategoryContent: 0}
		comments = malformedInputComment
	}

	response := models.GradedResponse{
		StudentID:      s.studentID,
		QuestionID:     entry.QuestionID,
		AnswerText:     answerText,
		AwardedMarks:   awarded,
		MarkerComments: comments,
	}
	response.RecomputeTotal()

	fmt.Fprintf(s.out, "\nAwarded %d/%d marks.\n", response.TotalAwarded, entry.MaxMarks)
	fmt.Fprintf(s.out, "Comments: %s\n", response.MarkerComments)

	span.SetAttributes(attribute.Int("grading.total_awarded", response.TotalAwarded))
	logger.Info().
		Int("total_awarded", response.TotalAwarded).
		Int("max_marks", entry.MaxMarks).
		Msg("graded response recorded")

	return response
}

func (s *gradingService) renderScheme(entry models.MarkSchemeEntry, answerText string) {
	fmt.Fprint(s.out, entry.Describe())
	fmt.Fprintf(s.out, "Answer preview: %s\n", utils.TruncatePreview(answerText, answerPreviewLimit))

	if len(entry.IndicativeContent) > 0 {
		fmt.Fprintln(s.out, "Indicative content:")
		for _, point := range entry.IndicativeContent {
			fmt.Fprintf(s.out, "  - %s\n", point)
		}
	}

	if len(entry.LevelDescriptors) > 0 {
		fmt.Fprintln(s.out, "Level descriptors:")
		for _, descriptor := range entry.LevelDescriptors {
			fmt.Fprintf(s.out, "  %s: %s\n", descriptor.Label, descriptor.Text)
		}
	}
}

// collectJudgment asks for level, marks and comments in strict order. The
// entered level only informs the prompt range and the session log; crediting
// uses the marks value alone.
func (s *gradingService) collectJudgment(entry models.MarkSchemeEntry, logger zerolog.Logger) (map[string]int, string, error) {
	level, err := s.promptInt(fmt.Sprintf("Level achieved (1-%d): ", len(entry.LevelDescriptors)))
	if err != nil {
		return nil, "", err
	}

	marks, err := s.promptInt("Marks for this level: ")
	if err != nil {
		return nil, "", err
	}

	comments, err := s.promptLine("Marker comments: ")
	if err != nil {
		return nil, "", err
	}

	logger.Debug().Int("level", level).Int("marks_entered", marks).Msg("marker judgment collected")

	return creditMarks(entry, marks), comments, nil
}

// creditMarks applies the single-objective crediting rule: an entry weighted
// for AO3 credits AO3 capped at its allocation, anything else credits the
// generic content category uncapped. Entries weighting several objectives at
// once have no defined per-objective split.
func creditMarks(entry models.MarkSchemeEntry, marks int) map[string]int {
	if weight, ok := entry.ObjectiveWeights[models.ObjectiveAO3]; ok {
		if marks > weight {
			marks = weight
		}
		return map[string]int{models.ObjectiveAO3: marks}
	}

	return map[string]int{models.CategoryContent: marks}
}

func (s *gradingService) promptLine(label string) (string, error) {
	fmt.Fprint(s.out, label)
	return s.input.ReadLine()
}

func (s *gradingService) promptInt(label string) (int, error) {
	line, err := s.promptLine(label)
	if err != nil {
		return 0, err
	}

	value, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", line, err)
	}

	return value, nil
}
