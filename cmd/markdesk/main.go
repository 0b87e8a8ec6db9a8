package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/opengrade/markdesk/internal/config"
	"github.com/opengrade/markdesk/internal/prompt"
	"github.com/opengrade/markdesk/internal/schemefile"
	"github.com/opengrade/markdesk/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	// Logs go to stderr so prompts and the scheme rendering own stdout.
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(level)

	validate := validator.New(validator.WithRequiredStructEnabled())
	loader := schemefile.NewLoader(validate, logger)

	entries, err := loader.Load(cfg.SchemePath)
	if err != nil {
		log.Fatalf("failed to load mark scheme: %v", err)
	}

	reader := prompt.NewReader(os.Stdin)
	grader := service.NewGradingService(reader, os.Stdout, cfg.StudentID, logger)

	ctx := context.Background()
	for _, entry := range entries {
		fmt.Printf("\n=== Question %s ===\n", entry.QuestionID)

		answer, err := readAnswer(reader)
		if err != nil {
			if errors.Is(err, io.EOF) {
				logger.Info().Msg("input closed, stopping")
				return
			}
			log.Fatalf("failed to read answer: %v", err)
		}

		grader.Grade(ctx, entry, answer)
	}
}

// readAnswer collects the student answer from the operator until a line
// containing only "." is entered.
func readAnswer(reader prompt.LineReader) (string, error) {
	fmt.Println(`Paste the student answer, then a line containing only "." to finish:`)

	var lines []string
	for {
		line, err := reader.ReadLine()
		if err != nil {
			return "", err
		}
		if line == "." {
			break
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n"), nil
}
