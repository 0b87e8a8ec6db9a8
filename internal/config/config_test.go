package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "markdesk", cfg.AppName)
	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, "markscheme.json", cfg.SchemePath)
	require.Equal(t, "student_001", cfg.StudentID)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverridesFromEnvironment(t *testing.T) {
	t.Setenv("MARKDESK_STUDENT_ID", "cand-8841")
	t.Setenv("MARKDESK_SCHEME_PATH", "paper2.json")
	t.Setenv("MARKDESK_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "cand-8841", cfg.StudentID)
	require.Equal(t, "paper2.json", cfg.SchemePath)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsBlankStudentID(t *testing.T) {
	t.Setenv("MARKDESK_STUDENT_ID", "   ")

	_, err := Load()
	require.Error(t, err)
}
