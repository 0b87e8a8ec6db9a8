package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the marking tool.
type Config struct {
	AppName    string
	AppEnv     string
	SchemePath string
	StudentID  string
	LogLevel   string
}

// Load reads configuration values from environment variables and an optional
// .env file. StudentID is the identifier stamped on every graded response; the
// default is a placeholder for single-operator use and production callers
// should override it per candidate.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("MARKDESK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "markdesk")
	v.SetDefault("app.env", "development")
	v.SetDefault("scheme.path", "markscheme.json")
	v.SetDefault("student.id", "student_001")
	v.SetDefault("log.level", "info")

	cfg := Config{
		AppName:    v.GetString("app.name"),
		AppEnv:     v.GetString("app.env"),
		SchemePath: v.GetString("scheme.path"),
		StudentID:  v.GetString("student.id"),
		LogLevel:   v.GetString("log.level"),
	}

	if strings.TrimSpace(cfg.StudentID) == "" {
		return Config{}, fmt.Errorf("student id must be provided")
	}

	if strings.TrimSpace(cfg.SchemePath) == "" {
		return Config{}, fmt.Errorf("scheme path must be provided")
	}

	return cfg, nil
}
