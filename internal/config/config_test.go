package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.ExamQuestionCount != 10 {
		t.Errorf("expected 10 questions per exam, got %d", cfg.ExamQuestionCount)
	}
	if cfg.DefaultTimeLimit != 30 {
		t.Errorf("expected default time limit 30, got %d", cfg.DefaultTimeLimit)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("expected 24h token ttl, got %v", cfg.TokenTTL)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info log level, got %v", cfg.LogLevel)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("TOKEN_TTL_HOURS", "48")
	t.Setenv("EXAM_QUESTION_COUNT", "20")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[0] != "kafka-1:9092" {
		t.Errorf("unexpected brokers %v", cfg.KafkaBrokers)
	}
	if cfg.TokenTTL != 48*time.Hour {
		t.Errorf("expected 48h token ttl, got %v", cfg.TokenTTL)
	}
	if cfg.ExamQuestionCount != 20 {
		t.Errorf("expected 20 questions per exam, got %d", cfg.ExamQuestionCount)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug log level, got %v", cfg.LogLevel)
	}
}

func TestLoadConfigInvalidValues(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"bad ttl", "TOKEN_TTL_HOURS", "zero"},
		{"negative ttl", "TOKEN_TTL_HOURS", "-1"},
		{"bad question count", "EXAM_QUESTION_COUNT", "ten"},
		{"bad time limit", "DEFAULT_TIME_LIMIT", "0"},
		{"bad log level", "LOG_LEVEL", "verbose"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := LoadConfig(); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
