package observe

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

// TestLogger_IncludesAppFields verifies app fields are present in log output.
func TestLogger_IncludesAppFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	meta := AppMeta{
		Name:  "snake",
		Scene: "title",
	}

	appLogger := logger.WithApp(meta)
	appLogger.Info(context.Background(), "test message")

	output := buf.String()

	// Parse JSON output
	var logEntry map[string]any
	if err := json.Unmarshal([]byte(output), &logEntry); err != nil {
		t.Fatalf("failed to parse log output as JSON: %v\nOutput: %s", err, output)
	}

	// Verify app fields
	if v, ok := logEntry["app.name"].(string); !ok || v != "snake" {
		t.Errorf("expected app.name='snake', got %v", logEntry["app.name"])
	}
	if v, ok := logEntry["app.scene"].(string); !ok || v != "title" {
		t.Errorf("expected app.scene='title', got %v", logEntry["app.scene"])
	}
}

// TestLogger_IncludesDuration verifies duration_ms field is present.
func TestLogger_IncludesDuration(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	meta := AppMeta{Name: "test_app"}
	appLogger := logger.WithApp(meta)

	appLogger.Info(context.Background(), "test message",
		Field{Key: "duration_ms", Value: 16.5},
	)

	output := buf.String()

	var logEntry map[string]any
	if err := json.Unmarshal([]byte(output), &logEntry); err != nil {
		t.Fatalf("failed to parse log output as JSON: %v", err)
	}

	if v, ok := logEntry["duration_ms"].(float64); !ok || v != 16.5 {
		t.Errorf("expected duration_ms=16.5, got %v", logEntry["duration_ms"])
	}
}

// TestLogger_ErrorLevel verifies error log level and error field.
func TestLogger_ErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	meta := AppMeta{Name: "error_app"}
	appLogger := logger.WithApp(meta)

	appLogger.Error(context.Background(), "frame render failed",
		Field{Key: "error", Value: "broken pipe"},
	)

	output := buf.String()

	var logEntry map[string]any
	if err := json.Unmarshal([]byte(output), &logEntry); err != nil {
		t.Fatalf("failed to parse log output as JSON: %v", err)
	}

	// Verify level
	if v, ok := logEntry["level"].(string); !ok || v != "error" {
		t.Errorf("expected level='error', got %v", logEntry["level"])
	}

	// Verify error field
	if v, ok := logEntry["error"].(string); !ok || v != "broken pipe" {
		t.Errorf("expected error='broken pipe', got %v", logEntry["error"])
	}
}

// TestLogger_InfoLevel verifies info log level.
func TestLogger_InfoLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	meta := AppMeta{Name: "info_app"}
	appLogger := logger.WithApp(meta)

	appLogger.Info(context.Background(), "session started")

	output := buf.String()

	var logEntry map[string]any
	if err := json.Unmarshal([]byte(output), &logEntry); err != nil {
		t.Fatalf("failed to parse log output as JSON: %v", err)
	}

	if v, ok := logEntry["level"].(string); !ok || v != "info" {
		t.Errorf("expected level='info', got %v", logEntry["level"])
	}
}

// TestLogger_LevelFiltering verifies log level filtering.
func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("warn", &buf)

	meta := AppMeta{Name: "filtered_app"}
	appLogger := logger.WithApp(meta)

	// Info should be filtered out
	appLogger.Info(context.Background(), "info message")

	output := buf.String()
	if strings.Contains(output, "info message") {
		t.Error("info message should be filtered when level is warn")
	}

	// Warn should pass through
	appLogger.Warn(context.Background(), "warn message")

	output = buf.String()
	if !strings.Contains(output, "warn message") {
		t.Error("warn message should pass through when level is warn")
	}
}

// TestLogger_DebugLevel verifies debug level filtering.
func TestLogger_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("debug", &buf)

	meta := AppMeta{Name: "debug_app"}
	appLogger := logger.WithApp(meta)

	appLogger.Debug(context.Background(), "debug message")

	output := buf.String()

	var logEntry map[string]any
	if err := json.Unmarshal([]byte(output), &logEntry); err != nil {
		t.Fatalf("failed to parse log output as JSON: %v", err)
	}

	if v, ok := logEntry["level"].(string); !ok || v != "debug" {
		t.Errorf("expected level='debug', got %v", logEntry["level"])
	}
}

// TestLogger_WarnLevel verifies warn level.
func TestLogger_WarnLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	meta := AppMeta{Name: "warn_app"}
	appLogger := logger.WithApp(meta)

	appLogger.Warn(context.Background(), "warning message")

	output := buf.String()

	var logEntry map[string]any
	if err := json.Unmarshal([]byte(output), &logEntry); err != nil {
		t.Fatalf("failed to parse log output as JSON: %v", err)
	}

	if v, ok := logEntry["level"].(string); !ok || v != "warn" {
		t.Errorf("expected level='warn', got %v", logEntry["level"])
	}
}

// TestLogger_VersionIncluded verifies version is included when set.
func TestLogger_VersionIncluded(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	meta := AppMeta{
		Name:    "versioned_app",
		Version: "2.0.0",
	}
	appLogger := logger.WithApp(meta)

	appLogger.Info(context.Background(), "test")

	output := buf.String()

	var logEntry map[string]any
	if err := json.Unmarshal([]byte(output), &logEntry); err != nil {
		t.Fatalf("failed to parse log output as JSON: %v", err)
	}

	if v, ok := logEntry["app.version"].(string); !ok || v != "2.0.0" {
		t.Errorf("expected app.version='2.0.0', got %v", logEntry["app.version"])
	}
}
