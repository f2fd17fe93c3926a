package logger

import (
	"os"
	"testing"
	"time"
)

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.service)
	}
}

func TestNew(t *testing.T) {
	cfg := &Config{
		Level:  "debug",
		Format: "json",
		Output: "stdout",
	}
	l := New(cfg, "my-service")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestNewInvalidLevel(t *testing.T) {
	cfg := &Config{
		Level:  "invalid-level",
		Format: "json",
		Output: "stdout",
	}
	if New(cfg, "test") == nil {
		t.Fatal("expected logger to be created even with invalid level")
	}
}

func TestNewFromEnv(t *testing.T) {
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	os.Setenv("LOG_CALLER", "true")
	defer os.Unsetenv("LOG_LEVEL")
	defer os.Unsetenv("LOG_FORMAT")
	defer os.Unsetenv("LOG_CALLER")

	l := NewFromEnv("env-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	l.Info("caller enabled via env")
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}

	bad := &Config{Level: "loud", Format: "json", Output: "stdout"}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestFields(t *testing.T) {
	m := Fields("stream", "orders", "count", 3)
	if m["stream"] != "orders" || m["count"] != 3 {
		t.Errorf("unexpected fields: %v", m)
	}
}

func TestDurationFields(t *testing.T) {
	m := DurationFields("pull", 1500*time.Millisecond)
	if m[FieldOperation] != "pull" {
		t.Errorf("unexpected operation: %v", m[FieldOperation])
	}
	if m[FieldDuration] != int64(1500) {
		t.Errorf("unexpected duration: %v", m[FieldDuration])
	}
}

func TestWithComponent(t *testing.T) {
	l := NewDefault("svc").WithComponent("peekable")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	l.Debug("component scoped")
}
