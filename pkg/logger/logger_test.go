package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitWithOutput_Level(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		set   bool
		level logrus.Level
	}{
		{name: "unset defaults to info", level: logrus.InfoLevel},
		{name: "debug", env: "debug", set: true, level: logrus.DebugLevel},
		{name: "warn", env: "warn", set: true, level: logrus.WarnLevel},
		{name: "garbage falls back to info", env: "loud", set: true, level: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv("LOG_LEVEL", tt.env)
			} else {
				t.Setenv("LOG_LEVEL", "")
				// t.Setenv cannot unset; an empty value parses as an error and falls back to info.
			}
			InitWithOutput(&bytes.Buffer{})
			if got := Log.GetLevel(); got != tt.level {
				t.Errorf("level = %v, want %v", got, tt.level)
			}
		})
	}
}

func TestInitWithOutput_JSON(t *testing.T) {
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_FORMAT", "JSON")

	var buf bytes.Buffer
	InitWithOutput(&buf)
	Component("fov_system").Info("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON line, got %q: %v", buf.String(), err)
	}
	if entry["component"] != "fov_system" {
		t.Errorf("component = %v, want fov_system", entry["component"])
	}
	if entry["msg"] != "hello" {
		t.Errorf("msg = %v, want hello", entry["msg"])
	}
}

func TestInitWithOutput_Text(t *testing.T) {
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_FORMAT", "text")

	var buf bytes.Buffer
	InitWithOutput(&buf)
	Component("cli").Info("ready")

	out := buf.String()
	if !strings.Contains(out, "component=cli") || !strings.Contains(out, "ready") {
		t.Errorf("unexpected text output %q", out)
	}
}
