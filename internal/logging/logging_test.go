package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func TestPlainFormatter(t *testing.T) {
	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	cases := []struct {
		name    string
		data    logrus.Fields
		message string
		want    string
	}{
		{
			name: "component and fields",
			data: logrus.Fields{
				"component": "poller",
				"caller":    "x.go:1",
				"session":   "s1",
				"attempt":   2,
			},
			message: "fetch failed",
			want:    "x.go:1 [2025-01-02T03:04:05Z] [INFO] [poller] fetch failed attempt=2 session=s1\n",
		},
		{
			name:    "bare",
			data:    logrus.Fields{},
			message: "hello",
			want:    "[2025-01-02T03:04:05Z] [INFO] hello\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entry := &logrus.Entry{
				Logger:  logrus.New(),
				Time:    ts,
				Level:   logrus.InfoLevel,
				Message: tc.message,
				Data:    tc.data,
			}
			out, err := (PlainFormatter{}).Format(entry)
			if err != nil {
				t.Fatalf("Format() error: %v", err)
			}
			if got := string(out); got != tc.want {
				t.Fatalf("unexpected format:\nwant: %q\ngot:  %q", tc.want, got)
			}
		})
	}
}

func TestNamedAndLevel(t *testing.T) {
	var buf bytes.Buffer
	base := logrus.NewEntry(New(&buf, logrus.WarnLevel))
	log := Named(base, "ui")

	log.Info("hidden")
	log.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info entry written at warn level: %q", out)
	}
	if !strings.Contains(out, "[WARNING] [ui] shown") {
		t.Fatalf("output = %q, want component-tagged warn line", out)
	}
	if !strings.Contains(out, "internal/logging/logging_test.go:") {
		t.Fatalf("output = %q, want shortened caller", out)
	}
}

func TestNamed_NilBaseDiscards(t *testing.T) {
	entry := Named(nil, "x")
	entry.Error("dropped")
	if entry.Data["component"] != "x" {
		t.Fatalf("component = %v, want x", entry.Data["component"])
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]logrus.Level{
		"":        logrus.InfoLevel,
		" DEBUG ": logrus.DebugLevel,
		"warn":    logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("ParseLevel(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("ParseLevel(loud) returned nil error")
	}
}

func TestSetup_WritesSessionTaggedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "subline.log")

	log, closer, err := Setup(Options{Path: path, Level: "debug"})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	Named(log, "app").Debug("started")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, "[DEBUG] [app] started") {
		t.Fatalf("log = %q, want debug line", line)
	}
	idx := strings.Index(line, "session=")
	if idx == -1 {
		t.Fatalf("log = %q, want session field", line)
	}
	id := strings.TrimSpace(line[idx+len("session="):])
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("session %q is not a uuid: %v", id, err)
	}
}

func TestSetup_Errors(t *testing.T) {
	if _, _, err := Setup(Options{Path: ""}); err == nil {
		t.Fatalf("Setup with empty path returned nil error")
	}
	if _, _, err := Setup(Options{Path: filepath.Join(t.TempDir(), "x.log"), Level: "loud"}); err == nil {
		t.Fatalf("Setup with bad level returned nil error")
	}
}
