package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_WritesTerminalLine(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	l, err := New(&buf, "")
	require.NoError(t, err)

	l.LogInvoice("CREATE", "12345", "reserved TX1")

	out := buf.String()
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "[INVOICE ]")
	assert.Contains(t, out, "[CREATE] 12345 - reserved TX1")
	assert.Contains(t, out, "logger_test.go")
}

func TestLogger_JSONSink(t *testing.T) {
	color.NoColor = true
	path := filepath.Join(t.TempDir(), "logs", "qris.log")

	l, err := New(&bytes.Buffer{}, path)
	require.NoError(t, err)
	l.LogRejection("VERIFY", "unpaid")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry LogEntry
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry))
	assert.Equal(t, "WARN", entry.Level)
	assert.Equal(t, "REJECT", entry.Category)
	assert.Equal(t, "[VERIFY] unpaid", entry.Message)
}

type failingSink struct{}

func (failingSink) Write([]byte) (int, error) { return 0, errors.New("disk full") }
func (failingSink) Close() error              { return nil }

func TestLogger_JSONSinkFailureIsReported(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	l := &Logger{out: &buf, jsonSink: failingSink{}}

	l.Info("SERVER", "listening")

	out := buf.String()
	assert.Contains(t, out, "listening")
	assert.Contains(t, out, "logger: json sink: failed to write log entry: disk full")
}
