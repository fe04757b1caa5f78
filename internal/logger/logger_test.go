package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixed() time.Time { return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC) }

func TestLevelsAndPrefix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "lab.txt")
	l := NewWithPath(path)
	l.now = fixed

	l.Debug("hidden %d", 1)
	l.Info("mode %s", "edit")
	l.Warn("focus lost")

	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "[2024-03-01 12:30:00] INFO mode edit", lines[0])
	assert.Equal(t, "[2024-03-01 12:30:00] WARN focus lost", lines[1])

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(lines, "\n")+"\n", string(data))
}

func TestSetLevel(t *testing.T) {
	l := NewWithPath("")
	l.SetLevel(LevelDebug)
	l.Debug("shown")
	l.SetLevel(LevelError)
	l.Warn("dropped")
	l.Error("kept")
	assert.Len(t, l.Lines(), 2)
}

func TestRingKeepsNewest(t *testing.T) {
	l := NewWithPath("")
	l.SetCapacity(3)
	for i := 0; i < 5; i++ {
		l.Info("line %d", i)
	}
	lines := l.Lines()
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[0], "line 2"))
	assert.True(t, strings.HasSuffix(lines[2], "line 4"))
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug": LevelDebug,
		"INFO":  LevelInfo,
		"":      LevelInfo,
		"warn":  LevelWarn,
		"Error": LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}
