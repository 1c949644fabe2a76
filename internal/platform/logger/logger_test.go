package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"":        Info,
		"debug":   Debug,
		" WARN ":  Warn,
		"warning": Warn,
		"error":   Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat(""))
	assert.Equal(t, FormatText, ParseFormat("console"))
}

func TestZapLogger_WithMergesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZap(zap.New(core)).With(map[string]any{"component": "store", "": "dropped"})

	l.Warn("store operation failed", map[string]any{"op": "read"})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "store operation failed", entry.Message)
	assert.Equal(t, zapcore.WarnLevel, entry.Level)

	fields := entry.ContextMap()
	assert.Equal(t, "store", fields["component"])
	assert.Equal(t, "read", fields["op"])
	_, hasEmpty := fields[""]
	assert.False(t, hasEmpty)
}

func TestZapLogger_RespectsLevel(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	l := NewZap(zap.New(core))

	l.Debug("hidden", nil)
	l.Info("hidden", nil)
	l.Error("shown", nil)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "shown", logs.All()[0].Message)
}

type syncCounter struct {
	Logger
	calls int
}

func (s *syncCounter) Sync() error {
	s.calls++
	return nil
}

func TestFlush(t *testing.T) {
	sc := &syncCounter{Logger: NewNop()}
	Flush(sc)
	assert.Equal(t, 1, sc.calls)

	// sin Sync o nil: no-op
	Flush(nil)
	Flush(NewNop())
}
