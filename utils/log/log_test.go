package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   DEBUG,
		"INFO":    INFO,
		"warn":    WARNING,
		"warning": WARNING,
		"error":   ERROR,
		"fatal":   FATAL,
		"":        INFO,
		"bogus":   INFO,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestSetLevel(t *testing.T) {
	// not parallel: the level is process wide
	prev := GetLevel()
	defer SetLevel(prev)

	SetLevel(ERROR)
	assert.Equal(t, ERROR, GetLevel())
	assert.Equal(t, "error", GetLevel().String())

	// gated calls must not panic
	Debug("hidden %d", 1)
	Info("hidden %s", "too")
	Warn("hidden")
	Error("shown %v", "once")
}
