package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigureAppliesLevel(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: WarnLevel, Output: &buf})

	Info().Msg("below threshold")
	Warn().Msg("at threshold")

	out := buf.String()
	assert.NotContains(t, out, "below threshold")
	assert.Contains(t, out, "at threshold")
	assert.Contains(t, out, `"level":"warn"`)
}

func TestConfigureUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "verbose", Output: &buf})

	Debug().Msg("suppressed")
	Info().Msg("emitted")

	out := buf.String()
	assert.NotContains(t, out, "suppressed")
	assert.Contains(t, out, "emitted")
}

func TestConfigurePrettyUsesConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: InfoLevel, Pretty: true, Output: &buf})

	Info().Str("key", "value").Msg("hello")

	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.NotContains(t, out, `"message"`)
}
