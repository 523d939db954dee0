package utils

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	SetLoggerWriter(&buf, true)
	defer SetLoggerConsole(false)

	SetLevel(0)
	log.Debug().Msg("hidden")
	log.Info().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "| INFO  |")
	assert.Contains(t, buf.String(), "shown")
	// Caller is the bare file name, without its directory.
	assert.Contains(t, buf.String(), "logging_test.go.")
	assert.NotContains(t, buf.String(), "/logging_test.go")

	buf.Reset()
	SetLevel(2)
	log.Trace().Msg("deep")
	assert.Contains(t, buf.String(), "| TRACE |")
	SetLevel(0)
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "[1 2]", V([]int{1, 2}))
}
