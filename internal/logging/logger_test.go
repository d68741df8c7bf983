package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func newTestLogger(level Level) (*Logger, *bytes.Buffer) {
	var out bytes.Buffer
	log := DefaultLogger.WithTag("test")
	log.Level = level
	log.SetDestination(&out)
	return log, &out
}

func TestLogFormat(t *testing.T) {
	color.NoColor = true

	log, out := newTestLogger(Info)
	log.Info("opened %s", "movie.mp4")

	line := out.String()
	assert.True(t, strings.HasSuffix(line, "opened movie.mp4\n"), line)
	assert.Contains(t, line, " I/test[logger_test.go:")
}

func TestLevelFiltering(t *testing.T) {
	color.NoColor = true

	log, out := newTestLogger(Warn)
	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("shown")
	log.Error("shown too")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], " W/test")
	assert.Contains(t, lines[1], " E/test")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"e":     Error,
		"WARN":  Warn,
		"info":  Info,
		"D":     Debug,
		"trace": MaxLevel,
		"3":     Level(3),
	}
	for s, want := range cases {
		level, err := parseLevel(s)
		assert.NoError(t, err, s)
		assert.Equal(t, want, level, s)
	}

	_, err := parseLevel("loud")
	assert.Error(t, err)
	_, err = parseLevel("12")
	assert.Error(t, err)
}

func TestTagDirectives(t *testing.T) {
	saved, savedTags := defaultLevel, tagLevels
	defer func() { defaultLevel, tagLevels = saved, savedTags }()

	configure("warn,player=debug,media=bogus")

	assert.Equal(t, Warn, defaultLevel)
	assert.Equal(t, Debug, determineLevel("player", defaultLevel))
	assert.Equal(t, Warn, determineLevel("media", defaultLevel))
}
