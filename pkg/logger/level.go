package logger

import (
	"strings"

	"go.llib.dev/sequence/pkg/env"
)

type Level string

func (ll Level) String() string { return string(ll) }

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

var strToLevel = map[string]Level{
	"debug": LevelDebug,
	"info":  LevelInfo,
	"warn":  LevelWarn,
	"error": LevelError,

	"d": LevelDebug,
	"i": LevelInfo,
	"w": LevelWarn,
	"e": LevelError,
}

// ParseLevel accepts both the full level names and their single letter forms, case insensitive.
func ParseLevel(raw string) (Level, bool) {
	level, ok := strToLevel[strings.ToLower(strings.TrimSpace(raw))]
	return level, ok
}

func init() {
	if level, ok := lookupLevelFromENV(); ok {
		Default.Level = level
	}
}

func lookupLevelFromENV() (Level, bool) {
	for _, envKey := range []string{"LOG_LEVEL", "LOGGER_LEVEL", "LOGGING_LEVEL"} {
		raw, ok, err := env.Lookup[string](envKey)
		if err != nil || !ok {
			continue
		}
		if level, ok := ParseLevel(raw); ok {
			return level, true
		}
	}
	return "", false
}

var levelPriorityMapping = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

func isLevelEnabled(target, level Level) bool {
	if target == "" {
		target = LevelInfo
	}
	return levelPriorityMapping[target] <= levelPriorityMapping[level]
}
