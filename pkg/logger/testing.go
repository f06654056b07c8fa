package logger

import (
	"bytes"
)

type testingTB interface {
	Helper()
	Cleanup(func())
}

// Stub the logger.Default and return the buffer where the logging output will be recorded.
// Stub will restore the logger.Default after the test.
func Stub(tb testingTB) *bytes.Buffer {
	tb.Helper()
	ogOut, ogLevel := Default.Out, Default.Level
	tb.Cleanup(func() {
		Default.Out = ogOut
		Default.Level = ogLevel
	})
	buf := &bytes.Buffer{}
	Default.Out = buf
	Default.Level = LevelDebug
	return buf
}
