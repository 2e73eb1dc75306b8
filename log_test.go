package unicodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// withLogger installs l as the package logger for the duration of the test.
func withLogger(t *testing.T, l *zap.Logger) {
	t.Helper()
	prev := Logger()
	SetLogger(l)
	t.Cleanup(func() { SetLogger(prev) })
}

func TestLoggerDefault(t *testing.T) {
	l := Logger()
	assert.NotNil(t, l)
	assert.False(t, l.Core().Enabled(zapcore.ErrorLevel))
}

func TestSetLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	withLogger(t, zap.New(core))

	SetLogger(nil)
	Logger().Info("hello")
	assert.Equal(t, 1, logs.FilterMessage("hello").Len())

	// the transcoder picks up the package logger at construction
	New(Options{Variant: VariantScalar}).Validate([]byte{0xFF})
	assert.Equal(t, 1, logs.FilterMessage("malformed input").Len())
}
