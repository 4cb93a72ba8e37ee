package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	lines []string
}

func (r *recorder) Debug(m string, _ ...any) { r.lines = append(r.lines, "debug:"+m) }
func (r *recorder) Info(m string, _ ...any)  { r.lines = append(r.lines, "info:"+m) }
func (r *recorder) Warn(m string, _ ...any)  { r.lines = append(r.lines, "warn:"+m) }
func (r *recorder) Error(m string, _ ...any) { r.lines = append(r.lines, "error:"+m) }
func (r *recorder) Fatal(m string, _ ...any) { r.lines = append(r.lines, "fatal:"+m) }

func TestCallsBeforeInitAreDropped(t *testing.T) {
	singleton = nil
	assert.NotPanics(t, func() {
		Info("nobody listening")
		Warn("still nobody")
	})
}

func TestDispatchToAllBackends(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	Init(a, b)
	defer func() { singleton = nil }()

	Debug("d")
	Info("i", "k", 1)
	Warn("w")
	Error("e")

	want := []string{"debug:d", "info:i", "warn:w", "error:e"}
	assert.Equal(t, want, a.lines)
	assert.Equal(t, want, b.lines)
}
