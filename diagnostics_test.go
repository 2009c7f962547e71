package sail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNopDiagnosticsDoesNotPanic(t *testing.T) {
	d := NopDiagnostics()
	assert.NotPanics(t, func() {
		d.Debug("msg", "x")
		d.Info("msg", "y")
		d.Warn("msg", "z")
		d.Error("msg", "w")
	})
}

func TestNewDiagnosticsTagsComponent(t *testing.T) {
	d := NewDiagnostics("predictor")
	assert.NotPanics(t, func() { d.Info("msg", "hello") })
}
