package sail

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigFallsBackWhenEnvUnset(t *testing.T) {
	t.Setenv("SAILSHIP_CONFIG", "")
	os.Unsetenv("SAILSHIP_CONFIG")
	cfg := LoadConfig(NopDiagnostics())
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFallsBackOnUnreadableDir(t *testing.T) {
	t.Setenv("SAILSHIP_CONFIG", "/nonexistent/path/for/sailship/config")
	cfg := LoadConfig(NopDiagnostics())
	assert.Equal(t, DefaultConfig(), cfg)
}
