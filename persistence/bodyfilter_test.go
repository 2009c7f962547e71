package persistence

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaveAndLoadBodyFilterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bodyfilter.json")
	f := BodyFilter{Bodies: []string{"Earth", "Mars"}}

	assert.NoError(t, SaveBodyFilter(path, f))

	loaded, err := LoadBodyFilter(path)
	assert.NoError(t, err)
	assert.Equal(t, f, loaded)
	assert.True(t, loaded.Contains("Earth"))
	assert.False(t, loaded.Contains("Venus"))
}

func TestLoadBodyFilterMissingFileReturnsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")
	loaded, err := LoadBodyFilter(path)
	assert.NoError(t, err)
	assert.Equal(t, BodyFilter{}, loaded)
}
