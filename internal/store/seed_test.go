package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeed(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadSeedJSON(t *testing.T) {
	p := writeSeed(t, "catalog.json", `{
  "items": [
    {"id": 1, "name": "Widget", "description": "A thing"},
    {"id": 2, "name": "Gadget", "description": "Another"}
  ]
}`)
	seed, err := LoadSeed(p)
	require.NoError(t, err)
	require.Len(t, seed.Items, 2)
	assert.Zero(t, seed.Skipped)
	assert.Equal(t, "Widget", seed.Items[0].Name)
	assert.Equal(t, 2, seed.Items[1].ID)
}

func TestLoadSeedJSONSkipsInvalidRows(t *testing.T) {
	p := writeSeed(t, "catalog.json", `{
  "items": [
    {"id": 1, "name": "Widget", "description": "A thing"},
    {"id": 2, "name": "   ", "description": "blank name"},
    {"id": 3, "name": "No desc", "description": ""},
    {"id": 1, "name": "Dup", "description": "duplicate id"},
    {"id": 0, "name": "Zero", "description": "no id"}
  ]
}`)
	seed, err := LoadSeed(p)
	require.NoError(t, err)
	require.Len(t, seed.Items, 1)
	assert.Equal(t, 4, seed.Skipped)
	assert.Equal(t, "Widget", seed.Items[0].Name)
}

func TestLoadSeedJSONTrimsFields(t *testing.T) {
	p := writeSeed(t, "catalog.json", `{"items":[{"id":1,"name":"  Widget ","description":" A thing  "}]}`)
	seed, err := LoadSeed(p)
	require.NoError(t, err)
	require.Len(t, seed.Items, 1)
	assert.Equal(t, "Widget", seed.Items[0].Name)
	assert.Equal(t, "A thing", seed.Items[0].Description)
}

func TestLoadSeedCSV(t *testing.T) {
	p := writeSeed(t, "catalog.csv", "id,name,description\n1,Widget,A thing\n2,Gadget,Another\n")
	seed, err := LoadSeed(p)
	require.NoError(t, err)
	require.Len(t, seed.Items, 2)
	assert.Equal(t, "Gadget", seed.Items[1].Name)
}

func TestLoadSeedCSVSkipsRowsWithoutID(t *testing.T) {
	p := writeSeed(t, "catalog.csv", "id,name,description\n,NoID,whatever\nx,BadID,whatever\n1,Widget,A thing\n")
	seed, err := LoadSeed(p)
	require.NoError(t, err)
	require.Len(t, seed.Items, 1)
	assert.Equal(t, 2, seed.Skipped)
}

func TestLoadSeedCSVMissingColumn(t *testing.T) {
	p := writeSeed(t, "catalog.csv", "id,name\n1,Widget\n")
	_, err := LoadSeed(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "description")
}

func TestLoadSeedMissingFile(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadSeedMalformedJSON(t *testing.T) {
	p := writeSeed(t, "catalog.json", "{not json")
	_, err := LoadSeed(p)
	require.Error(t, err)
}
