package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToJSONPretty(t *testing.T) {
	v := map[string]string{"nombre": "Gasóleo calefacción (litros)"}

	data, err := ToJSON(v, true)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "  \"nombre\"")
	assert.Contains(t, text, "Gasóleo calefacción (litros)")
	assert.NotContains(t, text, `\u`, "non-ASCII characters stay literal")
}

func TestToJSONCompact(t *testing.T) {
	data, err := ToJSON(map[string]int{"a": 1}, false)
	require.NoError(t, err)
	assert.Equal(t, "{\"a\":1}\n", string(data))
}

func TestWriteFileCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	path, err := WriteFile(dir, "emission_factors.json", map[string]string{"version": "V.31"}, true)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "emission_factors.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "V.31")
}

func TestWriteFileOverwrites(t *testing.T) {
	dir := t.TempDir()

	_, err := WriteFile(dir, "out.json", map[string]string{"v": "antiguo"}, false)
	require.NoError(t, err)
	path, err := WriteFile(dir, "out.json", map[string]string{"v": "nuevo"}, false)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "nuevo")
	assert.NotContains(t, string(data), "antiguo")
}
