// Package output serializes converter results to JSON files.
package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
)

// ToJSON serializes v as UTF-8 JSON. Non-ASCII characters are kept literal
// (no escaping of accented characters); pretty enables two-space indentation.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile serializes v and writes it to dir/name, creating dir if absent.
// The write is a whole-file overwrite: no atomic rename, no backup of prior
// output. Returns the written path.
func WriteFile(dir, name string, v interface{}, pretty bool) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	data, err := ToJSON(v, pretty)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
