package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDropdownSetInsertionOrder(t *testing.T) {
	s := NewDropdownSet()
	s.Set("zeta", []string{"z"})
	s.Set("alfa", []string{"a"})
	s.Set("media", []string{"m"})

	assert.Equal(t, []string{"zeta", "alfa", "media"}, s.Keys())
	assert.Equal(t, 3, s.Len())
}

func TestDropdownSetReplaceKeepsPosition(t *testing.T) {
	s := NewDropdownSet()
	s.Set("primero", []string{"a"})
	s.Set("segundo", []string{"b"})
	s.Set("primero", []string{"c"})

	assert.Equal(t, []string{"primero", "segundo"}, s.Keys())
	v, ok := s.Get("primero")
	require.True(t, ok)
	assert.Equal(t, []string{"c"}, v)
}

func TestDropdownSetMarshalJSON(t *testing.T) {
	s := NewDropdownSet()
	s.Set("colores", []string{"Rojo", "Verde"})
	s.Set("anios", []int{2023, 2024})

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `{"colores":["Rojo","Verde"],"anios":[2023,2024]}`, string(data))

	// Order survives a round of indentation.
	var buf strings.Builder
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	require.NoError(t, enc.Encode(s))
	assert.Less(t, strings.Index(buf.String(), "colores"), strings.Index(buf.String(), "anios"))
}

func TestDropdownSetEmpty(t *testing.T) {
	s := NewDropdownSet()
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
	assert.False(t, s.Has("nada"))
}
