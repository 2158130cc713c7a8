package external

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedroganco/sanum/internal/domain"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		err      error
	}{
		{"bare object", `{"a":1}`, `{"a":1}`, nil},
		{"prose around", "Aqui está:\n{\"a\":1}\nEspero que ajude.", `{"a":1}`, nil},
		{"code fence", "```json\n{\"a\":{\"b\":2}}\n```", `{"a":{"b":2}}`, nil},
		{"greedy to last brace", `x {"a":1} y {"b":2} z`, `{"a":1} y {"b":2}`, nil},
		{"no braces", "sorry, I cannot help", "", domain.ErrNoJSON},
		{"closing before opening", "} nothing {", "", domain.ErrNoJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSONObject(tt.input)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDecodeJSONObject(t *testing.T) {
	var out struct {
		LabName string `json:"labName"`
		Markers []struct {
			Value float64 `json:"value"`
		} `json:"markers"`
	}

	err := DecodeJSONObject("Resultado:\n{\"labName\":\"Lab\",\"markers\":[{\"value\":16.5}]}", &out)
	require.NoError(t, err)
	assert.Equal(t, "Lab", out.LabName)
	require.Len(t, out.Markers, 1)
	assert.Equal(t, 16.5, out.Markers[0].Value)

	err = DecodeJSONObject(`{"labName": }`, &out)
	assert.True(t, errors.Is(err, domain.ErrInvalidJSON))

	err = DecodeJSONObject(`no json here`, &out)
	assert.True(t, errors.Is(err, domain.ErrNoJSON))
}
