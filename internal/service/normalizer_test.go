package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedroganco/sanum/internal/domain"
	"github.com/pedroganco/sanum/internal/knowledge"
)

func fixtureCatalog() *knowledge.KnowledgeBase {
	return knowledge.New([]domain.MarkerInfo{
		{
			Name:     "Hemoglobina",
			Aliases:  []string{"HGB", "Hb"},
			Unit:     "g/dL",
			Category: domain.HEMATOLOGY,
			References: []domain.ReferenceRange{
				{Min: domain.Float(13), Max: domain.Float(17), Sex: domain.MALE},
				{Min: domain.Float(12), Max: domain.Float(16), Sex: domain.FEMALE},
			},
		},
		{
			Name:       "Glicose",
			Aliases:    []string{"Glicemia", "Glucose"},
			Unit:       "mg/dL",
			Category:   domain.METABOLISM,
			References: []domain.ReferenceRange{{Min: domain.Float(70), Max: domain.Float(110)}},
		},
		{
			Name:       "PSA",
			Aliases:    []string{"PSA Total"},
			Unit:       "ng/mL",
			Category:   domain.HORMONES,
			References: []domain.ReferenceRange{{Max: domain.Float(4), Sex: domain.MALE}},
		},
	})
}

func TestMarkerNormalizer_Resolve(t *testing.T) {
	n := NewMarkerNormalizer(fixtureCatalog())

	a, ok := n.Resolve("hgb")
	require.True(t, ok)
	b, ok := n.Resolve("HGB")
	require.True(t, ok)
	c, ok := n.Resolve("Hemoglobina")
	require.True(t, ok)

	assert.Same(t, a, b)
	assert.Same(t, b, c)

	_, ok = n.Resolve("Ferritina")
	assert.False(t, ok)
}

func TestMarkerNormalizer_NormalizeMarkerName(t *testing.T) {
	n := NewMarkerNormalizer(fixtureCatalog())

	tests := []struct {
		input    string
		expected string
	}{
		{"Hb", "Hemoglobina"},
		{" glucose ", "Glicose"},
		{"GLICEMIA", "Glicose"},
		{"Hemoglobina", "Hemoglobina"},
		{"Ferritina", "Ferritina"},
		{"  Ferritina  ", "  Ferritina  "},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, n.NormalizeMarkerName(tt.input))
		})
	}
}

func TestMarkerNormalizer_Idempotent(t *testing.T) {
	n := NewMarkerNormalizer(knowledge.Default())

	inputs := []string{"hgb", "TGO", "Vitamina D3", "Ureia", "colesterol", "unknown marker", " Na ", "ferro serico"}
	for _, kb := range knowledge.Default().Entries() {
		inputs = append(inputs, kb.Name)
		inputs = append(inputs, kb.Aliases...)
	}

	for _, in := range inputs {
		once := n.NormalizeMarkerName(in)
		assert.Equal(t, once, n.NormalizeMarkerName(once), "input %q", in)
	}
}

func TestSelectReference(t *testing.T) {
	kb := fixtureCatalog()
	hgb, _ := kb.Lookup("Hemoglobina")
	glucose, _ := kb.Lookup("Glicose")
	psa, _ := kb.Lookup("PSA")

	ref, ok := SelectReference(hgb, domain.FEMALE)
	require.True(t, ok)
	assert.Equal(t, 12.0, *ref.Min)

	ref, ok = SelectReference(hgb, domain.MALE)
	require.True(t, ok)
	assert.Equal(t, 13.0, *ref.Min)

	ref, ok = SelectReference(hgb, "")
	require.True(t, ok)
	assert.Equal(t, domain.MALE, ref.Sex, "falls back to the first range")

	ref, ok = SelectReference(glucose, domain.FEMALE)
	require.True(t, ok)
	assert.Equal(t, 110.0, *ref.Max)

	// A single range applies regardless of its sex tag.
	ref, ok = SelectReference(psa, domain.FEMALE)
	require.True(t, ok)
	assert.Equal(t, 4.0, *ref.Max)

	_, ok = SelectReference(&domain.MarkerInfo{Name: "Empty"}, domain.MALE)
	assert.False(t, ok)
	_, ok = SelectReference(nil, domain.MALE)
	assert.False(t, ok)
}
