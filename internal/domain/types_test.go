package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestFlagConstants(t *testing.T) {
	tests := []struct {
		name     string
		value    Flag
		expected string
		emoji    string
	}{
		{"Normal", NORMAL, "normal", "🟢"},
		{"Low", LOW, "low", "🟡"},
		{"High", HIGH, "high", "🟡"},
		{"Critical low", CRITICAL_LOW, "critical_low", "🔴"},
		{"Critical high", CRITICAL_HIGH, "critical_high", "🔴"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if string(tt.value) != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, string(tt.value))
			}
			if !tt.value.IsValid() {
				t.Errorf("Expected %s to be valid", tt.value)
			}
			if tt.value.Emoji() != tt.emoji {
				t.Errorf("Expected emoji %s, got %s", tt.emoji, tt.value.Emoji())
			}
		})
	}

	if Flag("borderline").IsValid() {
		t.Error("Expected unknown flag to be invalid")
	}
}

func TestCategoryLabels(t *testing.T) {
	tests := []struct {
		category Category
		label    string
	}{
		{HEMATOLOGY, "Hematologia"},
		{RENAL, "Função Renal"},
		{THYROID, "Função Tiroideia"},
		{IRON, "Metabolismo do Ferro"},
		{ELECTROLYTES, "Eletrólitos"},
		{OTHER, "Outros"},
		{Category("dermatology"), "Outros"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			if got := tt.category.Label(); got != tt.label {
				t.Errorf("Expected label %s, got %s", tt.label, got)
			}
		})
	}

	if len(Categories) != 13 {
		t.Errorf("Expected 13 categories, got %d", len(Categories))
	}
	for _, c := range Categories {
		if !c.IsValid() {
			t.Errorf("Expected %s to be valid", c)
		}
	}
}

func TestParseSex(t *testing.T) {
	tests := []struct {
		input    string
		expected Sex
		wantErr  bool
	}{
		{"M", MALE, false},
		{"m", MALE, false},
		{"F", FEMALE, false},
		{"f", FEMALE, false},
		{"X", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSex(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSex) {
					t.Errorf("Expected ErrInvalidSex, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestMarkerJSONAbsentBounds(t *testing.T) {
	m := Marker{
		ID:           "m-1",
		Name:         "PCR",
		OriginalName: "Proteína C Reactiva",
		Value:        2.1,
		Unit:         "mg/L",
		RefMax:       Float(5),
		RefText:      "< 5",
		Category:     INFLAMMATION,
		Flag:         NORMAL,
	}

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if v, ok := fields["refMin"]; !ok || v != nil {
		t.Errorf("Expected refMin to serialize as null, got %v", v)
	}
	if fields["refMax"] != 5.0 {
		t.Errorf("Expected refMax 5, got %v", fields["refMax"])
	}
	if fields["originalName"] != "Proteína C Reactiva" {
		t.Errorf("Unexpected originalName %v", fields["originalName"])
	}
}

func TestReportFlagCounts(t *testing.T) {
	r := &Report{
		ID:        "r-1",
		CreatedAt: time.Now(),
		Markers: []Marker{
			{Flag: NORMAL}, {Flag: NORMAL}, {Flag: HIGH}, {Flag: CRITICAL_LOW},
		},
	}

	counts := r.FlagCounts()
	if counts[NORMAL] != 2 || counts[HIGH] != 1 || counts[CRITICAL_LOW] != 1 || counts[LOW] != 0 {
		t.Errorf("Unexpected counts %v", counts)
	}
}

func TestPlatformOrder(t *testing.T) {
	expected := []string{
		"Instagram", "Facebook", "LinkedIn", "Twitter", "X",
		"TikTok", "YouTube", "Pinterest", "Google Business",
	}
	if len(Platforms) != len(expected) {
		t.Fatalf("Expected %d platforms, got %d", len(expected), len(Platforms))
	}
	for i, p := range Platforms {
		if string(p) != expected[i] {
			t.Errorf("Position %d: expected %s, got %s", i, expected[i], p)
		}
	}
	if Platform("Myspace").IsValid() {
		t.Error("Expected unknown platform to be invalid")
	}
}
