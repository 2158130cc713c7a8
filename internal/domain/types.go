// Package domain contains the core entities shared by the lab report and
// website scan pipelines: markers, reports, knowledge base entries, social
// platform links and website metadata.
package domain

import (
	"errors"
	"fmt"
	"time"
)

// Flag is the severity classification of a marker value against its
// reference range.
type Flag string

const (
	NORMAL        Flag = "normal"
	LOW           Flag = "low"
	HIGH          Flag = "high"
	CRITICAL_LOW  Flag = "critical_low"
	CRITICAL_HIGH Flag = "critical_high"
)

// Category groups markers by the clinical system they describe.
type Category string

const (
	HEMATOLOGY   Category = "hematology"
	METABOLISM   Category = "metabolism"
	RENAL        Category = "renal"
	HEPATIC      Category = "hepatic"
	THYROID      Category = "thyroid"
	IRON         Category = "iron"
	VITAMINS     Category = "vitamins"
	INFLAMMATION Category = "inflammation"
	COAGULATION  Category = "coagulation"
	LIPIDS       Category = "lipids"
	ELECTROLYTES Category = "electrolytes"
	HORMONES     Category = "hormones"
	OTHER        Category = "other"
)

// Sex is the patient sex discriminator used by reference ranges.
type Sex string

const (
	MALE   Sex = "M"
	FEMALE Sex = "F"
)

// Severity qualifies an attention item in an LLM analysis.
type Severity string

const (
	MILD        Severity = "mild"
	MODERATE    Severity = "moderate"
	SIGNIFICANT Severity = "significant"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidFlag     = errors.New("invalid marker flag")
	ErrInvalidCategory = errors.New("invalid marker category")
	ErrInvalidSex      = errors.New("invalid sex")
)

// Categories lists every category in display order.
var Categories = []Category{
	HEMATOLOGY, METABOLISM, RENAL, HEPATIC, THYROID, IRON, VITAMINS,
	INFLAMMATION, COAGULATION, LIPIDS, ELECTROLYTES, HORMONES, OTHER,
}

var categoryLabels = map[Category]string{
	HEMATOLOGY:   "Hematologia",
	METABOLISM:   "Metabolismo",
	RENAL:        "Função Renal",
	HEPATIC:      "Função Hepática",
	THYROID:      "Função Tiroideia",
	IRON:         "Metabolismo do Ferro",
	VITAMINS:     "Vitaminas",
	INFLAMMATION: "Inflamação",
	COAGULATION:  "Coagulação",
	LIPIDS:       "Lípidos",
	ELECTROLYTES: "Eletrólitos",
	HORMONES:     "Hormonas",
	OTHER:        "Outros",
}

var flagEmoji = map[Flag]string{
	NORMAL:        "🟢",
	LOW:           "🟡",
	HIGH:          "🟡",
	CRITICAL_LOW:  "🔴",
	CRITICAL_HIGH: "🔴",
}

// IsValid reports whether f is one of the five known flags.
func (f Flag) IsValid() bool {
	_, ok := flagEmoji[f]
	return ok
}

// String returns the string representation of the flag
func (f Flag) String() string {
	return string(f)
}

// Emoji returns the traffic-light symbol used when rendering the flag.
func (f Flag) Emoji() string {
	return flagEmoji[f]
}

// IsCritical reports whether the value fell outside the critical band.
func (f Flag) IsCritical() bool {
	return f == CRITICAL_LOW || f == CRITICAL_HIGH
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// String returns the string representation of the category
func (c Category) String() string {
	return string(c)
}

// Label returns the Portuguese display label for the category.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return categoryLabels[OTHER]
}

// IsValid reports whether s is M or F.
func (s Sex) IsValid() bool {
	return s == MALE || s == FEMALE
}

// String returns the string representation of the sex
func (s Sex) String() string {
	return string(s)
}

// ParseSex converts user input into a Sex, accepting either case.
func ParseSex(s string) (Sex, error) {
	switch Sex(s) {
	case MALE, "m":
		return MALE, nil
	case FEMALE, "f":
		return FEMALE, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSex, s)
}

// IsValid reports whether s is one of the known severities.
func (s Severity) IsValid() bool {
	switch s {
	case MILD, MODERATE, SIGNIFICANT:
		return true
	default:
		return false
	}
}

// ReferenceRange is one reference interval for a marker. Either bound may be
// absent; Sex and AgeGroup are empty when the range applies to everyone.
type ReferenceRange struct {
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Sex      Sex      `json:"sex,omitempty"`
	AgeGroup string   `json:"ageGroup,omitempty"`
}

// MarkerInfo is a knowledge base entry describing a clinical marker.
type MarkerInfo struct {
	Name         string           `json:"name"`
	Aliases      []string         `json:"aliases"`
	Unit         string           `json:"unit"`
	Category     Category         `json:"category"`
	References   []ReferenceRange `json:"references"`
	WhatIs       string           `json:"whatIs"`
	WhatFor      string           `json:"whatFor"`
	HighMeaning  string           `json:"highMeaning"`
	LowMeaning   string           `json:"lowMeaning"`
	CommonCauses []string         `json:"commonCauses"`
}

// Marker is a single measurement extracted from a lab report. Markers are
// created once during ingestion and never modified afterwards.
type Marker struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	OriginalName string   `json:"originalName"`
	Value        float64  `json:"value"`
	Unit         string   `json:"unit"`
	RefMin       *float64 `json:"refMin"`
	RefMax       *float64 `json:"refMax"`
	RefText      string   `json:"refText"`
	Category     Category `json:"category"`
	Flag         Flag     `json:"flag"`
}

// Report is a parsed lab report. Reports are returned to the caller and never
// stored server side.
type Report struct {
	ID          string    `json:"id"`
	LabName     string    `json:"labName"`
	ReportDate  string    `json:"reportDate"`
	PatientName *string   `json:"patientName,omitempty"`
	PatientAge  *int      `json:"patientAge,omitempty"`
	PatientSex  *Sex      `json:"patientSex,omitempty"`
	Markers     []Marker  `json:"markers"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FlagCounts tallies the markers of the report by flag.
func (r *Report) FlagCounts() map[Flag]int {
	counts := make(map[Flag]int, len(flagEmoji))
	for _, m := range r.Markers {
		counts[m.Flag]++
	}
	return counts
}

// RawMarker is a marker as returned by the extraction step, before
// normalization and flagging.
type RawMarker struct {
	Name         string   `json:"name"`
	OriginalName string   `json:"originalName"`
	Value        float64  `json:"value"`
	Unit         string   `json:"unit"`
	RefMin       *float64 `json:"refMin"`
	RefMax       *float64 `json:"refMax"`
	RefText      string   `json:"refText"`
	Category     Category `json:"category"`
}

// ReportMetadata holds the report-level fields returned by the extraction step.
type ReportMetadata struct {
	LabName     string  `json:"labName"`
	ReportDate  string  `json:"reportDate"`
	PatientName *string `json:"patientName"`
	PatientAge  *int    `json:"patientAge"`
	PatientSex  *Sex    `json:"patientSex"`
}

// ExtractedReport is the JSON document the extraction model is asked to
// produce.
type ExtractedReport struct {
	ReportMetadata
	Markers []RawMarker `json:"markers"`
}

// AttentionItem is a marker the analysis wants the patient to look at.
type AttentionItem struct {
	MarkerName string   `json:"markerName"`
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
}

// Correlation links several markers under one explanation.
type Correlation struct {
	Markers []string `json:"markers"`
	Message string   `json:"message"`
}

// Analysis is the narrative reading of a report.
type Analysis struct {
	Summary        string          `json:"summary"`
	AttentionItems []AttentionItem `json:"attentionItems"`
	Positives      []string        `json:"positives"`
	Correlations   []Correlation   `json:"correlations"`
}

// Float returns a pointer to v. It keeps literal reference ranges readable.
func Float(v float64) *float64 {
	return &v
}
