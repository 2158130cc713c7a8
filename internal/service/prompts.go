package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pedroganco/sanum/internal/domain"
)

const extractionPromptHeader = `Analisa o texto seguinte, extraído de um PDF de análises clínicas de um laboratório português, e extrai todos os marcadores quantitativos.

Para cada marcador indica:
- name: nome normalizado em português (ex: "Hemoglobina" em vez de "Hemoglobina (HGB)")
- originalName: nome exactamente como aparece no PDF
- value: valor numérico
- unit: unidade (ex: "g/dL", "mg/dL", "U/L")
- refMin, refMax: limites de referência numéricos ou null
- refText: texto original da referência
- category: uma de %s

Extrai também labName, reportDate (YYYY-MM-DD), patientName (omite em caso de dúvida), patientAge (inteiro) e patientSex ("M" ou "F").

Regras:
- ignora resultados não numéricos (ex: "Negativo", "Não Reactivo")
- para "< X" ou "> X" usa X como valor e ajusta refMin/refMax
- nunca inventes valores

Responde APENAS com JSON válido no formato:
{"labName": "...", "reportDate": "YYYY-MM-DD", "patientName": null, "patientAge": null, "patientSex": null, "markers": [{"name": "...", "originalName": "...", "value": 0, "unit": "...", "refMin": null, "refMax": null, "refText": "...", "category": "..."}]}

TEXTO DO PDF:
`

// BuildExtractionPrompt asks the model to turn report text into the
// ExtractedReport JSON document.
func BuildExtractionPrompt(text string) string {
	categories := make([]string, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		categories = append(categories, fmt.Sprintf("%q", c))
	}
	return fmt.Sprintf(extractionPromptHeader, strings.Join(categories, ", ")) + text
}

type promptMarker struct {
	Name   string      `json:"name"`
	Value  float64     `json:"value"`
	Unit   string      `json:"unit"`
	RefMin *float64    `json:"refMin"`
	RefMax *float64    `json:"refMax"`
	Flag   domain.Flag `json:"flag"`
}

// BuildAnalysisPrompt asks the model for a plain-language reading of the
// report's markers.
func BuildAnalysisPrompt(report *domain.Report, age *int, sex *domain.Sex) (string, error) {
	markers := make([]promptMarker, 0, len(report.Markers))
	for _, m := range report.Markers {
		markers = append(markers, promptMarker{
			Name: m.Name, Value: m.Value, Unit: m.Unit,
			RefMin: m.RefMin, RefMax: m.RefMax, Flag: m.Flag,
		})
	}
	data, err := json.MarshalIndent(markers, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode markers: %w", err)
	}

	var b strings.Builder
	b.WriteString("És um assistente que explica resultados de análises clínicas a pessoas sem formação médica.\n\nPaciente:\n")
	if age != nil {
		fmt.Fprintf(&b, "- Idade: %d anos\n", *age)
	} else {
		b.WriteString("- Idade: não especificada\n")
	}
	if sex != nil {
		fmt.Fprintf(&b, "- Sexo: %s\n", *sex)
	} else {
		b.WriteString("- Sexo: não especificado\n")
	}
	fmt.Fprintf(&b, "\nMarcadores (%d no total):\n%s\n\n", len(markers), data)
	b.WriteString(`Faz uma análise global e responde APENAS com JSON válido no formato:
{
  "summary": "2 a 4 frases simples sobre o estado geral",
  "positives": ["2 a 5 aspectos positivos"],
  "attentionItems": [{"markerName": "...", "severity": "mild|moderate|significant", "message": "1 a 2 frases"}],
  "correlations": [{"markers": ["...", "..."], "message": "relação relevante entre marcadores"}]
}

Usa linguagem simples e tranquila ("pode indicar"), sem diagnósticos definitivos.`)

	return b.String(), nil
}
