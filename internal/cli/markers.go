package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pedroganco/sanum/internal/domain"
	"github.com/pedroganco/sanum/internal/service"
)

var markersCategory string

var markersCmd = &cobra.Command{
	Use:   "markers",
	Short: "List known lab markers",
	Args:  cobra.NoArgs,
	RunE:  runMarkers,
}

var markerCmd = &cobra.Command{
	Use:   "marker [name]",
	Short: "Show a marker by name or alias",
	Args:  cobra.ExactArgs(1),
	RunE:  runMarker,
}

var (
	classifyMin    float64
	classifyMax    float64
	classifyMarker string
	classifySex    string
)

var classifyCmd = &cobra.Command{
	Use:   "classify [value]",
	Short: "Grade a value against a reference range",
	Long: `Grades a value as normal, low, high or critical. Bounds come from
--min/--max, or from the knowledge base when --marker is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	markersCmd.Flags().StringVarP(&markersCategory, "category", "c", "", "only list markers in this category")
	classifyCmd.Flags().Float64Var(&classifyMin, "min", 0, "lower reference bound")
	classifyCmd.Flags().Float64Var(&classifyMax, "max", 0, "upper reference bound")
	classifyCmd.Flags().StringVarP(&classifyMarker, "marker", "m", "", "use this marker's reference range")
	classifyCmd.Flags().StringVar(&classifySex, "sex", "", "patient sex (M or F) for sex-specific ranges")

	rootCmd.AddCommand(markersCmd, markerCmd, classifyCmd)
}

func runMarkers(cmd *cobra.Command, _ []string) error {
	svc, err := loadServices(cmd)
	if err != nil {
		return err
	}

	var markers []domain.MarkerInfo
	if markersCategory != "" {
		category := domain.Category(markersCategory)
		if !category.IsValid() {
			return fmt.Errorf("unknown category %q", markersCategory)
		}
		markers = svc.Markers.ByCategory(category)
	} else {
		markers = svc.Markers.Entries()
	}

	if jsonOutput {
		return printJSON(cmd, markers)
	}
	if len(markers) == 0 {
		cmd.Println("No markers found.")
		return nil
	}

	for i := range markers {
		m := &markers[i]
		cmd.Printf("%-32s %-12s %-14s %s\n", m.Name, m.Unit, m.Category.Label(), referenceSummary(m))
	}
	cmd.Printf("\n%d markers\n", len(markers))
	return nil
}

func runMarker(cmd *cobra.Command, args []string) error {
	svc, err := loadServices(cmd)
	if err != nil {
		return err
	}

	info, ok := svc.Markers.Lookup(args[0])
	if !ok {
		return fmt.Errorf("marker not found: %s", args[0])
	}
	if jsonOutput {
		return printJSON(cmd, info)
	}

	cmd.Printf("%s (%s)\n", info.Name, info.Category.Label())
	if len(info.Aliases) > 0 {
		cmd.Printf("Aliases:    %s\n", strings.Join(info.Aliases, ", "))
	}
	cmd.Printf("Unit:       %s\n", info.Unit)
	cmd.Printf("Reference:  %s\n", referenceSummary(info))
	cmd.Println()
	cmd.Println(info.WhatIs)
	if info.HighMeaning != "" {
		cmd.Printf("\n↑ %s\n", info.HighMeaning)
	}
	if info.LowMeaning != "" {
		cmd.Printf("↓ %s\n", info.LowMeaning)
	}
	return nil
}

func runClassify(cmd *cobra.Command, args []string) error {
	value, err := strconv.ParseFloat(strings.Replace(args[0], ",", ".", 1), 64)
	if err != nil {
		return fmt.Errorf("invalid value %q", args[0])
	}

	var refMin, refMax *float64
	if cmd.Flags().Changed("min") {
		refMin = &classifyMin
	}
	if cmd.Flags().Changed("max") {
		refMax = &classifyMax
	}

	if refMin == nil && refMax == nil && classifyMarker != "" {
		svc, err := loadServices(cmd)
		if err != nil {
			return err
		}
		info, ok := svc.Markers.Lookup(classifyMarker)
		if !ok {
			return fmt.Errorf("marker not found: %s", classifyMarker)
		}

		var sex domain.Sex
		if classifySex != "" {
			if sex, err = domain.ParseSex(classifySex); err != nil {
				return err
			}
		}
		if ref, ok := service.SelectReference(info, sex); ok {
			refMin, refMax = ref.Min, ref.Max
		}
	}

	flag := service.ClassifyFlag(value, refMin, refMax)
	if jsonOutput {
		return printJSON(cmd, map[string]interface{}{
			"value":   value,
			"flag":    flag,
			"refMin":  refMin,
			"refMax":  refMax,
			"refText": service.FormatRefText(refMin, refMax),
		})
	}

	cmd.Printf("%s %s (ref %s)\n", flag.Emoji(), flag, service.FormatRefText(refMin, refMax))
	return nil
}

func referenceSummary(info *domain.MarkerInfo) string {
	parts := make([]string, 0, len(info.References))
	for _, ref := range info.References {
		text := service.FormatRefText(ref.Min, ref.Max)
		if ref.Sex != "" {
			text = string(ref.Sex) + " " + text
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "; ")
}
