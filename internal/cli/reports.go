package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pedroganco/sanum/internal/domain"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file.pdf]",
	Short: "Parse a lab report PDF",
	Long: `Extracts the text of a lab report, structures it with the language
model and prints every marker with its reference range and flag.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return fmt.Errorf("%s is not a PDF file", path)
	}

	svc, err := loadServices(cmd)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open report: %w", err)
	}
	defer f.Close()

	if svc.Config != nil && svc.Config.Upload.MaxFileSize > 0 {
		if info, err := f.Stat(); err == nil && info.Size() > svc.Config.Upload.MaxFileSize {
			return fmt.Errorf("%s is larger than %d bytes", path, svc.Config.Upload.MaxFileSize)
		}
	}

	result, err := svc.Reports.Parse(cmd.Context(), f)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	if jsonOutput {
		return printJSON(cmd, result)
	}
	printReport(cmd, result.Report, result.ExtractionMethod)
	return nil
}

func printReport(cmd *cobra.Command, report *domain.Report, method string) {
	cmd.Printf("%s  %s  (%s)\n\n", report.LabName, report.ReportDate, method)

	var current domain.Category
	for i := range report.Markers {
		m := &report.Markers[i]
		if m.Category != current {
			if current != "" {
				cmd.Println()
			}
			current = m.Category
			cmd.Println(current.Label())
		}
		cmd.Printf("  %s %-30s %10s %-10s %s\n", m.Flag.Emoji(), m.Name, formatValue(m.Value), m.Unit, m.RefText)
	}

	counts := report.FlagCounts()
	cmd.Printf("\n%d markers, %d outside the reference range\n", len(report.Markers), len(report.Markers)-counts[domain.NORMAL])
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
