package cli

import (
	"errors"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/pedroganco/sanum/internal/domain"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and dependency status",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

// lookPath is replaced in tests.
var lookPath = exec.LookPath

func runStatus(cmd *cobra.Command, _ []string) error {
	svc, err := loadServices(cmd)
	if err != nil {
		return err
	}
	if svc.Config == nil {
		return errors.New("no configuration loaded")
	}
	cfg := svc.Config

	cmd.Println("Sanum Status")
	cmd.Println("============")
	cmd.Println()

	cmd.Println("Configuration:")
	if svc.ConfigFile != "" {
		cmd.Printf("  File: %s\n", svc.ConfigFile)
	} else {
		cmd.Println("  File: - defaults and environment only")
	}
	cmd.Printf("  Environment: %s\n", cfg.Environment)
	cmd.Println()

	var issues []string

	cmd.Println("Language model:")
	cmd.Printf("  Provider: %s\n", cfg.LLM.Provider)
	if cfg.LLM.APIKey != "" {
		cmd.Println("  API key: ✓ Configured")
	} else {
		cmd.Println("  API key: ✗ Missing")
		issues = append(issues, "set SANUM_LLM_API_KEY to enable parsing and analysis")
	}
	cmd.Println()

	cmd.Println("PDF extraction:")
	cmd.Printf("  Mode: %s\n", cfg.PDF.Extractor)
	if cfg.PDF.Extractor != "native" {
		binary := cfg.PDF.PdftotextPath
		if binary == "" {
			binary = "pdftotext"
		}
		if path, err := lookPath(binary); err == nil {
			cmd.Printf("  pdftotext: ✓ %s\n", path)
		} else {
			cmd.Println("  pdftotext: ✗ Not found")
			if cfg.PDF.Extractor == "pdftotext" {
				issues = append(issues, "install poppler-utils or set pdf.extractor to auto")
			}
		}
	}
	cmd.Println()

	cmd.Println("Scan history:")
	printHistoryStatus(cmd, cfg.History)
	cmd.Println()

	cmd.Printf("Cache: %s\n", cfg.Cache.Backend)
	cmd.Println()

	if len(issues) > 0 {
		cmd.Println("Issues:")
		for _, issue := range issues {
			cmd.Printf("  ⚠ %s\n", issue)
		}
		cmd.Println()
	}
	return nil
}

func printHistoryStatus(cmd *cobra.Command, cfg domain.HistoryConfig) {
	if !cfg.Enabled {
		cmd.Println("  Status: - Disabled")
		return
	}
	cmd.Printf("  Driver: %s\n", cfg.Driver)
	if cfg.Driver != "sqlite" {
		return
	}
	cmd.Printf("  Path: %s\n", cfg.SQLitePath)
	if _, err := os.Stat(cfg.SQLitePath); err == nil {
		cmd.Println("  Database: ✓ Present")
	} else {
		cmd.Println("  Database: ✗ Missing")
	}
	cmd.Printf("  Retention: %s\n", cfg.Retention)
}
