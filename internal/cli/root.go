// Package cli implements the sanum command line tool.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pedroganco/sanum/internal/domain"
	"github.com/pedroganco/sanum/internal/history"
	"github.com/pedroganco/sanum/internal/service"
)

var version = "dev"

var (
	configFile string
	jsonOutput bool
)

// MarkerCatalog is the marker knowledge base.
type MarkerCatalog interface {
	Lookup(name string) (*domain.MarkerInfo, bool)
	Entries() []domain.MarkerInfo
	ByCategory(category domain.Category) []domain.MarkerInfo
}

// ReportParser turns a lab report PDF into a structured report.
type ReportParser interface {
	Parse(ctx context.Context, pdf io.Reader) (*service.ParseResult, error)
}

// Scanner discovers the social presence of websites.
type Scanner interface {
	Discover(ctx context.Context, rawURL string) (*domain.ScanResult, error)
	History(ctx context.Context, limit, offset int) ([]*domain.ScanRecord, error)
}

// Migrator manages the scan history schema.
type Migrator interface {
	Up(ctx context.Context) error
	Down(ctx context.Context) error
	Version() (history.SchemaVersion, error)
	Close() error
}

// Services are the collaborators the commands run against.
type Services struct {
	Markers    MarkerCatalog
	Reports    ReportParser
	Scans      Scanner
	Config     *domain.Config
	ConfigFile string
	Migrations func() (Migrator, error)
	Close      func() error
}

// Loader builds Services from the config file at path. An empty path
// searches the default locations.
type Loader func(ctx context.Context, path string) (*Services, error)

var (
	services *Services
	loader   Loader
)

var rootCmd = &cobra.Command{
	Use:   "sanum",
	Short: "Lab report and website presence tools",
	Long: `sanum reads lab report PDFs into structured, flagged markers and
discovers the social media accounts linked from a website.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
}

// SetLoader registers how services are built on first use.
func SetLoader(l Loader) {
	loader = l
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command and releases services afterwards.
func Execute(ctx context.Context) error {
	defer closeServices()
	rootCmd.SetOut(os.Stdout)
	return rootCmd.ExecuteContext(ctx)
}

func loadServices(cmd *cobra.Command) (*Services, error) {
	if services != nil {
		return services, nil
	}
	if loader == nil {
		return nil, errors.New("services not configured")
	}

	loaded, err := loader(cmd.Context(), configFile)
	if err != nil {
		return nil, err
	}
	services = loaded
	return services, nil
}

func closeServices() {
	if services != nil && services.Close != nil {
		services.Close()
	}
	services = nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
