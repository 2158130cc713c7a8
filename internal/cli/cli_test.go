package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedroganco/sanum/internal/domain"
	"github.com/pedroganco/sanum/internal/history"
	"github.com/pedroganco/sanum/internal/knowledge"
	"github.com/pedroganco/sanum/internal/service"
)

type stubParser struct {
	result *service.ParseResult
	err    error
	got    string
}

func (p *stubParser) Parse(_ context.Context, pdf io.Reader) (*service.ParseResult, error) {
	data, _ := io.ReadAll(pdf)
	p.got = string(data)
	return p.result, p.err
}

type stubScanner struct {
	result  *domain.ScanResult
	err     error
	history []*domain.ScanRecord
}

func (s *stubScanner) Discover(context.Context, string) (*domain.ScanResult, error) {
	return s.result, s.err
}

func (s *stubScanner) History(context.Context, int, int) ([]*domain.ScanRecord, error) {
	return s.history, nil
}

// resetFlags clears values left behind by earlier executions of the shared
// command tree.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func testServices() *Services {
	return &Services{
		Markers: knowledge.Default(),
		Reports: &stubParser{},
		Scans:   &stubScanner{},
		Config:  &domain.Config{Upload: domain.UploadConfig{MaxFileSize: 10 << 20}},
	}
}

func execute(t *testing.T, svc *Services, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	services = svc
	t.Cleanup(func() {
		services = nil
		rootCmd.SetArgs(nil)
	})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestVersionCmd(t *testing.T) {
	original := version
	SetVersion("1.2.3")
	defer func() { version = original }()

	out, err := execute(t, nil, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sanum version 1.2.3")
}

func TestServicesNotConfigured(t *testing.T) {
	_, err := execute(t, nil, "markers")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "services not configured")
}

func TestLoaderRunsOnce(t *testing.T) {
	calls := 0
	var gotPath string
	SetLoader(func(_ context.Context, path string) (*Services, error) {
		calls++
		gotPath = path
		return testServices(), nil
	})
	defer SetLoader(nil)

	_, err := execute(t, nil, "--config", "/etc/sanum/config.yaml", "marker", "HGB")
	require.NoError(t, err)

	rootCmd.SetArgs([]string{"marker", "Hb"})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, 1, calls)
	assert.Equal(t, "/etc/sanum/config.yaml", gotPath)
}

func TestLoaderError(t *testing.T) {
	SetLoader(func(context.Context, string) (*Services, error) {
		return nil, errors.New("invalid configuration: bad port")
	})
	defer SetLoader(nil)

	_, err := execute(t, nil, "markers")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad port")
}

func TestMarkersCmd(t *testing.T) {
	out, err := execute(t, testServices(), "markers")
	require.NoError(t, err)
	assert.Contains(t, out, "Hemoglobina")
	assert.Contains(t, out, "markers")
}

func TestMarkersCmd_Category(t *testing.T) {
	out, err := execute(t, testServices(), "markers", "--category", "hematology", "--json")
	require.NoError(t, err)

	var markers []domain.MarkerInfo
	require.NoError(t, json.Unmarshal([]byte(out), &markers))
	require.NotEmpty(t, markers)
	for _, m := range markers {
		assert.Equal(t, domain.HEMATOLOGY, m.Category)
	}

	_, err = execute(t, testServices(), "markers", "-c", "astrology")
	assert.Error(t, err)
}

func TestMarkerCmd(t *testing.T) {
	out, err := execute(t, testServices(), "marker", "hgb")
	require.NoError(t, err)
	assert.Contains(t, out, "Hemoglobina (Hematologia)")
	assert.Contains(t, out, "HGB")
	assert.Contains(t, out, "M 13 - 17")

	_, err = execute(t, testServices(), "marker", "Unobtainium")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "marker not found")
}

func TestClassifyCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want domain.Flag
	}{
		{"explicit bounds", []string{"classify", "16.5", "--min", "13", "--max", "17"}, domain.NORMAL},
		{"decimal comma", []string{"classify", "12,5", "--min", "13", "--max", "17"}, domain.LOW},
		{"upper bound only", []string{"classify", "30", "--max", "10"}, domain.CRITICAL_HIGH},
		{"no bounds", []string{"classify", "1000"}, domain.NORMAL},
		{"marker female range", []string{"classify", "16.5", "-m", "HGB", "--sex", "F"}, domain.HIGH},
		{"marker male range", []string{"classify", "16.5", "-m", "HGB", "--sex", "M"}, domain.NORMAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, testServices(), append(tt.args, "--json")...)
			require.NoError(t, err)

			var body struct {
				Flag domain.Flag `json:"flag"`
			}
			require.NoError(t, json.Unmarshal([]byte(out), &body), out)
			assert.Equal(t, tt.want, body.Flag)
		})
	}
}

func TestClassifyCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"not a number", []string{"classify", "high"}},
		{"unknown marker", []string{"classify", "1", "-m", "Unobtainium"}},
		{"bad sex", []string{"classify", "1", "-m", "HGB", "--sex", "Q"}},
		{"missing value", []string{"classify"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, testServices(), tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestParseCmd(t *testing.T) {
	refMin, refMax := 13.0, 17.0
	parser := &stubParser{result: &service.ParseResult{
		Report: &domain.Report{
			LabName:    "Synlab",
			ReportDate: "2024-05-02",
			Markers: []domain.Marker{
				{Name: "Hemoglobina", Value: 18.2, Unit: "g/dL", RefMin: &refMin, RefMax: &refMax, RefText: "13 - 17", Category: domain.HEMATOLOGY, Flag: domain.HIGH},
				{Name: "Plaquetas", Value: 250, Unit: "10^9/L", RefText: "150 - 400", Category: domain.HEMATOLOGY, Flag: domain.NORMAL},
			},
		},
		ExtractionMethod: "pdftotext",
	}}
	svc := testServices()
	svc.Reports = parser

	path := filepath.Join(t.TempDir(), "analises.PDF")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o600))

	out, err := execute(t, svc, "parse", path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", parser.got)
	assert.Contains(t, out, "Synlab")
	assert.Contains(t, out, "Hematologia")
	assert.Contains(t, out, "18.2")
	assert.Contains(t, out, "2 markers, 1 outside the reference range")
}

func TestParseCmd_Errors(t *testing.T) {
	dir := t.TempDir()
	notPDF := filepath.Join(dir, "report.txt")
	require.NoError(t, os.WriteFile(notPDF, []byte("text"), 0o600))
	pdf := filepath.Join(dir, "report.pdf")
	require.NoError(t, os.WriteFile(pdf, []byte("%PDF"), 0o600))

	t.Run("wrong extension", func(t *testing.T) {
		_, err := execute(t, testServices(), "parse", notPDF)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := execute(t, testServices(), "parse", filepath.Join(dir, "nope.pdf"))
		assert.Error(t, err)
	})

	t.Run("too large", func(t *testing.T) {
		svc := testServices()
		svc.Config.Upload.MaxFileSize = 2
		_, err := execute(t, svc, "parse", pdf)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "larger than")
	})

	t.Run("parser failure", func(t *testing.T) {
		svc := testServices()
		svc.Reports = &stubParser{err: domain.ErrTextTooShort}
		_, err := execute(t, svc, "parse", pdf)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrTextTooShort)
	})
}

func TestDiscoverCmd(t *testing.T) {
	svc := testServices()
	svc.Scans = &stubScanner{result: &domain.ScanResult{
		URL:          "https://padaria.pt",
		BusinessName: "Padaria Central",
		Platforms:    []domain.PlatformLink{{Platform: domain.INSTAGRAM, URL: "https://instagram.com/padariacentral"}},
		WebsiteData: domain.WebsiteMetadata{
			HeroText:       "Pão quente todos os dias",
			DominantColors: []string{"#aa3300"},
			DetectedTone:   domain.CASUAL,
		},
	}}

	out, err := execute(t, svc, "discover", "padaria.pt")
	require.NoError(t, err)
	assert.Contains(t, out, "Padaria Central")
	assert.Contains(t, out, "https://instagram.com/padariacentral")
	assert.Contains(t, out, "Pão quente todos os dias")
	assert.Contains(t, out, "Casual/Friendly")

	svc.Scans = &stubScanner{err: domain.ErrNoPlatforms}
	_, err = execute(t, svc, "discover", "padaria.pt")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoPlatforms)
}

func TestHistoryCmd(t *testing.T) {
	out, err := execute(t, testServices(), "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No scans recorded.")

	svc := testServices()
	svc.Scans = &stubScanner{history: []*domain.ScanRecord{{
		ID:           1,
		URL:          "https://padaria.pt",
		BusinessName: "Padaria",
		Platforms:    []domain.Platform{domain.INSTAGRAM, domain.FACEBOOK},
		ScannedAt:    time.Date(2024, 5, 2, 10, 30, 0, 0, time.UTC),
	}}}

	out, err = execute(t, svc, "history", "-n", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-05-02 10:30")
	assert.Contains(t, out, "2 platforms")
}

type stubMigrator struct {
	version history.SchemaVersion
	err     error
	calls   []string
	closed  bool
}

func (m *stubMigrator) Up(context.Context) error {
	m.calls = append(m.calls, "up")
	m.version.Version++
	return m.err
}

func (m *stubMigrator) Down(context.Context) error {
	m.calls = append(m.calls, "down")
	if m.version.Version > 0 {
		m.version.Version--
	}
	return m.err
}

func (m *stubMigrator) Version() (history.SchemaVersion, error) {
	return m.version, nil
}

func (m *stubMigrator) Close() error {
	m.closed = true
	return nil
}

func TestHistoryMigrateCmd(t *testing.T) {
	tests := []struct {
		direction string
		calls     []string
		expected  string
	}{
		{"up", []string{"up"}, "Schema version: 2"},
		{"down", []string{"down"}, "Schema version: 0"},
		{"version", nil, "Schema version: 1"},
	}

	for _, tt := range tests {
		t.Run(tt.direction, func(t *testing.T) {
			migrator := &stubMigrator{version: history.SchemaVersion{Version: 1}}
			svc := testServices()
			svc.Migrations = func() (Migrator, error) { return migrator, nil }

			out, err := execute(t, svc, "history", "migrate", tt.direction)
			require.NoError(t, err)
			assert.Contains(t, out, tt.expected)
			assert.Equal(t, tt.calls, migrator.calls)
			assert.True(t, migrator.closed)
		})
	}
}

func TestHistoryMigrateCmd_JSON(t *testing.T) {
	migrator := &stubMigrator{version: history.SchemaVersion{Version: 1, Dirty: true}}
	svc := testServices()
	svc.Migrations = func() (Migrator, error) { return migrator, nil }

	out, err := execute(t, svc, "--json", "history", "migrate", "version")
	require.NoError(t, err)

	var got history.SchemaVersion
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, history.SchemaVersion{Version: 1, Dirty: true}, got)
}

func TestHistoryMigrateCmd_Errors(t *testing.T) {
	t.Run("invalid direction", func(t *testing.T) {
		svc := testServices()
		svc.Migrations = func() (Migrator, error) { return &stubMigrator{}, nil }
		_, err := execute(t, svc, "history", "migrate", "sideways")
		assert.Error(t, err)
	})

	t.Run("not configured", func(t *testing.T) {
		_, err := execute(t, testServices(), "history", "migrate", "up")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not configured")
	})

	t.Run("sqlite driver", func(t *testing.T) {
		svc := testServices()
		svc.Migrations = func() (Migrator, error) { return nil, history.ErrNoMigrations }
		_, err := execute(t, svc, "history", "migrate", "down")
		assert.ErrorIs(t, err, history.ErrNoMigrations)
	})

	t.Run("rollback fails", func(t *testing.T) {
		migrator := &stubMigrator{err: errors.New("dirty database version 1")}
		svc := testServices()
		svc.Migrations = func() (Migrator, error) { return migrator, nil }
		_, err := execute(t, svc, "history", "migrate", "down")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "dirty")
		assert.True(t, migrator.closed)
	})
}

func TestStatusCmd(t *testing.T) {
	original := lookPath
	lookPath = func(string) (string, error) { return "", errors.New("not found") }
	defer func() { lookPath = original }()

	svc := testServices()
	svc.Config = &domain.Config{
		Environment: "development",
		LLM:         domain.LLMConfig{Provider: "anthropic"},
		PDF:         domain.PDFConfig{Extractor: "pdftotext"},
		Cache:       domain.CacheConfig{Backend: "memory"},
		History:     domain.HistoryConfig{Enabled: true, Driver: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "h.db")},
	}

	out, err := execute(t, svc, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "defaults and environment only")
	assert.Contains(t, out, "API key: ✗ Missing")
	assert.Contains(t, out, "pdftotext: ✗ Not found")
	assert.Contains(t, out, "Database: ✗ Missing")
	assert.Contains(t, out, "SANUM_LLM_API_KEY")
	assert.Contains(t, out, "install poppler-utils")
}
