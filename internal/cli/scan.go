package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var discoverCmd = &cobra.Command{
	Use:   "discover [url]",
	Short: "Find the social media accounts linked from a website",
	Args:  cobra.ExactArgs(1),
	RunE:  runDiscover,
}

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent website scans",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|version]",
	Short:     "Apply, roll back or inspect the PostgreSQL history schema",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down", "version"},
	RunE:      runMigrate,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of scans")
	historyCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(discoverCmd, historyCmd)
}

func runDiscover(cmd *cobra.Command, args []string) error {
	svc, err := loadServices(cmd)
	if err != nil {
		return err
	}

	result, err := svc.Scans.Discover(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	if jsonOutput {
		return printJSON(cmd, result)
	}

	cmd.Printf("%s\n%s\n\n", result.BusinessName, result.URL)
	for _, p := range result.Platforms {
		cmd.Printf("  %-16s %s\n", p.Platform, p.URL)
	}

	site := result.WebsiteData
	cmd.Println()
	if site.HeroText != "" {
		cmd.Printf("Hero:     %s\n", site.HeroText)
	}
	if site.Tagline != "" {
		cmd.Printf("Tagline:  %s\n", site.Tagline)
	}
	cmd.Printf("Tone:     %s\n", site.DetectedTone)
	if len(site.DominantColors) > 0 {
		cmd.Printf("Colors:   %v\n", site.DominantColors)
	}
	return nil
}

func runHistory(cmd *cobra.Command, _ []string) error {
	svc, err := loadServices(cmd)
	if err != nil {
		return err
	}

	records, err := svc.Scans.History(cmd.Context(), historyLimit, 0)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	if jsonOutput {
		return printJSON(cmd, records)
	}
	if len(records) == 0 {
		cmd.Println("No scans recorded.")
		return nil
	}

	for _, r := range records {
		cmd.Printf("%s  %-40s %-24s %d platforms\n",
			r.ScannedAt.Format("2006-01-02 15:04"), r.URL, r.BusinessName, len(r.Platforms))
	}
	return nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	svc, err := loadServices(cmd)
	if err != nil {
		return err
	}
	if svc.Migrations == nil {
		return errors.New("scan history is not configured")
	}

	runner, err := svc.Migrations()
	if err != nil {
		return err
	}
	defer runner.Close()

	switch args[0] {
	case "up":
		err = runner.Up(cmd.Context())
	case "down":
		err = runner.Down(cmd.Context())
	}
	if err != nil {
		return err
	}

	v, err := runner.Version()
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(cmd, v)
	}
	if v.Dirty {
		cmd.Printf("Schema version: %d (dirty)\n", v.Version)
	} else {
		cmd.Printf("Schema version: %d\n", v.Version)
	}
	return nil
}
