// zonecheck is the command-line companion to the Groundwork API: it loads
// the same zoning rule table and runs analyses, rule resolutions, and the
// zone catalog without the HTTP server.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/stwalsh4118/groundwork/api/internal/models"
	"github.com/stwalsh4118/groundwork/api/internal/rules"
	"github.com/stwalsh4118/groundwork/api/internal/zoning"
)

var (
	rulesDir     string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "zonecheck",
	Short: "Residential zoning analysis for Oakville By-law 2014-014",
	Long: "zonecheck resolves zone codes against the zoning rule table and " +
		"computes development potential for a parcel: setbacks, buildable " +
		"envelope, coverage, floor area, and an advisory unit count.",
	SilenceUsage: true,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute development potential for a site",
	RunE:  runAnalyze,
}

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "List the zone catalog",
	RunE:  runZones,
}

var rulesCmd = &cobra.Command{
	Use:   "rules <zone-code>",
	Short: "Resolve a zone code to its flattened rule set",
	Args:  cobra.ExactArgs(1),
	RunE:  runRules,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rulesDir, "rules-dir", "",
		"directory containing an optional zoning.yaml overlay")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "table",
		"output format: table or json")

	analyzeCmd.Flags().String("zone", "", "zone code, e.g. RL3-0 or \"RL2 SP:1\"")
	analyzeCmd.Flags().Float64("area", 0, "lot area in square metres")
	analyzeCmd.Flags().Float64("frontage", 0, "lot frontage in metres (0 = unknown)")
	analyzeCmd.Flags().Float64("depth", 0, "lot depth in metres (0 = unknown)")
	analyzeCmd.Flags().Float64("height", 0, "building height in metres (0 = assume default)")
	analyzeCmd.Flags().Bool("corner", false, "the lot is a corner lot")
	_ = analyzeCmd.MarkFlagRequired("zone")
	_ = analyzeCmd.MarkFlagRequired("area")

	rootCmd.AddCommand(analyzeCmd, zonesCmd, rulesCmd)
}

func loadTable() (*rules.Table, error) {
	table, err := rules.Load(rulesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load zoning rule table: %w", err)
	}
	return table, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	table, err := loadTable()
	if err != nil {
		return err
	}

	zone, _ := cmd.Flags().GetString("zone")
	area, _ := cmd.Flags().GetFloat64("area")
	frontage, _ := cmd.Flags().GetFloat64("frontage")
	depth, _ := cmd.Flags().GetFloat64("depth")
	height, _ := cmd.Flags().GetFloat64("height")
	corner, _ := cmd.Flags().GetBool("corner")

	site := models.SiteDimensions{
		LotArea:   area,
		CornerLot: corner,
	}
	if frontage > 0 {
		site.Frontage = &frontage
	}
	if depth > 0 {
		site.Depth = &depth
	}
	if height > 0 {
		site.BuildingHeight = &height
	}

	resolver := zoning.NewResolver(table)
	rs, err := resolver.Resolve(zone)
	if err != nil {
		return fmt.Errorf("cannot analyze %q: %w", zone, err)
	}

	potential := zoning.NewCalculator(table).Calculate(rs, site)
	potential.FinalAnalysis = zoning.Synthesize(potential)

	if outputFormat == "json" {
		return renderJSON(os.Stdout, potential)
	}
	renderAnalysis(os.Stdout, potential)
	return nil
}

func runZones(cmd *cobra.Command, args []string) error {
	table, err := loadTable()
	if err != nil {
		return err
	}

	zones := table.Zones()
	if outputFormat == "json" {
		return renderJSON(os.Stdout, zones)
	}
	renderZones(os.Stdout, zones)
	return nil
}

func runRules(cmd *cobra.Command, args []string) error {
	table, err := loadTable()
	if err != nil {
		return err
	}

	rs, err := zoning.NewResolver(table).Resolve(args[0])
	if err != nil {
		return fmt.Errorf("cannot resolve %q: %w", args[0], err)
	}

	// Rule sets carry variant types; JSON is the faithful rendering.
	return renderJSON(os.Stdout, rs)
}

func renderJSON(w *os.File, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
