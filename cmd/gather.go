package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/caribeleads/intel-cli/internal/intel"
)

var (
	gatherFlags businessFlags
	gatherJSON  bool
)

var gatherCmd = &cobra.Command{
	Use:   "gather",
	Short: "Run all applicable probes for a business",
	RunE: func(cmd *cobra.Command, args []string) error {
		g := buildGatherer(cfg)
		result := g.Gather(cmd.Context(), gatherFlags.business())

		zap.L().Info("intelligence gathered",
			zap.String("business", gatherFlags.name),
			zap.Int("presence", result.DigitalPresenceScore),
			zap.Int("opportunity", result.AutomationOpportunityScore),
		)

		if gatherJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}
		fmt.Print(intel.FormatIntelligenceSummary(result))
		return nil
	},
}

func init() {
	gatherFlags.register(gatherCmd)
	gatherCmd.Flags().BoolVar(&gatherJSON, "json", false, "print result as JSON")
	rootCmd.AddCommand(gatherCmd)
}
