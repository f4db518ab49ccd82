package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/caribeleads/intel-cli/internal/discovery"
)

var (
	discoverFlags businessFlags
	discoverJSON  bool
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Discover a business's Instagram handle",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := buildDiscoveryEngine(cfg)
		result := engine.Discover(cmd.Context(), discoverFlags.business())

		if discoverJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}
		fmt.Print(discovery.FormatDiscoveryResult(result))
		return nil
	},
}

func init() {
	discoverFlags.register(discoverCmd)
	discoverCmd.Flags().BoolVar(&discoverJSON, "json", false, "print result as JSON")
	rootCmd.AddCommand(discoverCmd)
}
