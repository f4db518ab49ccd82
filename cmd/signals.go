package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/caribeleads/intel-cli/internal/model"
	"github.com/caribeleads/intel-cli/internal/signal"
)

var (
	signalsFlags      businessFlags
	signalsRating     float64
	signalsReviews    int
	signalsUnanswered int
	signalsPriceTier  string
	signalsAutoReply  bool
	signalsJSON       bool
)

var signalsCmd = &cobra.Command{
	Use:   "signals",
	Short: "Detect sales signals and render outreach copy",
	RunE: func(cmd *cobra.Command, args []string) error {
		biz := signalsFlags.business()
		biz.Rating = signalsRating
		biz.ReviewCount = signalsReviews
		biz.UnansweredReviews = signalsUnanswered
		biz.PriceTier = model.PriceTier(signalsPriceTier)
		biz.HasAutoReply = signalsAutoReply

		analysis := signal.Analyze(biz)
		scripts := signal.BuildScripts(biz, analysis)

		if signalsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Analysis signal.Analysis `json:"analysis"`
				Scripts  signal.Scripts  `json:"scripts"`
			}{analysis, scripts})
		}

		fmt.Printf("Vertical: %s\n", analysis.Vertical)
		fmt.Printf("Signals:  %s\n", strings.Join(analysis.Signals, ", "))
		fmt.Printf("Problem:  %s\n", analysis.Problem)
		if analysis.Offer != nil {
			fmt.Printf("Offer:    %s\n  %s\n", analysis.Offer.Name, analysis.Offer.Pitch)
		}
		fmt.Printf("\n--- WhatsApp ---\n%s\n", scripts.WhatsApp)
		fmt.Printf("\n--- Instagram DM ---\n%s\n", scripts.InstagramDM)
		fmt.Printf("\n--- Email ---\n%s\n", scripts.Email)
		fmt.Printf("\n--- Cold call ---\n%s\n", scripts.ColdCall)
		return nil
	},
}

func init() {
	signalsFlags.register(signalsCmd)
	signalsCmd.Flags().Float64Var(&signalsRating, "rating", 0, "google rating")
	signalsCmd.Flags().IntVar(&signalsReviews, "reviews", 0, "google review count")
	signalsCmd.Flags().IntVar(&signalsUnanswered, "unanswered", 0, "unanswered review count")
	signalsCmd.Flags().StringVar(&signalsPriceTier, "price-tier", "", "price tier: budget, mid_range, luxury")
	signalsCmd.Flags().BoolVar(&signalsAutoReply, "auto-reply", false, "business already has auto-reply")
	signalsCmd.Flags().BoolVar(&signalsJSON, "json", false, "print result as JSON")
	rootCmd.AddCommand(signalsCmd)
}
