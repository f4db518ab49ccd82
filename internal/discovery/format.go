package discovery

import (
	"fmt"
	"strings"
)

// FormatDiscoveryResult renders a plain-text report for display or
// logging by the UI layer.
func FormatDiscoveryResult(r *Result) string {
	var b strings.Builder

	b.WriteString("=== Instagram Discovery ===\n")
	if r == nil {
		b.WriteString("no result\n")
		return b.String()
	}

	if r.BestMatch != nil {
		fmt.Fprintf(&b, "Best match: @%s (%.0f%% confidence, via %s)\n",
			r.BestMatch.Handle, r.BestMatch.Confidence*100, r.BestMatch.Source)
		if r.BestMatch.FullName != "" {
			fmt.Fprintf(&b, "  Profile name: %s\n", r.BestMatch.FullName)
		}
		if r.BestMatch.Followers > 0 {
			fmt.Fprintf(&b, "  Followers: %d\n", r.BestMatch.Followers)
		}
	} else {
		b.WriteString("Best match: none\n")
	}

	fmt.Fprintf(&b, "Sources attempted: %s\n", strings.Join(r.SourcesAttempted, ", "))
	fmt.Fprintf(&b, "Candidates (%d):\n", len(r.Candidates))
	for _, c := range r.Candidates {
		fmt.Fprintf(&b, "  @%-30s %.2f  %s", c.Handle, c.Confidence, c.Source)
		if c.Notes != "" {
			fmt.Fprintf(&b, "  (%s)", c.Notes)
		}
		b.WriteString("\n")
	}

	return b.String()
}
