package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/linkshield/phishguard/internal/domain"
)

func newAnalyzeCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze <text>",
		Short: "Classify a URL or message as safe or phishing",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			service, err := buildService(cmd.Context(), cfg, zap.NewNop())
			if err != nil {
				return err
			}

			analysis, err := service.Analyze(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(analysis)
			}

			printAnalysis(cmd, analysis)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the full analysis as JSON")
	return cmd
}

func printAnalysis(cmd *cobra.Command, analysis *domain.Analysis) {
	out := cmd.OutOrStdout()

	label := "SAFE"
	if analysis.Verdict.Label == domain.LabelPhishing {
		label = "PHISHING"
	}
	fmt.Fprintf(out, "%s (confidence %.1f%%)\n", label, analysis.Verdict.Confidence*100)

	if len(analysis.Verdict.Reasons) > 0 {
		fmt.Fprintln(out, "Reasons:")
		for _, reason := range analysis.Verdict.Reasons {
			fmt.Fprintf(out, "  - %s\n", reason)
		}
	}
}
