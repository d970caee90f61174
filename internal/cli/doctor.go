package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newDoctorCmd checks that the configured model artifact loads and is
// internally consistent, surfacing packaging errors before deployment.
func newDoctorCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Validate the model artifact and configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			a, err := loadArtifact(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			source := cfg.ModelPath
			if source == "" {
				source = "built-in"
			}
			fmt.Fprintf(out, "model artifact: %s\n", source)
			fmt.Fprintf(out, "  version:    %s\n", a.Version)
			fmt.Fprintf(out, "  vocabulary: %d terms\n", len(a.Vocabulary))
			fmt.Fprintf(out, "  shape:      consistent\n")
			fmt.Fprintf(out, "rule config:\n")
			fmt.Fprintf(out, "  keywords:   %d\n", len(cfg.Rules.Keywords))
			fmt.Fprintf(out, "  tld list:   %d\n", len(cfg.Rules.SuspiciousTLDs))
			fmt.Fprintf(out, "  brands:     %d\n", len(cfg.Rules.Brands))
			return nil
		},
	}
}
