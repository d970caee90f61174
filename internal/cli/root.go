package cli

import (
	"github.com/spf13/cobra"

	"github.com/linkshield/phishguard/internal/config"
)

const version = "0.3.0"

type rootOptions struct {
	ConfigPath string
	ModelPath  string
}

// Execute builds the root command tree and runs the CLI.
func Execute() error {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "phishguard",
		Short:         "Hybrid phishing analyzer for URLs and messages",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}
	rootCmd.SetVersionTemplate("phishguard version {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "Path to phishguard.yml (optional)")
	rootCmd.PersistentFlags().StringVar(&opts.ModelPath, "model", "", "Path to a model artifact JSON (default: built-in model)")

	rootCmd.AddCommand(
		newAnalyzeCmd(opts),
		newServeCmd(opts),
		newDoctorCmd(opts),
	)

	return rootCmd.Execute()
}

// loadConfig resolves the merged configuration, applying the --model flag on
// top of file and environment settings.
func loadConfig(opts *rootOptions) (config.Config, error) {
	cfg, err := config.Loader{ConfigPath: opts.ConfigPath}.Load()
	if err != nil {
		return cfg, err
	}
	if opts.ModelPath != "" {
		cfg.ModelPath = opts.ModelPath
	}
	return cfg, nil
}
