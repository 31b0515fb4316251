package cmd

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/reqdiff/config"
)

var (
	// Global flags
	configPath     string
	outputFormat   string
	manifestFormat string
	verbose        bool
)

var rootCmd = &cobra.Command{
	Use:   "reqdiff",
	Short: "Compare dependency manifests and classify every package change",
	Long: `A CLI tool that parses two dependency manifests (pip requirements, go.mod,
package.json, Terraform modules) and classifies each package as added,
removed, changed, or unchanged between them.

Manifests can come from local files, stdin, HTTP(S) URLs, or a git revision,
so you can answer "what changed in requirements.txt since the last release?"
in one command.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: auto-detect)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "Output format: table, json, or markdown")
	rootCmd.PersistentFlags().StringVarP(&manifestFormat, "format", "f", "", "Manifest format (default: detect from filename)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// loadConfig resolves the configuration: an explicit --config path wins, then
// the standard locations, then built-in defaults. CLI flags override the file.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		found, err := config.FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, using defaults")
			cfg := config.Default()
			applyFlagOverrides(cfg)
			return cfg, nil
		}
		path = found
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	applyFlagOverrides(cfg)
	return cfg, nil
}

func applyFlagOverrides(cfg *config.Config) {
	if outputFormat != "" {
		cfg.Output = outputFormat
	}
	if manifestFormat != "" {
		cfg.Format = manifestFormat
	}
}
