package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported manifest and output formats",
	RunE:  runFormats,
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

func runFormats(cmd *cobra.Command, _ []string) error {
	parsers := newParserRegistry()
	renderers := newRendererRegistry()

	fmt.Fprintf(cmd.OutOrStdout(), "Manifest formats: %s\n", strings.Join(parsers.Names(), ", "))
	fmt.Fprintf(cmd.OutOrStdout(), "Output formats:   %s\n", strings.Join(renderers.Names(), ", "))
	return nil
}
