package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <manifest>",
	Short: "List the packages declared in a manifest",
	Long: `Parse a single manifest and print its normalized package entries,
one per line, sorted by name. Useful for checking what the parser actually
recognizes in a file.`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	service, err := injectDiffService(cfg)
	if err != nil {
		return err
	}

	entries, err := service.List(cmd.Context(), args[0], cfg.Format)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		constraint := entry.Constraint
		if !entry.HasConstraint {
			constraint = "any"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", entry.Name, constraint)
	}

	return nil
}
