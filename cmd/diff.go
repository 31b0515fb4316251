package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/reqdiff/application"
)

var errManifestsDiffer = errors.New("manifests differ")

var (
	filterBuckets []string
	failOnChange  bool
	fromRev       string
	toRev         string
)

var diffCmd = &cobra.Command{
	Use:   "diff <manifest-a> <manifest-b>",
	Short: "Compare two dependency manifests",
	Long: `Compare two dependency manifests and classify each package as added,
removed, changed, or unchanged.

Each manifest argument is a file path, "-" for stdin, or an http(s) URL.
With --from-rev/--to-rev the file is read at a git revision instead of the
working copy, so both arguments may point at the same path:

  reqdiff diff --from-rev HEAD~1 requirements.txt requirements.txt`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().StringSliceVar(&filterBuckets, "filter", nil,
		"Only render these buckets (added, removed, changed, unchanged)")
	diffCmd.Flags().BoolVar(&failOnChange, "fail-on-change", false,
		"Exit with a non-zero status when the manifests differ")
	diffCmd.Flags().StringVar(&fromRev, "from-rev", "",
		"Git revision to read the first manifest at")
	diffCmd.Flags().StringVar(&toRev, "to-rev", "",
		"Git revision to read the second manifest at")
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	service, err := injectDiffService(cfg)
	if err != nil {
		return err
	}

	report, err := service.Compare(cmd.Context(), application.CompareOptions{
		RefA:    args[0],
		RefB:    args[1],
		RevA:    fromRev,
		RevB:    toRev,
		Format:  cfg.Format,
		Output:  cfg.Output,
		Filter:  filterBuckets,
		Verbose: verbose,
	})
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), report.Rendered)

	if (failOnChange || cfg.FailOnChange) && report.Result.HasDifferences() {
		return errManifestsDiffer
	}
	return nil
}
