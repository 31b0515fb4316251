package render

import (
	"fmt"
	"strings"

	"github.com/rios0rios0/reqdiff/domain"
)

// MarkdownRenderer emits the diff result as Markdown sections with one table
// per bucket, suitable for pasting into a PR description.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a Markdown renderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

func (r *MarkdownRenderer) Name() string { return "markdown" }

func (r *MarkdownRenderer) Render(result domain.DiffResult, opts domain.RenderOptions) (string, error) {
	var sb strings.Builder

	if opts.Include(domain.BucketAdded) {
		writeEntrySection(&sb, "Added", result.Added)
	}
	if opts.Include(domain.BucketRemoved) {
		writeEntrySection(&sb, "Removed", result.Removed)
	}
	if opts.Include(domain.BucketChanged) && len(result.Changed) > 0 {
		fmt.Fprintf(&sb, "## Changed\n\n")
		fmt.Fprintf(&sb, "| Package | From | To |\n|---|---|---|\n")
		for _, change := range result.Changed {
			fmt.Fprintf(&sb, "| %s | `%s` | `%s` |\n",
				change.Name, constraintLabel(change.From), constraintLabel(change.To))
		}
		sb.WriteString("\n")
	}
	if opts.Include(domain.BucketUnchanged) {
		writeEntrySection(&sb, "Unchanged", result.Unchanged)
	}

	fmt.Fprintf(&sb, "**%d added, %d removed, %d changed, %d unchanged**\n",
		len(result.Added), len(result.Removed), len(result.Changed), len(result.Unchanged))

	return sb.String(), nil
}

func writeEntrySection(sb *strings.Builder, title string, entries []domain.PackageEntry) {
	if len(entries) == 0 {
		return
	}

	fmt.Fprintf(sb, "## %s\n\n", title)
	fmt.Fprintf(sb, "| Package | Version |\n|---|---|\n")
	for _, entry := range entries {
		fmt.Fprintf(sb, "| %s | `%s` |\n", entry.Name, constraintLabel(entry))
	}
	sb.WriteString("\n")
}
