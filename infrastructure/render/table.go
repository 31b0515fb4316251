package render

import (
	"fmt"
	"strings"

	"github.com/rios0rios0/reqdiff/domain"
)

// anyConstraint is displayed for packages declared without a version constraint.
const anyConstraint = "any"

// TableRenderer emits a plain-text listing with one marker per bucket:
// "+" added, "-" removed, "~" changed, "=" unchanged.
type TableRenderer struct{}

// NewTableRenderer creates the default plain-text renderer.
func NewTableRenderer() *TableRenderer {
	return &TableRenderer{}
}

func (r *TableRenderer) Name() string { return "table" }

func (r *TableRenderer) Render(result domain.DiffResult, opts domain.RenderOptions) (string, error) {
	var sb strings.Builder

	if opts.Include(domain.BucketAdded) {
		for _, entry := range result.Added {
			fmt.Fprintf(&sb, "+ %s %s\n", entry.Name, constraintLabel(entry))
		}
	}
	if opts.Include(domain.BucketRemoved) {
		for _, entry := range result.Removed {
			fmt.Fprintf(&sb, "- %s %s\n", entry.Name, constraintLabel(entry))
		}
	}
	if opts.Include(domain.BucketChanged) {
		for _, change := range result.Changed {
			fmt.Fprintf(&sb, "~ %s %s -> %s\n",
				change.Name, constraintLabel(change.From), constraintLabel(change.To))
		}
	}
	if opts.Include(domain.BucketUnchanged) {
		for _, entry := range result.Unchanged {
			fmt.Fprintf(&sb, "= %s %s\n", entry.Name, constraintLabel(entry))
		}
	}

	fmt.Fprintf(&sb, "\n%d added, %d removed, %d changed, %d unchanged\n",
		len(result.Added), len(result.Removed), len(result.Changed), len(result.Unchanged))

	return sb.String(), nil
}

// constraintLabel renders an entry's constraint, or "any" when absent.
func constraintLabel(entry domain.PackageEntry) string {
	if !entry.HasConstraint {
		return anyConstraint
	}
	return entry.Constraint
}
