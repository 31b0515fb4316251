package domain

// Bucket names accepted by RenderOptions.Filter.
const (
	BucketAdded     = "added"
	BucketRemoved   = "removed"
	BucketChanged   = "changed"
	BucketUnchanged = "unchanged"
)

// RenderOptions controls which parts of a DiffResult a renderer emits.
type RenderOptions struct {
	// Filter restricts output to the named buckets. Empty means all four.
	Filter []string
}

// Include reports whether the given bucket should be rendered.
func (o RenderOptions) Include(bucket string) bool {
	if len(o.Filter) == 0 {
		return true
	}
	for _, f := range o.Filter {
		if f == bucket {
			return true
		}
	}
	return false
}

// Renderer abstracts an output format for diff results.
type Renderer interface {
	// Name returns the output format identifier (e.g. "table", "json").
	Name() string

	// Render produces the textual representation of a diff result.
	Render(result DiffResult, opts RenderOptions) (string, error)
}
