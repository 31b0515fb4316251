package render

import (
	"encoding/json"
	"fmt"

	"github.com/rios0rios0/reqdiff/domain"
)

// jsonEntry is the wire shape of a single package.
type jsonEntry struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// jsonChange is the wire shape of a constraint change.
type jsonChange struct {
	Name string `json:"name"`
	From string `json:"from"`
	To   string `json:"to"`
}

// jsonDocument is the top-level JSON output. Omitted buckets (filtered out)
// serialize as null.
type jsonDocument struct {
	Added     []jsonEntry  `json:"added"`
	Removed   []jsonEntry  `json:"removed"`
	Changed   []jsonChange `json:"changed"`
	Unchanged []jsonEntry  `json:"unchanged"`
}

// JSONRenderer emits the diff result as an indented JSON document.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSON renderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

func (r *JSONRenderer) Name() string { return "json" }

func (r *JSONRenderer) Render(result domain.DiffResult, opts domain.RenderOptions) (string, error) {
	doc := jsonDocument{}

	if opts.Include(domain.BucketAdded) {
		doc.Added = toJSONEntries(result.Added)
	}
	if opts.Include(domain.BucketRemoved) {
		doc.Removed = toJSONEntries(result.Removed)
	}
	if opts.Include(domain.BucketChanged) {
		doc.Changed = make([]jsonChange, 0, len(result.Changed))
		for _, change := range result.Changed {
			doc.Changed = append(doc.Changed, jsonChange{
				Name: change.Name,
				From: constraintLabel(change.From),
				To:   constraintLabel(change.To),
			})
		}
	}
	if opts.Include(domain.BucketUnchanged) {
		doc.Unchanged = toJSONEntries(result.Unchanged)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal diff result: %w", err)
	}

	return string(data) + "\n", nil
}

func toJSONEntries(entries []domain.PackageEntry) []jsonEntry {
	out := make([]jsonEntry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, jsonEntry{Name: entry.Name, Version: constraintLabel(entry)})
	}
	return out
}
