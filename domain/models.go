package domain

import "strings"

// PackageEntry is a single requirement parsed from a manifest.
type PackageEntry struct {
	Key           string // Canonical identifier: case-folded Name, used for lookup
	Name          string // Declared name with original casing, kept for display
	Constraint    string // Raw version constraint, e.g. "==1.2.3" or ">=2.0,<3.0"
	HasConstraint bool   // False when the line names a package with no constraint
}

// NewPackageEntry builds an entry, deriving the canonical key from the name.
func NewPackageEntry(name, constraint string) PackageEntry {
	return PackageEntry{
		Key:           strings.ToLower(name),
		Name:          name,
		Constraint:    strings.TrimSpace(constraint),
		HasConstraint: true,
	}
}

// NewUnconstrainedEntry builds an entry for a bare package name.
func NewUnconstrainedEntry(name string) PackageEntry {
	return PackageEntry{
		Key:  strings.ToLower(name),
		Name: name,
	}
}

// Manifest maps canonical package keys to their entries. Two entries with the
// same key are the same package regardless of original casing; when a source
// text declares a name twice, the later declaration wins.
type Manifest map[string]PackageEntry

// Add inserts an entry under its canonical key, overwriting any earlier entry.
func (m Manifest) Add(entry PackageEntry) {
	m[entry.Key] = entry
}

// Change records a constraint change for a package present in both manifests.
// Name carries the original-case name from the older manifest.
type Change struct {
	Name string
	From PackageEntry
	To   PackageEntry
}

// DiffResult partitions the union of two manifests' packages into four
// disjoint buckets. Every package key appears in exactly one bucket, and each
// bucket is sorted by name ascending.
type DiffResult struct {
	Added     []PackageEntry
	Removed   []PackageEntry
	Changed   []Change
	Unchanged []PackageEntry
}

// HasDifferences returns true if any package was added, removed, or changed.
func (r DiffResult) HasDifferences() bool {
	return len(r.Added) > 0 || len(r.Removed) > 0 || len(r.Changed) > 0
}

// Total returns the number of classified packages across all four buckets.
func (r DiffResult) Total() int {
	return len(r.Added) + len(r.Removed) + len(r.Changed) + len(r.Unchanged)
}
