package domain

import (
	"sort"
	"strings"
)

// Diff classifies every package in the union of both manifests as added,
// removed, changed, or unchanged. A package counts as changed when it exists
// in both manifests and the constraint strings are not identical; an absent
// constraint is distinct from any present one. The comparison is purely
// textual, no version semantics are applied.
//
// Diff is a total function: it never fails, including on empty manifests.
func Diff(a, b Manifest) DiffResult {
	var result DiffResult

	for key, entryA := range a {
		entryB, inB := b[key]
		switch {
		case !inB:
			result.Removed = append(result.Removed, entryA)
		case sameConstraint(entryA, entryB):
			result.Unchanged = append(result.Unchanged, entryA)
		default:
			result.Changed = append(result.Changed, Change{
				Name: entryA.Name,
				From: entryA,
				To:   entryB,
			})
		}
	}

	for key, entryB := range b {
		if _, inA := a[key]; !inA {
			result.Added = append(result.Added, entryB)
		}
	}

	sortEntries(result.Added)
	sortEntries(result.Removed)
	sortEntries(result.Unchanged)
	sort.Slice(result.Changed, func(i, j int) bool {
		return strings.Compare(result.Changed[i].Name, result.Changed[j].Name) < 0
	})

	return result
}

// sameConstraint reports whether two entries pin the same constraint string,
// treating "no constraint" as equal only to "no constraint".
func sameConstraint(a, b PackageEntry) bool {
	if a.HasConstraint != b.HasConstraint {
		return false
	}
	return a.Constraint == b.Constraint
}

// sortEntries orders entries by name ascending using code-point order, which
// is deterministic for names differing only in case.
func sortEntries(entries []PackageEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return strings.Compare(entries[i].Name, entries[j].Name) < 0
	})
}
