package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/reqdiff/domain"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// PackageEntryBuilder helps create test package entries with a fluent interface.
type PackageEntryBuilder struct {
	*testkit.BaseBuilder
	name          string
	constraint    string
	hasConstraint bool
}

// NewPackageEntryBuilder creates a new entry builder with sensible defaults.
func NewPackageEntryBuilder() *PackageEntryBuilder {
	return &PackageEntryBuilder{
		BaseBuilder:   testkit.NewBaseBuilder(),
		name:          "test-package",
		constraint:    "==1.0.0",
		hasConstraint: true,
	}
}

// WithName sets the declared package name.
func (b *PackageEntryBuilder) WithName(name string) *PackageEntryBuilder {
	b.name = name
	return b
}

// WithConstraint sets the version constraint.
func (b *PackageEntryBuilder) WithConstraint(constraint string) *PackageEntryBuilder {
	b.constraint = constraint
	b.hasConstraint = true
	return b
}

// WithoutConstraint marks the entry as a bare package name.
func (b *PackageEntryBuilder) WithoutConstraint() *PackageEntryBuilder {
	b.constraint = ""
	b.hasConstraint = false
	return b
}

// Build creates the entry (satisfies testkit.Builder interface).
func (b *PackageEntryBuilder) Build() interface{} {
	return b.BuildPackageEntry()
}

// BuildPackageEntry creates the entry with a concrete return type.
func (b *PackageEntryBuilder) BuildPackageEntry() domain.PackageEntry {
	if !b.hasConstraint {
		return domain.NewUnconstrainedEntry(b.name)
	}
	return domain.NewPackageEntry(b.name, b.constraint)
}

// Reset clears the builder state, allowing it to be reused.
func (b *PackageEntryBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-package"
	b.constraint = "==1.0.0"
	b.hasConstraint = true
	return b
}

// Clone creates a deep copy of the PackageEntryBuilder.
func (b *PackageEntryBuilder) Clone() testkit.Builder {
	return &PackageEntryBuilder{
		BaseBuilder:   b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:          b.name,
		constraint:    b.constraint,
		hasConstraint: b.hasConstraint,
	}
}
