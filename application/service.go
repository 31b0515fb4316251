package application

import (
	"context"
	"fmt"
	"sort"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/reqdiff/domain"
	parserPkg "github.com/rios0rios0/reqdiff/infrastructure/parser"
	renderPkg "github.com/rios0rios0/reqdiff/infrastructure/render"
)

const defaultFormat = "requirements"

// DiffService orchestrates the full comparison flow:
// load manifests -> pick parser -> parse -> diff -> render.
type DiffService struct {
	parsers   *parserPkg.Registry
	renderers *renderPkg.Registry
	source    domain.Source
}

// NewDiffService creates a new service with the given registries and source.
func NewDiffService(
	parsers *parserPkg.Registry,
	renderers *renderPkg.Registry,
	source domain.Source,
) *DiffService {
	return &DiffService{
		parsers:   parsers,
		renderers: renderers,
		source:    source,
	}
}

// CompareOptions holds runtime options for a single comparison.
type CompareOptions struct {
	RefA string // Older manifest reference (path, "-", or URL)
	RefB string // Newer manifest reference
	RevA string // If set, load RefA at this git revision
	RevB string // If set, load RefB at this git revision

	Format  string   // Manifest format override; empty means auto-detect
	Output  string   // Output format name
	Filter  []string // Buckets to render; empty means all
	Verbose bool
}

// CompareReport bundles the structured diff with its rendered form.
type CompareReport struct {
	Result   domain.DiffResult
	Rendered string
}

// Compare loads, parses, and diffs the two manifests, then renders the result.
func (s *DiffService) Compare(ctx context.Context, opts CompareOptions) (*CompareReport, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	if err := validateFilter(opts.Filter); err != nil {
		return nil, err
	}

	manifestParser, err := s.pickParser(opts.Format, opts.RefA, opts.RefB)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Using manifest format %q", manifestParser.Name())

	manifestA, err := s.loadAndParse(ctx, manifestParser, opts.RefA, opts.RevA)
	if err != nil {
		return nil, err
	}
	manifestB, err := s.loadAndParse(ctx, manifestParser, opts.RefB, opts.RevB)
	if err != nil {
		return nil, err
	}

	result := domain.Diff(manifestA, manifestB)
	logger.Debugf(
		"Classified %d packages: %d added, %d removed, %d changed, %d unchanged",
		result.Total(), len(result.Added), len(result.Removed),
		len(result.Changed), len(result.Unchanged),
	)

	renderer, err := s.renderers.Get(opts.Output)
	if err != nil {
		return nil, err
	}

	rendered, err := renderer.Render(result, domain.RenderOptions{Filter: opts.Filter})
	if err != nil {
		return nil, err
	}

	return &CompareReport{Result: result, Rendered: rendered}, nil
}

// List loads and parses a single manifest and returns its entries sorted by name.
func (s *DiffService) List(ctx context.Context, ref, format string) ([]domain.PackageEntry, error) {
	manifestParser, err := s.pickParser(format, ref, "")
	if err != nil {
		return nil, err
	}

	manifest, err := s.loadAndParse(ctx, manifestParser, ref, "")
	if err != nil {
		return nil, err
	}

	entries := make([]domain.PackageEntry, 0, len(manifest))
	for _, entry := range manifest {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return strings.Compare(entries[i].Name, entries[j].Name) < 0
	})

	return entries, nil
}

// FormatNames returns the registered manifest format names.
func (s *DiffService) FormatNames() []string { return s.parsers.Names() }

// OutputNames returns the registered output format names.
func (s *DiffService) OutputNames() []string { return s.renderers.Names() }

// pickParser resolves the parser to use: an explicit format override wins,
// otherwise filename detection on either reference, otherwise requirements.
func (s *DiffService) pickParser(format, refA, refB string) (domain.Parser, error) {
	if format != "" {
		return s.parsers.Get(format)
	}

	for _, ref := range []string{refA, refB} {
		if ref == "" || ref == "-" {
			continue
		}
		if p, ok := s.parsers.Detect(ref); ok {
			return p, nil
		}
	}

	return s.parsers.Get(defaultFormat)
}

// loadAndParse fetches one manifest's text and parses it. A non-empty source
// that yields zero entries is legal but suspicious, so it is logged.
func (s *DiffService) loadAndParse(
	ctx context.Context,
	manifestParser domain.Parser,
	ref, revision string,
) (domain.Manifest, error) {
	var (
		text string
		err  error
	)
	if revision != "" {
		text, err = s.source.LoadAt(ctx, ref, revision)
	} else {
		text, err = s.source.Load(ctx, ref)
	}
	if err != nil {
		return nil, err
	}

	manifest, err := manifestParser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", ref, err)
	}

	if len(manifest) == 0 && strings.TrimSpace(text) != "" {
		logger.Warnf("No packages recognized in %q (format %q)", ref, manifestParser.Name())
	}

	return manifest, nil
}

// validateFilter rejects unknown bucket names early, before any I/O happens.
func validateFilter(filter []string) error {
	for _, f := range filter {
		switch f {
		case domain.BucketAdded, domain.BucketRemoved, domain.BucketChanged, domain.BucketUnchanged:
		default:
			return fmt.Errorf(
				"unknown filter %q (expected added, removed, changed, or unchanged)", f)
		}
	}
	return nil
}
