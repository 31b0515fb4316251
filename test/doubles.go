// Package testdoubles provides test doubles (spies, stubs, dummies) for domain
// interfaces. These are hand-crafted implementations; no mock frameworks.
package testdoubles

import (
	"context"
	"fmt"

	"github.com/rios0rios0/reqdiff/domain"
)

// ---------------------------------------------------------------------------
// SpyParser
// ---------------------------------------------------------------------------

// SpyParser implements domain.Parser as a configurable spy. Configure the
// response fields for the methods your test exercises, then inspect the
// call-tracking fields to verify behavior.
type SpyParser struct {
	// --- identity ---
	ParserName string

	// --- Detect ---
	DetectResult bool
	// spy: filenames checked
	DetectedFilenames []string

	// --- Parse ---
	Manifests map[string]domain.Manifest // text -> manifest
	ParseErr  error
	// spy: texts parsed
	ParsedTexts []string
}

var _ domain.Parser = (*SpyParser)(nil)

func (p *SpyParser) Name() string { return p.ParserName }

func (p *SpyParser) Detect(filename string) bool {
	p.DetectedFilenames = append(p.DetectedFilenames, filename)
	return p.DetectResult
}

func (p *SpyParser) Parse(text string) (domain.Manifest, error) {
	p.ParsedTexts = append(p.ParsedTexts, text)
	if p.ParseErr != nil {
		return nil, p.ParseErr
	}
	if manifest, ok := p.Manifests[text]; ok {
		return manifest, nil
	}
	return make(domain.Manifest), nil
}

// ---------------------------------------------------------------------------
// SpyRenderer
// ---------------------------------------------------------------------------

// SpyRenderer implements domain.Renderer as a configurable spy.
type SpyRenderer struct {
	RendererName string
	Output       string
	RenderErr    error

	// spy: inputs received
	Results []domain.DiffResult
	Options []domain.RenderOptions
}

var _ domain.Renderer = (*SpyRenderer)(nil)

func (r *SpyRenderer) Name() string { return r.RendererName }

func (r *SpyRenderer) Render(result domain.DiffResult, opts domain.RenderOptions) (string, error) {
	r.Results = append(r.Results, result)
	r.Options = append(r.Options, opts)
	if r.RenderErr != nil {
		return "", r.RenderErr
	}
	return r.Output, nil
}

// ---------------------------------------------------------------------------
// StubSource
// ---------------------------------------------------------------------------

// StubSource implements domain.Source with canned content. Revision loads are
// keyed as "ref@revision".
type StubSource struct {
	Contents map[string]string
	LoadErr  error

	// spy: refs requested
	LoadedRefs []string
}

var _ domain.Source = (*StubSource)(nil)

func (s *StubSource) Load(_ context.Context, ref string) (string, error) {
	s.LoadedRefs = append(s.LoadedRefs, ref)
	if s.LoadErr != nil {
		return "", s.LoadErr
	}
	text, ok := s.Contents[ref]
	if !ok {
		return "", fmt.Errorf("no stub content for %q", ref)
	}
	return text, nil
}

func (s *StubSource) LoadAt(ctx context.Context, path, revision string) (string, error) {
	return s.Load(ctx, path+"@"+revision)
}

// ---------------------------------------------------------------------------
// Dummies
// ---------------------------------------------------------------------------

// DummyParser is an inert domain.Parser for interface compliance checks.
type DummyParser struct{}

var _ domain.Parser = (*DummyParser)(nil)

func (p *DummyParser) Name() string       { return "dummy" }
func (p *DummyParser) Detect(string) bool { return false }
func (p *DummyParser) Parse(string) (domain.Manifest, error) {
	return make(domain.Manifest), nil
}

// DummyRenderer is an inert domain.Renderer for interface compliance checks.
type DummyRenderer struct{}

var _ domain.Renderer = (*DummyRenderer)(nil)

func (r *DummyRenderer) Name() string { return "dummy" }
func (r *DummyRenderer) Render(domain.DiffResult, domain.RenderOptions) (string, error) {
	return "", nil
}
