package gomod

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"

	"github.com/rios0rios0/reqdiff/domain"
)

const parserName = "gomod"

// Parser implements domain.Parser for go.mod files. Each require directive
// becomes one entry, with the module version as its constraint. Indirect
// requirements are included; the diff does not distinguish them.
type Parser struct{}

// New creates a new go.mod parser.
func New() *Parser {
	return &Parser{}
}

func (p *Parser) Name() string { return parserName }

func (p *Parser) Detect(filename string) bool {
	return strings.ToLower(filepath.Base(filename)) == "go.mod"
}

// Parse decodes a go.mod file and extracts its require directives.
func (p *Parser) Parse(text string) (domain.Manifest, error) {
	file, err := modfile.Parse("go.mod", []byte(text), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to parse go.mod: %w", err)
	}

	manifest := make(domain.Manifest)
	for _, req := range file.Require {
		if req.Mod.Path == "" {
			continue
		}
		manifest.Add(domain.NewPackageEntry(req.Mod.Path, req.Mod.Version))
	}

	return manifest, nil
}
