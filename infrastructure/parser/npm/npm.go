package npm

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rios0rios0/reqdiff/domain"
)

const parserName = "npm"

// packageJSON holds the dependency sections of a package.json file.
type packageJSON struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Parser implements domain.Parser for npm package.json files. Regular and dev
// dependencies are merged into a single manifest; when a package appears in
// both sections, the devDependencies entry wins.
type Parser struct{}

// New creates a new package.json parser.
func New() *Parser {
	return &Parser{}
}

func (p *Parser) Name() string { return parserName }

func (p *Parser) Detect(filename string) bool {
	return strings.ToLower(filepath.Base(filename)) == "package.json"
}

// Parse decodes a package.json document and extracts its dependency maps.
func (p *Parser) Parse(text string) (domain.Manifest, error) {
	var doc packageJSON
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse package.json: %w", err)
	}

	manifest := make(domain.Manifest)
	addAll(manifest, doc.Dependencies)
	addAll(manifest, doc.DevDependencies)

	return manifest, nil
}

func addAll(manifest domain.Manifest, deps map[string]string) {
	for name, constraint := range deps {
		if constraint == "" {
			manifest.Add(domain.NewUnconstrainedEntry(name))
			continue
		}
		manifest.Add(domain.NewPackageEntry(name, constraint))
	}
}
