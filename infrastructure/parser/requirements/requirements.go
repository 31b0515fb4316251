package requirements

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rios0rios0/reqdiff/domain"
)

const parserName = "requirements"

// linePattern matches one requirement declaration: a package name token,
// optionally followed by a version constraint starting with a comparison
// operator. Anything else on the line disqualifies it entirely.
var linePattern = regexp.MustCompile(`^([A-Za-z0-9._-]+)\s*([=<>!~].*)?$`)

// Parser implements domain.Parser for pip-style requirements files.
//
// The format is deliberately lenient: blank lines, "#" comments, and lines
// that do not look like a requirement (such as "-r other.txt" or
// "--index-url ...") are silently dropped. Parsing never fails; the worst
// case is an empty manifest.
type Parser struct{}

// New creates a new requirements parser.
func New() *Parser {
	return &Parser{}
}

func (p *Parser) Name() string { return parserName }

// Detect returns true for conventional requirements file names such as
// requirements.txt, requirements-dev.txt, or requirements.in.
func (p *Parser) Detect(filename string) bool {
	base := strings.ToLower(filepath.Base(filename))
	ext := filepath.Ext(base)
	if ext != ".txt" && ext != ".in" {
		return false
	}
	return strings.Contains(base, "requirements") || strings.Contains(base, "constraints")
}

// Parse converts requirements text into a manifest. Package names are
// case-insensitive, so the canonical key is the lower-cased name; when a name
// repeats, the later line wins.
func (p *Parser) Parse(text string) (domain.Manifest, error) {
	manifest := make(domain.Manifest)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		match := linePattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		name, constraint := match[1], match[2]
		if constraint == "" {
			manifest.Add(domain.NewUnconstrainedEntry(name))
			continue
		}
		manifest.Add(domain.NewPackageEntry(name, constraint))
	}

	return manifest, nil
}
