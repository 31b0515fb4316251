package terraform

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/rios0rios0/reqdiff/domain"
)

const parserName = "terraform"

var (
	// refPattern extracts the ?ref= tag from a Git-based module source.
	refPattern = regexp.MustCompile(`\?ref=([^&\s"]+)`)

	// modulePattern is the regex fallback for files HCL cannot decode.
	modulePattern = regexp.MustCompile(`(?s)module\s+"([^"]+)"\s*\{[^}]*source\s*=\s*"([^"]+)"`)

	// versionPattern matches a version attribute inside a module block, used
	// by the regex fallback only.
	versionPattern = regexp.MustCompile(`version\s*=\s*"([^"]+)"`)
)

// Parser implements domain.Parser for Terraform files. Each module block
// becomes one entry named after its label, with the version attribute (or the
// ?ref= tag of a Git source) as its constraint. Modules without any version
// information become unconstrained entries.
type Parser struct{}

// New creates a new Terraform module parser.
func New() *Parser {
	return &Parser{}
}

func (p *Parser) Name() string { return parserName }

func (p *Parser) Detect(filename string) bool {
	return strings.ToLower(filepath.Ext(filename)) == ".tf"
}

// Parse decodes the module blocks of a Terraform file. When HCL parsing
// fails the regex fallback still extracts well-formed module blocks, so this
// parser degrades rather than errors on malformed input.
func (p *Parser) Parse(text string) (domain.Manifest, error) {
	hclParser := hclparse.NewParser()

	file, diags := hclParser.ParseHCL([]byte(text), "manifest.tf")
	if diags.HasErrors() || file.Body == nil {
		return parseWithRegex(text), nil
	}

	content, _, diags := file.Body.PartialContent(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "module", LabelNames: []string{"name"}},
		},
	})
	if diags.HasErrors() {
		return parseWithRegex(text), nil
	}

	manifest := make(domain.Manifest)
	for _, block := range content.Blocks {
		if block.Type != "module" || len(block.Labels) == 0 {
			continue
		}

		name := block.Labels[0]
		attrs, _ := block.Body.JustAttributes()

		if version, ok := stringAttr(attrs, "version"); ok {
			manifest.Add(domain.NewPackageEntry(name, version))
			continue
		}

		if source, ok := stringAttr(attrs, "source"); ok {
			if ref := extractRef(source); ref != "" {
				manifest.Add(domain.NewPackageEntry(name, ref))
				continue
			}
		}

		manifest.Add(domain.NewUnconstrainedEntry(name))
	}

	return manifest, nil
}

// stringAttr evaluates an attribute as a literal string.
func stringAttr(attrs hcl.Attributes, name string) (string, bool) {
	attr, ok := attrs[name]
	if !ok {
		return "", false
	}

	val, diags := attr.Expr.Value(&hcl.EvalContext{})
	if diags.HasErrors() || val.Type() != cty.String {
		return "", false
	}

	return val.AsString(), true
}

// extractRef pulls the ?ref= tag from a Git module source URL.
func extractRef(source string) string {
	if matches := refPattern.FindStringSubmatch(source); len(matches) > 1 {
		return matches[1]
	}
	return ""
}

// parseWithRegex is the fallback for files HCL cannot decode.
func parseWithRegex(text string) domain.Manifest {
	manifest := make(domain.Manifest)

	for _, match := range modulePattern.FindAllStringSubmatch(text, -1) {
		name, source := match[1], match[2]

		if ref := extractRef(source); ref != "" {
			manifest.Add(domain.NewPackageEntry(name, ref))
			continue
		}
		if versionMatch := versionPattern.FindStringSubmatch(match[0]); len(versionMatch) > 1 {
			manifest.Add(domain.NewPackageEntry(name, versionMatch[1]))
			continue
		}

		manifest.Add(domain.NewUnconstrainedEntry(name))
	}

	return manifest
}
