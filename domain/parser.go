package domain

// Parser abstracts a manifest format (pip requirements, go.mod, package.json,
// Terraform modules, etc.). Every format normalizes into the same Manifest so
// the diff engine stays format-agnostic.
type Parser interface {
	// Name returns the format identifier (e.g. "requirements", "gomod").
	Name() string

	// Detect returns true if the given filename conventionally belongs to
	// this format.
	Detect(filename string) bool

	// Parse converts raw manifest text into a Manifest. Lenient formats
	// (requirements) drop malformed lines and never return an error;
	// structured formats (go.mod, package.json) return one when the document
	// itself cannot be decoded.
	Parse(text string) (Manifest, error)
}
