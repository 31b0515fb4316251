package domain

import "context"

// Source abstracts where manifest text comes from: local files, stdin, HTTP
// URLs, or blobs at a git revision. Acquisition is entirely separate from
// parsing; the parsers only ever see raw text.
type Source interface {
	// Load resolves a manifest reference ("-" for stdin, an http(s) URL, or
	// a file path) to its raw text content.
	Load(ctx context.Context, ref string) (string, error)

	// LoadAt reads the file at the given path as it exists at a git
	// revision (e.g. "HEAD~1", a tag, or a commit hash).
	LoadAt(ctx context.Context, path, revision string) (string, error)
}
