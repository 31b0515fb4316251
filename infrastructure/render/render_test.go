package render_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/reqdiff/domain"
	renderPkg "github.com/rios0rios0/reqdiff/infrastructure/render"
)

// --- helpers ---

func sampleResult() domain.DiffResult {
	return domain.DiffResult{
		Added:   []domain.PackageEntry{domain.NewPackageEntry("pandas", "==2.1.0")},
		Removed: []domain.PackageEntry{domain.NewPackageEntry("flask", ">=2.0")},
		Changed: []domain.Change{{
			Name: "requests",
			From: domain.NewPackageEntry("requests", "==2.28.0"),
			To:   domain.NewPackageEntry("requests", "==2.31.0"),
		}},
		Unchanged: []domain.PackageEntry{domain.NewUnconstrainedEntry("numpy")},
	}
}

// --- tests ---

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should return a registered renderer by name", func(t *testing.T) {
		t.Parallel()

		// given
		registry := renderPkg.NewRegistry()
		registry.Register(renderPkg.NewTableRenderer())

		// when
		renderer, err := registry.Get("table")

		// then
		require.NoError(t, err)
		assert.Equal(t, "table", renderer.Name())
	})

	t.Run("should fail for an unknown output name", func(t *testing.T) {
		t.Parallel()

		// given
		registry := renderPkg.NewRegistry()

		// when
		_, err := registry.Get("xml")

		// then
		assert.ErrorContains(t, err, "unknown output format")
	})
}

func TestTableRenderer(t *testing.T) {
	t.Parallel()

	t.Run("should print one marked line per package and a summary", func(t *testing.T) {
		t.Parallel()

		// when
		out, err := renderPkg.NewTableRenderer().Render(sampleResult(), domain.RenderOptions{})

		// then
		require.NoError(t, err)
		assert.Contains(t, out, "+ pandas ==2.1.0")
		assert.Contains(t, out, "- flask >=2.0")
		assert.Contains(t, out, "~ requests ==2.28.0 -> ==2.31.0")
		assert.Contains(t, out, "= numpy any")
		assert.Contains(t, out, "1 added, 1 removed, 1 changed, 1 unchanged")
	})

	t.Run("should render only the filtered buckets", func(t *testing.T) {
		t.Parallel()

		// when
		out, err := renderPkg.NewTableRenderer().Render(sampleResult(), domain.RenderOptions{
			Filter: []string{domain.BucketAdded},
		})

		// then
		require.NoError(t, err)
		assert.Contains(t, out, "+ pandas")
		assert.NotContains(t, out, "- flask")
		assert.NotContains(t, out, "~ requests")
		assert.NotContains(t, out, "= numpy")
	})
}

func TestJSONRenderer(t *testing.T) {
	t.Parallel()

	t.Run("should emit a machine-readable document with all four buckets", func(t *testing.T) {
		t.Parallel()

		// when
		out, err := renderPkg.NewJSONRenderer().Render(sampleResult(), domain.RenderOptions{})

		// then
		require.NoError(t, err)

		var doc struct {
			Added     []map[string]string `json:"added"`
			Removed   []map[string]string `json:"removed"`
			Changed   []map[string]string `json:"changed"`
			Unchanged []map[string]string `json:"unchanged"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &doc))

		require.Len(t, doc.Added, 1)
		assert.Equal(t, "pandas", doc.Added[0]["name"])
		assert.Equal(t, "==2.1.0", doc.Added[0]["version"])
		require.Len(t, doc.Changed, 1)
		assert.Equal(t, "==2.28.0", doc.Changed[0]["from"])
		assert.Equal(t, "==2.31.0", doc.Changed[0]["to"])
		require.Len(t, doc.Unchanged, 1)
		assert.Equal(t, "any", doc.Unchanged[0]["version"])
	})
}

func TestMarkdownRenderer(t *testing.T) {
	t.Parallel()

	t.Run("should emit section headings and tables", func(t *testing.T) {
		t.Parallel()

		// when
		out, err := renderPkg.NewMarkdownRenderer().Render(sampleResult(), domain.RenderOptions{})

		// then
		require.NoError(t, err)
		assert.Contains(t, out, "## Added")
		assert.Contains(t, out, "## Changed")
		assert.Contains(t, out, "| requests | `==2.28.0` | `==2.31.0` |")
		assert.Contains(t, out, "**1 added, 1 removed, 1 changed, 1 unchanged**")
	})

	t.Run("should skip empty sections", func(t *testing.T) {
		t.Parallel()

		// given
		result := domain.DiffResult{
			Unchanged: []domain.PackageEntry{domain.NewUnconstrainedEntry("numpy")},
		}

		// when
		out, err := renderPkg.NewMarkdownRenderer().Render(result, domain.RenderOptions{})

		// then
		require.NoError(t, err)
		assert.NotContains(t, out, "## Added")
		assert.Contains(t, out, "## Unchanged")
	})
}
