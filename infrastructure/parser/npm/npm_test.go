package npm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/reqdiff/infrastructure/parser/npm"
)

func TestParser(t *testing.T) {
	t.Parallel()

	parser := npm.New()

	t.Run("should detect package.json files only", func(t *testing.T) {
		t.Parallel()

		assert.True(t, parser.Detect("package.json"))
		assert.True(t, parser.Detect("web/Package.json"))
		assert.False(t, parser.Detect("package-lock.json"))
		assert.False(t, parser.Detect("composer.json"))
	})

	t.Run("should merge dependencies and devDependencies", func(t *testing.T) {
		t.Parallel()

		// given
		text := `{
  "name": "web",
  "dependencies": {"react": "^18.2.0", "lodash": "~4.17.21"},
  "devDependencies": {"vitest": "^1.0.0"}
}`

		// when
		manifest, err := parser.Parse(text)

		// then
		require.NoError(t, err)
		assert.Len(t, manifest, 3)
		assert.Equal(t, "^18.2.0", manifest["react"].Constraint)
		assert.Equal(t, "~4.17.21", manifest["lodash"].Constraint)
		assert.Equal(t, "^1.0.0", manifest["vitest"].Constraint)
	})

	t.Run("should let devDependencies win on duplicate names", func(t *testing.T) {
		t.Parallel()

		// given
		text := `{"dependencies": {"react": "^17.0.0"}, "devDependencies": {"react": "^18.2.0"}}`

		// when
		manifest, err := parser.Parse(text)

		// then
		require.NoError(t, err)
		require.Len(t, manifest, 1)
		assert.Equal(t, "^18.2.0", manifest["react"].Constraint)
	})

	t.Run("should treat an empty version string as no constraint", func(t *testing.T) {
		t.Parallel()

		// when
		manifest, err := parser.Parse(`{"dependencies": {"local-pkg": ""}}`)

		// then
		require.NoError(t, err)
		assert.False(t, manifest["local-pkg"].HasConstraint)
	})

	t.Run("should fail on invalid JSON", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := parser.Parse("{not json")

		// then
		assert.Error(t, err)
	})

	t.Run("should return an empty manifest for a document without dependencies", func(t *testing.T) {
		t.Parallel()

		// when
		manifest, err := parser.Parse(`{"name": "web", "version": "1.0.0"}`)

		// then
		require.NoError(t, err)
		assert.Empty(t, manifest)
	})
}
