package gomod_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/reqdiff/infrastructure/parser/gomod"
)

func TestParser(t *testing.T) {
	t.Parallel()

	parser := gomod.New()

	t.Run("should detect go.mod files only", func(t *testing.T) {
		t.Parallel()

		assert.True(t, parser.Detect("go.mod"))
		assert.True(t, parser.Detect("some/project/go.mod"))
		assert.False(t, parser.Detect("go.sum"))
		assert.False(t, parser.Detect("requirements.txt"))
	})

	t.Run("should extract require directives with versions as constraints", func(t *testing.T) {
		t.Parallel()

		// given
		text := `module example.com/app

go 1.22

require (
	github.com/spf13/cobra v1.10.2
	github.com/sirupsen/logrus v1.9.4 // indirect
)

require gopkg.in/yaml.v3 v3.0.1
`

		// when
		manifest, err := parser.Parse(text)

		// then
		require.NoError(t, err)
		assert.Len(t, manifest, 3)
		assert.Equal(t, "v1.10.2", manifest["github.com/spf13/cobra"].Constraint)
		assert.Equal(t, "v1.9.4", manifest["github.com/sirupsen/logrus"].Constraint)
		assert.Equal(t, "v3.0.1", manifest["gopkg.in/yaml.v3"].Constraint)
	})

	t.Run("should return an empty manifest for a module without requires", func(t *testing.T) {
		t.Parallel()

		// when
		manifest, err := parser.Parse("module example.com/app\n\ngo 1.22\n")

		// then
		require.NoError(t, err)
		assert.Empty(t, manifest)
	})

	t.Run("should fail on undecodable input", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := parser.Parse("require \"unterminated")

		// then
		assert.Error(t, err)
	})
}
