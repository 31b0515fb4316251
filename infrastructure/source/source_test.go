package source_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/reqdiff/infrastructure/source"
)

func TestLoaderLoad(t *testing.T) {
	t.Parallel()

	t.Run("should read a local file", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "requirements.txt")
		require.NoError(t, os.WriteFile(path, []byte("requests==2.28.0\n"), 0o600))
		loader := source.NewLoader("", 0)

		// when
		text, err := loader.Load(context.Background(), path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "requests==2.28.0\n", text)
	})

	t.Run("should fail for a missing file", func(t *testing.T) {
		t.Parallel()

		// given
		loader := source.NewLoader("", 0)

		// when
		_, err := loader.Load(context.Background(), "/definitely/not/here.txt")

		// then
		assert.Error(t, err)
	})

	t.Run("should fetch an http url with the bearer token", func(t *testing.T) {
		t.Parallel()

		// given
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_, _ = w.Write([]byte("flask>=2.0\n"))
		}))
		defer server.Close()

		loader := source.NewLoader("secret-token", 5*time.Second)

		// when
		text, err := loader.Load(context.Background(), server.URL)

		// then
		require.NoError(t, err)
		assert.Equal(t, "flask>=2.0\n", text)
		assert.Equal(t, "Bearer secret-token", gotAuth)
	})

	t.Run("should fail on a non-200 response", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		loader := source.NewLoader("", 5*time.Second)

		// when
		_, err := loader.Load(context.Background(), server.URL)

		// then
		assert.ErrorContains(t, err, "unexpected status code 404")
	})
}

func TestLoaderLoadAt(t *testing.T) {
	t.Parallel()

	t.Run("should read the committed content instead of the working copy", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		path := filepath.Join(dir, "requirements.txt")

		repo, err := gogit.PlainInit(dir, false)
		require.NoError(t, err)
		worktree, err := repo.Worktree()
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(path, []byte("requests==2.28.0\n"), 0o600))
		_, err = worktree.Add("requirements.txt")
		require.NoError(t, err)
		_, err = worktree.Commit("add requirements", &gogit.CommitOptions{
			Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
		})
		require.NoError(t, err)

		// the working copy moves on
		require.NoError(t, os.WriteFile(path, []byte("requests==2.31.0\n"), 0o600))

		loader := source.NewLoader("", 0)

		// when
		text, err := loader.LoadAt(context.Background(), path, "HEAD")

		// then
		require.NoError(t, err)
		assert.Equal(t, "requests==2.28.0\n", text)
	})

	t.Run("should fail outside a git repository", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "requirements.txt")
		require.NoError(t, os.WriteFile(path, []byte("requests\n"), 0o600))
		loader := source.NewLoader("", 0)

		// when
		_, err := loader.LoadAt(context.Background(), path, "HEAD")

		// then
		assert.Error(t, err)
	})
}
