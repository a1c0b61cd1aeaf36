package site_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-magnitude/internal/site"
	"github.com/goliatone/go-magnitude/pkg/dataset"
	"github.com/goliatone/go-magnitude/pkg/orchestrator"
)

const lengthsYAML = `title: Lengths
observables:
  - name: Bohr radius
    value: 5.29e-11
    unit: m
`

func newBuilder(t *testing.T) *site.Builder {
	t.Helper()
	fsys := fstest.MapFS{
		"data/lengths.yml": &fstest.MapFile{Data: []byte(lengthsYAML)},
	}
	gen := orchestrator.New(orchestrator.WithFileSystem(fsys))
	configs := []dataset.Config{
		{Source: dataset.SourceFromFS("data/lengths.yml"), TargetUnit: "m"},
	}
	return site.NewBuilder(gen, configs, "")
}

func TestStylesheetHref(t *testing.T) {
	href, err := site.StylesheetHref(
		filepath.Join("out", "index.html"),
		filepath.Join("out", "index.css"),
	)
	require.NoError(t, err)
	assert.Equal(t, "index.css", href)

	href, err = site.StylesheetHref(
		filepath.Join("out", "index.html"),
		filepath.Join("out", "styles", "index.css"),
	)
	require.NoError(t, err)
	assert.Equal(t, "styles/index.css", href)

	href, err = site.StylesheetHref(
		filepath.Join("out", "pages", "index.html"),
		filepath.Join("out", "index.css"),
	)
	require.NoError(t, err)
	assert.Equal(t, "../index.css", href)
}

func TestBuilderBuild(t *testing.T) {
	dir := t.TempDir()
	htmlPath := filepath.Join(dir, site.DefaultHTMLFilename)
	cssPath := filepath.Join(dir, site.DefaultCSSFilename)

	builder := newBuilder(t)
	require.NoError(t, builder.Build(context.Background(), htmlPath, cssPath))

	html, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(html), `href="`+site.DefaultCSSFilename+`"`)
	assert.Contains(t, string(html), "5.29 x 10<sup>-11</sup> m")

	css, err := os.ReadFile(cssPath)
	require.NoError(t, err)
	assert.Contains(t, string(css), ".math")
}

func TestBuilderBuild_FailsWithoutWriting(t *testing.T) {
	dir := t.TempDir()
	htmlPath := filepath.Join(dir, "index.html")
	cssPath := filepath.Join(dir, "index.css")

	fsys := fstest.MapFS{
		"data/bad.yml": &fstest.MapFile{Data: []byte(
			"title: Bad\nobservables:\n  - name: x\n    value: 1\n    unit: bananas\n")},
	}
	gen := orchestrator.New(orchestrator.WithFileSystem(fsys))
	builder := site.NewBuilder(gen, []dataset.Config{
		{Source: dataset.SourceFromFS("data/bad.yml"), TargetUnit: "m"},
	}, "")

	require.Error(t, builder.Build(context.Background(), htmlPath, cssPath))
	_, err := os.Stat(htmlPath)
	assert.True(t, os.IsNotExist(err), "html written despite load failure")
	_, err = os.Stat(cssPath)
	assert.True(t, os.IsNotExist(err), "css written despite load failure")
}

func TestPreviewRouter(t *testing.T) {
	dir := t.TempDir()
	htmlPath := filepath.Join(dir, "index.html")
	cssPath := filepath.Join(dir, "index.css")

	builder := newBuilder(t)
	require.NoError(t, builder.Build(context.Background(), htmlPath, cssPath))

	server := httptest.NewServer(site.NewPreviewRouter(htmlPath, cssPath))
	defer server.Close()

	resp, err := http.Get(server.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html"))

	resp, err = http.Get(server.URL + "/index.css")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
