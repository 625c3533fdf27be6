package devpkg

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advisor-portal-be/pkg/ai/spec"
	"advisor-portal-be/pkg/llm"
)

type fakeCaller struct {
	response string
	err      error
}

func (f *fakeCaller) Generate(_ context.Context, _ []llm.Message, _ string, _ ...llm.Option) (string, error) {
	return f.response, f.err
}

func testArtifact() *spec.Artifact {
	return &spec.Artifact{
		Title:   "Invoice Agent",
		Summary: "Automates invoice intake and matching.",
		Steps:   []string{"Ingest invoices", "Match against purchase orders"},
	}
}

func TestGenerateParsesModelFileSet(t *testing.T) {
	caller := &fakeCaller{
		response: "```json\n{\"files\":[{\"path\":\"README.md\",\"content\":\"# Invoice Agent\"},{\"path\":\"API_SPEC.md\",\"content\":\"## Endpoints\"}]}\n```",
	}
	g := NewGenerator(caller, "model-a", nil)

	files := g.Generate(context.Background(), testArtifact())
	require.Len(t, files, 2)
	assert.Equal(t, "README.md", files[0].Path)
	assert.Equal(t, "# Invoice Agent", files[0].Content)
}

func TestGenerateModelErrorFallsBack(t *testing.T) {
	g := NewGenerator(&fakeCaller{err: errors.New("quota exhausted")}, "model-a", nil)

	files := g.Generate(context.Background(), testArtifact())
	require.NotEmpty(t, files)
	assertContainsPath(t, files, "README.md")
	assertContainsPath(t, files, "CURSOR_OPENING_PROMPT.md")
}

func TestGenerateGarbageOutputFallsBack(t *testing.T) {
	g := NewGenerator(&fakeCaller{response: "sorry, I cannot do that as JSON"}, "model-a", nil)

	files := g.Generate(context.Background(), testArtifact())
	require.NotEmpty(t, files)
	assertContainsPath(t, files, "ARCHITECTURE.md")
}

func TestGenerateSkipsEmptyEntries(t *testing.T) {
	caller := &fakeCaller{
		response: `{"files":[{"path":"","content":"x"},{"path":"OK.md","content":"ok"},{"path":"EMPTY.md","content":""}]}`,
	}
	g := NewGenerator(caller, "model-a", nil)

	files := g.Generate(context.Background(), testArtifact())
	require.Len(t, files, 1)
	assert.Equal(t, "OK.md", files[0].Path)
}

func TestFallbackFilesReflectArtifact(t *testing.T) {
	files := FallbackFiles(testArtifact())

	readme := findFile(t, files, "README.md")
	assert.Contains(t, readme.Content, "Invoice Agent")
	assert.Contains(t, readme.Content, "Automates invoice intake")

	plan := findFile(t, files, "IMPLEMENTATION_PLAN.md")
	assert.Contains(t, plan.Content, "Ingest invoices")
}

func TestBuildPromptIncludesSpecFields(t *testing.T) {
	prompt := BuildPrompt(testArtifact())
	assert.Contains(t, prompt, "Title: Invoice Agent")
	assert.Contains(t, prompt, "Ingest invoices | Match against purchase orders")
}

func TestArchiveRoundTrip(t *testing.T) {
	files := []File{
		{Path: "README.md", Content: "# Hello"},
		{Path: "docs/PLAN.md", Content: "plan body"},
	}

	data, err := Archive(files)
	require.NoError(t, err)

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, reader.File, 2)

	entry, err := reader.File[1].Open()
	require.NoError(t, err)
	defer entry.Close()
	content, err := io.ReadAll(entry)
	require.NoError(t, err)
	assert.Equal(t, "plan body", string(content))
}

func assertContainsPath(t *testing.T, files []File, path string) {
	t.Helper()
	for _, f := range files {
		if f.Path == path {
			return
		}
	}
	t.Errorf("file set missing %s", path)
}

func findFile(t *testing.T, files []File, path string) File {
	t.Helper()
	for _, f := range files {
		if f.Path == path {
			return f
		}
	}
	t.Fatalf("file set missing %s", path)
	return File{}
}
