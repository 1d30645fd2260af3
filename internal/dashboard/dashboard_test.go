package dashboard

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/docnav/internal/fileutil"
	"github.com/harrison/docnav/internal/naming"
)

const testWelcome = "Welcome to my self-record workspace.  \nUse this dashboard to track what I do, what I learn, and how I grow."

func writeTree(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if strings.HasSuffix(p, "/") {
			require.NoError(t, os.MkdirAll(full, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte("# "+p+"\n"), 0644))
	}
}

func newTestWriter(root string, overrides map[string]string) *Writer {
	return NewWriter(root, naming.NewTitler(overrides), fileutil.ScanOptions{Ignore: fileutil.DefaultIgnore}, Options{
		RootTitle: "📘 My Personal Dashboard",
		Welcome:   testWelcome,
	})
}

func TestCompose_Root(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"projects/ai.md",
		"daily/",
		"intro.md",
		"_sidebar.md",
	)

	data, err := newTestWriter(root, nil).Compose(root)
	require.NoError(t, err)

	want := strings.Join([]string{
		"<h1>📘 My Personal Dashboard</h1>",
		"",
		"Welcome to my self-record workspace.  ",
		"Use this dashboard to track what I do, what I learn, and how I grow.",
		"",
		"---",
		"",
		`<div class="dashboard-grid">`,
		"",
		`  <a class="card" href="#/projects/README.md">`,
		"    <h2>📁 Projects</h2>",
		"    <p>Notes, logs, and links for this section.</p>",
		"  </a>",
		"",
		`  <a class="card" href="#/intro">`,
		"    <h2>📄 Intro</h2>",
		"    <p>Page in this section.</p>",
		"  </a>",
		"",
		"</div>",
		"",
	}, "\n")
	assert.Equal(t, want, string(data))
}

func TestCompose_Section(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"learning-note/Go_Generics.md",
		"learning-note/databases/README.md",
		"learning-note/databases/postgres.md",
	)

	writer := newTestWriter(root, map[string]string{"learning-note": "📖 Learning Notes"})
	data, err := writer.Compose(filepath.Join(root, "learning-note"))
	require.NoError(t, err)

	want := strings.Join([]string{
		"<h1>📖 Learning Notes</h1>",
		"",
		"This section contains notes, logs, and links related to **Learning Note**.",
		"",
		"---",
		"",
		`<div class="dashboard-grid">`,
		"",
		`  <a class="card" href="#/learning-note/databases/README.md">`,
		"    <h2>📁 Databases</h2>",
		"    <p>Notes, logs, and links for this section.</p>",
		"  </a>",
		"",
		`  <a class="card" href="#/learning-note/Go_Generics">`,
		"    <h2>📄 Go Generics</h2>",
		"    <p>Page in this section.</p>",
		"  </a>",
		"",
		"</div>",
		"",
	}, "\n")
	assert.Equal(t, want, string(data))
}

func TestCompose_EscapesMarkup(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "r&d/notes.md", "a<b>.md")

	data, err := newTestWriter(root, nil).Compose(root)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, `href="#/r&amp;d/README.md"`)
	assert.Contains(t, out, `href="#/a%3Cb%3E"`)
	assert.NotContains(t, out, "<b>")
}

func TestCompose_EscapesSectionIntro(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "x<y>")
	writeTree(t, root, "x<y>/page.md")

	data, err := newTestWriter(root, nil).Compose(dir)
	require.NoError(t, err)

	var intro string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.Contains(line, "related to") {
			intro = line
		}
	}
	require.NotEmpty(t, intro)
	assert.Contains(t, intro, "&lt;")
	assert.NotContains(t, intro, "<")
}

func TestWrite_SkipsExistingIndex(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "page.md")

	handWritten := []byte("# My own landing page\n\nDo not touch.\n")
	readme := filepath.Join(root, "README.md")
	require.NoError(t, os.WriteFile(readme, handWritten, 0644))

	result, err := newTestWriter(root, nil).Write(root, false)
	require.NoError(t, err)

	assert.False(t, result.Written)
	assert.Equal(t, readme, result.Path)

	data, err := os.ReadFile(readme)
	require.NoError(t, err)
	assert.Equal(t, handWritten, data)
}

func TestWrite_OverwriteReplacesContent(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "page.md")

	readme := filepath.Join(root, "README.md")
	require.NoError(t, os.WriteFile(readme, []byte("# Old content that should vanish entirely\n"), 0644))

	writer := newTestWriter(root, nil)
	result, err := writer.Write(root, true)
	require.NoError(t, err)
	assert.True(t, result.Written)
	assert.Equal(t, readme, result.Path)

	data, err := os.ReadFile(readme)
	require.NoError(t, err)

	want, err := writer.Compose(root)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(data))
	assert.NotContains(t, string(data), "Old content")
}

func TestWrite_OverwriteKeepsExistingIndexName(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "notes/readme.md", "notes/page.md")

	result, err := newTestWriter(root, nil).Write(filepath.Join(root, "notes"), true)
	require.NoError(t, err)
	assert.True(t, result.Written)
	assert.Equal(t, filepath.Join(root, "notes", "readme.md"), result.Path)
}

func TestWrite_CreatesMissingIndex(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "projects/ai.md")

	projects := filepath.Join(root, "projects")
	result, err := newTestWriter(root, nil).Write(projects, false)
	require.NoError(t, err)

	assert.True(t, result.Written)
	assert.Equal(t, filepath.Join(projects, "README.md"), result.Path)
	assert.FileExists(t, result.Path)
}

func TestWrite_EmptyFolderCardAppearsAfterVisit(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "projects/ai.md", "daily/")

	writer := newTestWriter(root, nil)

	before, err := writer.Compose(root)
	require.NoError(t, err)
	assert.Contains(t, string(before), "#/projects/README.md")
	assert.NotContains(t, string(before), "#/daily/")

	_, err = writer.Write(filepath.Join(root, "daily"), false)
	require.NoError(t, err)

	after, err := writer.Compose(root)
	require.NoError(t, err)
	assert.Contains(t, string(after), `href="#/daily/README.md"`)
}

func TestWrite_MissingFolder(t *testing.T) {
	root := t.TempDir()
	_, err := newTestWriter(root, nil).Write(filepath.Join(root, "missing"), false)
	require.Error(t, err)
}
