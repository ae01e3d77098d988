package analyzer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGitignore(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(content), 0o600))
	return dir
}

func TestGitignoreParser_NoFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	gp, err := NewGitignoreParser(dir)
	require.NoError(t, err)

	ignore, negate := gp.Patterns()
	assert.Zero(t, ignore)
	assert.Zero(t, negate)
	assert.False(t, gp.ShouldIgnore(filepath.Join(dir, "useFoo.ts"), false))
}

func TestGitignoreParser_ShouldIgnore(t *testing.T) {
	t.Parallel()

	dir := writeGitignore(t, `# generated
*.generated.ts
useDraft*.ts
!useDraftKeep.ts
/legacy/
build/
drafts/*.ts

`)

	gp, err := NewGitignoreParser(dir)
	require.NoError(t, err)

	ignore, negate := gp.Patterns()
	assert.Equal(t, 5, ignore)
	assert.Equal(t, 1, negate)

	tests := []struct {
		path  string
		isDir bool
		want  bool
	}{
		{"useFoo.ts", false, false},
		{"useFoo.generated.ts", false, true},
		{"useDraftOne.ts", false, true},
		{"useDraftKeep.ts", false, false},
		{"legacy", true, true},
		{"legacy", false, false},
		{"nested/legacy", true, false},
		{"build", true, true},
		{"nested/build", true, true},
		{"drafts/useBar.ts", false, true},
		{"other/drafts/useBar.ts", false, false},
	}

	for _, tt := range tests {
		got := gp.ShouldIgnore(filepath.Join(dir, tt.path), tt.isDir)
		assert.Equal(t, tt.want, got, "path %s (dir=%v)", tt.path, tt.isDir)
	}
}

func TestMatchGlob_Malformed(t *testing.T) {
	t.Parallel()

	assert.False(t, matchGlob("[", "useFoo.ts"))
	assert.True(t, matchGlob("use?oo.ts", "useFoo.ts"))
}

func TestGitignoreParser_DoubleStar(t *testing.T) {
	t.Parallel()

	dir := writeGitignore(t, "**/useDraft*.ts\narchive/**\n**/fixtures/\n")

	gp, err := NewGitignoreParser(dir)
	require.NoError(t, err)

	tests := []struct {
		path  string
		isDir bool
		want  bool
	}{
		{"useDraftThing.ts", false, true},
		{"nested/deeper/useDraftThing.ts", false, true},
		{"useReal.ts", false, false},
		{"archive/useOld.ts", false, true},
		{"archive/2023/useOld.ts", false, true},
		{"useArchive.ts", false, false},
		{"fixtures", true, true},
		{"nested/fixtures", true, true},
		{"fixtures", false, false},
	}

	for _, tt := range tests {
		got := gp.ShouldIgnore(filepath.Join(dir, tt.path), tt.isDir)
		assert.Equal(t, tt.want, got, "path %s (dir=%v)", tt.path, tt.isDir)
	}
}
