package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/incjc/internal/adapters/fs"
	"go.trai.ch/incjc/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
}

func TestWalker_Find(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "com", "example", "Main.java"), "class Main {}")
	writeFile(t, filepath.Join(root, "com", "example", "util", "Strings.java"), "class Strings {}")
	writeFile(t, filepath.Join(root, "com", "example", "README.md"), "docs")
	writeFile(t, filepath.Join(root, "A.java"), "class A {}")

	files, err := fs.NewWalker().Find(root, domain.SourceExt, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "A.java"),
		filepath.Join(root, "com", "example", "Main.java"),
		filepath.Join(root, "com", "example", "util", "Strings.java"),
	}, files)
}

func TestWalker_Find_SkipsGitAndJJ(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".git", "Hidden.java"), "")
	writeFile(t, filepath.Join(root, ".jj", "Hidden.java"), "")
	writeFile(t, filepath.Join(root, "src", "Main.java"), "")

	files, err := fs.NewWalker().Find(root, domain.SourceExt, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(root, "src", "Main.java")}, files)
}

func TestWalker_Find_Exclude(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "app", "Main.java"), "")
	writeFile(t, filepath.Join(root, "app", "gen", "Parser.java"), "")
	writeFile(t, filepath.Join(root, "generated", "Lexer.java"), "")
	writeFile(t, filepath.Join(root, "app", "MainTest.java"), "")

	files, err := fs.NewWalker().Find(root, domain.SourceExt, []string{"**/gen/*.java", "generated", "**/*Test.java"})
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(root, "app", "Main.java")}, files)
}

func TestWalker_Find_InvalidPattern(t *testing.T) {
	_, err := fs.NewWalker().Find(t.TempDir(), domain.SourceExt, []string{"[unterminated"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid exclude pattern")
}

func TestWalker_Find_MissingRoot(t *testing.T) {
	_, err := fs.NewWalker().Find(filepath.Join(t.TempDir(), "missing"), domain.SourceExt, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrSourceDiscoveryFailed.Error())
}

func TestWalker_Find_EmptyTree(t *testing.T) {
	files, err := fs.NewWalker().Find(t.TempDir(), domain.SourceExt, nil)
	require.NoError(t, err)
	assert.Empty(t, files)
}
