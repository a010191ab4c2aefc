package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}

func TestEnsureDir_RelativeResolvedAgainstCWD(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	got, err := EnsureDir("download")
	require.NoError(t, err)

	want := filepath.Join(tmp, "download")
	gotEval, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	wantEval, err := filepath.EvalSymlinks(want)
	require.NoError(t, err)
	require.Equal(t, wantEval, gotEval)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		perm := fi.Mode().Perm()
		require.Equal(t, os.FileMode(0o700), perm&0o700)
	}
}

func TestEnsureDir_AbsoluteAndIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	got1, err := EnsureDir(dir)
	require.NoError(t, err)
	got2, err := EnsureDir(dir)
	require.NoError(t, err)

	require.Equal(t, dir, got1)
	require.Equal(t, got1, got2)
}

func TestEnsureDir_FailsWhenFileExists(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "taken")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := EnsureDir(blocker)
	require.Error(t, err)
}

func TestSafeFileName(t *testing.T) {
	tests := map[string]string{
		"Shopping list":      "Shopping list",
		"a/b\\c:d":           "a_b_c_d",
		"  spaced  ":         "spaced",
		"":                   "note",
		"...":                "note",
		"line\nbreak":        "line_break",
		`what?"quoted"<tag>`: "what__quoted__tag_",
	}
	for in, want := range tests {
		require.Equal(t, want, SafeFileName(in), "input %q", in)
	}
}
