package tail_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"logbay/internal/tail"
)

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadTailShortFileUnchanged(t *testing.T) {
	content := "one\ntwo\nthree\n"
	path := writeLog(t, content)

	got, err := tail.ReadTail(path, 10)
	require.NoError(t, err)
	require.Equal(t, content, got)
}

func TestReadTailReturnsLastLines(t *testing.T) {
	path := writeLog(t, "1\n2\n3\n4\n5\n")

	got, err := tail.ReadTail(path, 3)
	require.NoError(t, err)
	require.Equal(t, "3\n4\n5\n", got)
}

func TestReadTailByteIdenticalToSourceTail(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 5000; i++ {
		b.WriteString(strings.Repeat("x", i%40))
		b.WriteString("\n")
	}
	content := b.String()
	path := writeLog(t, content)

	got, err := tail.ReadTail(path, 100)
	require.NoError(t, err)

	lines := strings.SplitAfter(content, "\n")
	lines = lines[:len(lines)-1] // SplitAfter leaves a trailing empty element
	want := strings.Join(lines[len(lines)-100:], "")
	require.Equal(t, want, got)
}

func TestReadTailKeepsFinalPartialLine(t *testing.T) {
	path := writeLog(t, "a\nb\nno trailing newline")

	got, err := tail.ReadTail(path, 2)
	require.NoError(t, err)
	require.Equal(t, "b\nno trailing newline", got)
}

func TestReadTailMissingFile(t *testing.T) {
	_, err := tail.ReadTail(filepath.Join(t.TempDir(), "rotated-away.log"), 10)
	require.Error(t, err)
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestReadTailDirectoryIsIOError(t *testing.T) {
	_, err := tail.ReadTail(t.TempDir(), 10)
	require.Error(t, err)
	require.False(t, errors.Is(err, fs.ErrNotExist))
}

func TestReadTailZeroCeiling(t *testing.T) {
	path := writeLog(t, "a\nb\n")

	got, err := tail.ReadTail(path, 0)
	require.NoError(t, err)
	require.Empty(t, got)
}
