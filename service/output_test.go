package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWriter(t *testing.T) *OutputWriter {
	t.Helper()
	w, err := NewOutputWriter(filepath.Join(t.TempDir(), "result"))
	require.NoError(t, err)
	return w
}

func TestNewOutputWriterCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	_, err := NewOutputWriter(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = NewOutputWriter(" ")
	assert.Error(t, err)
}

func TestOutputPaths(t *testing.T) {
	w := newTestWriter(t)

	assert.Equal(t, filepath.Join(w.Dir(), "orders.sql"), w.SQLPath("orders"))
	assert.Equal(t, filepath.Join(w.Dir(), "orders_test.sql"), w.TestPath("orders"))
	assert.Equal(t, filepath.Join(w.Dir(), "output_result.txt"), w.DownloadPath())
}

func TestWriteTestRoundTrip(t *testing.T) {
	w := newTestWriter(t)
	text := "-- tests\r\nSELECT count(*) FROM orders;\n\n\t-- trailing"

	path, err := w.WriteTest("orders", text)
	require.NoError(t, err)
	assert.Equal(t, w.TestPath("orders"), path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, text, string(got))
}

func TestWriteTruncatesExistingFile(t *testing.T) {
	w := newTestWriter(t)

	_, err := w.WriteSQL("orders", "a much longer first version of the file")
	require.NoError(t, err)
	path, err := w.WriteSQL("orders", "short")
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "short", string(got))
}

func TestWriteEmptyText(t *testing.T) {
	w := newTestWriter(t)
	path, err := w.WriteSQL("empty", "")
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWriteFailsWhenDirectoryRemoved(t *testing.T) {
	w := newTestWriter(t)
	require.NoError(t, os.RemoveAll(w.Dir()))

	_, err := w.WriteSQL("orders", "SELECT 1;")
	assert.Error(t, err)
}

func TestSynthesizeTest(t *testing.T) {
	want := "-- Test cases for orders\n" +
		"SELECT * FROM information_schema.tables WHERE table_name = 'test_table';\n" +
		"EXPLAIN SELECT * FROM orders;\n"
	assert.Equal(t, want, SynthesizeTest("orders", "SELECT * FROM orders"))

	w := newTestWriter(t)
	path, err := w.WriteSynthesizedTest("orders", "SELECT * FROM orders")
	require.NoError(t, err)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, string(got))
}

func TestList(t *testing.T) {
	w := newTestWriter(t)
	_, err := w.WriteSQL("a", "1")
	require.NoError(t, err)
	_, err = w.WriteTest("a", "2")
	require.NoError(t, err)
	_, err = w.WriteDownload("3")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(w.Dir(), "notes.md"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(w.Dir(), "sub.sql"), 0755))

	files, err := w.List()
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, f.Filename)
	}
	assert.ElementsMatch(t, []string{"a.sql", "a_test.sql", "output_result.txt"}, names)
}
