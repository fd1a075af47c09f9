package service

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"sqlgen/metrics"
	"sqlgen/models"
)

// DownloadFilename is the fixed name used by the download variant of /ask.
const DownloadFilename = "output_result.txt"

// OutputWriter places generated text in a single flat output directory.
// Writes truncate any existing file at the target path; nothing is versioned
// and nothing is ever removed.
type OutputWriter struct {
	outputDir string
}

func NewOutputWriter(outputDir string) (*OutputWriter, error) {
	if strings.TrimSpace(outputDir) == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	return &OutputWriter{outputDir: outputDir}, nil
}

func (w *OutputWriter) Dir() string {
	return w.outputDir
}

// SQLPath returns <outputDir>/<base>.sql.
func (w *OutputWriter) SQLPath(base string) string {
	return filepath.Join(w.outputDir, base+".sql")
}

// TestPath returns <outputDir>/<base>_test.sql.
func (w *OutputWriter) TestPath(base string) string {
	return filepath.Join(w.outputDir, base+"_test.sql")
}

func (w *OutputWriter) DownloadPath() string {
	return filepath.Join(w.outputDir, DownloadFilename)
}

func (w *OutputWriter) WriteSQL(base string, text string) (string, error) {
	return w.write(w.SQLPath(base), text, "sql")
}

func (w *OutputWriter) WriteTest(base string, text string) (string, error) {
	return w.write(w.TestPath(base), text, "test")
}

// WriteSynthesizedTest writes a test file built locally from already
// generated SQL instead of asking the model for one.
func (w *OutputWriter) WriteSynthesizedTest(base string, sql string) (string, error) {
	return w.write(w.TestPath(base), SynthesizeTest(base, sql), "synthesized_test")
}

func (w *OutputWriter) WriteDownload(text string) (string, error) {
	return w.write(w.DownloadPath(), text, "download")
}

func (w *OutputWriter) write(path string, text string, kind string) (string, error) {
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	metrics.IncOutputFile(kind)
	return path, nil
}

// SynthesizeTest renders the local test variant: a header comment, an
// information_schema existence check and an EXPLAIN of the query text.
func SynthesizeTest(base string, sql string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "-- Test cases for %s\n", base)
	b.WriteString("SELECT * FROM information_schema.tables WHERE table_name = 'test_table';\n")
	fmt.Fprintf(&b, "EXPLAIN %s;\n", sql)
	return b.String()
}

// List returns the generated files in the output directory, newest first.
func (w *OutputWriter) List() ([]models.OutputFileInfo, error) {
	entries, err := os.ReadDir(w.outputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read output directory: %w", err)
	}

	files := []models.OutputFileInfo{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".sql" && ext != ".txt" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, models.OutputFileInfo{
			Filename: entry.Name(),
			Path:     filepath.Join(w.outputDir, entry.Name()),
			Size:     info.Size(),
			Modified: info.ModTime().Format(time.RFC3339),
		})
	}

	sort.SliceStable(files, func(i, j int) bool {
		if files[i].Modified == files[j].Modified {
			return files[i].Filename < files[j].Filename
		}
		return files[i].Modified > files[j].Modified
	})
	return files, nil
}
