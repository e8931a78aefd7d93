package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mj1618/uibuilder/internal/errors"
	"github.com/mj1618/uibuilder/internal/model"
)

// WriteGenerated saves generated code. An empty dest or "-" writes to w. A
// dest that is an existing directory, or ends in a path separator, receives
// the code under its default file name. Anything else is taken as a file
// path. It returns the path written, or "" for w.
func WriteGenerated(w io.Writer, dest string, gc model.GeneratedCode) (string, error) {
	if dest == "" || dest == "-" {
		if _, err := io.WriteString(w, gc.Code); err != nil {
			return "", err
		}
		if !strings.HasSuffix(gc.Code, "\n") {
			_, err := io.WriteString(w, "\n")
			return "", err
		}
		return "", nil
	}

	path := dest
	if isDir(dest) {
		path = filepath.Join(dest, gc.FileName())
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", errors.Wrapf(err, "create directory for %s", path)
	}
	if err := os.WriteFile(path, []byte(gc.Code+"\n"), 0o644); err != nil {
		return "", errors.Wrapf(err, "write %s", path)
	}
	return path, nil
}

// WriteAll saves one output per framework under dir, each in a
// subdirectory named after its framework.
func WriteAll(dir string, results []model.GeneratedCode) ([]string, error) {
	paths := make([]string, 0, len(results))
	for _, gc := range results {
		sub := filepath.Join(dir, string(gc.Framework)) + string(filepath.Separator)
		path, err := WriteGenerated(io.Discard, sub, gc)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// WriteAllTo writes every output to w, each preceded by a header line.
func WriteAllTo(w io.Writer, results []model.GeneratedCode) error {
	for i, gc := range results {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "// ===== %s (%s) =====\n", gc.Framework, gc.FileName()); err != nil {
			return err
		}
		if _, err := WriteGenerated(w, "", gc); err != nil {
			return err
		}
	}
	return nil
}

func isDir(dest string) bool {
	if strings.HasSuffix(dest, "/") || strings.HasSuffix(dest, string(filepath.Separator)) {
		return true
	}
	info, err := os.Stat(dest)
	return err == nil && info.IsDir()
}
