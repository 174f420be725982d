package projectfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/alexanderramin/sdlc/internal/domain"
)

// FileSuffix is appended to the sanitized project name by DefaultFileName.
const FileSuffix = "_proyecto.json"

var unsafeFileChars = regexp.MustCompile(`[^0-9a-zA-Z\-_]+`)

// DefaultFileName derives a file name from a project name: the trimmed name
// with every run of characters outside [0-9a-zA-Z-_] replaced by "_".
func DefaultFileName(name string) string {
	return unsafeFileChars.ReplaceAllString(strings.TrimSpace(name), "_") + FileSuffix
}

// Export writes p to path and returns the absolute path written. An empty
// path uses DefaultFileName relative to the working directory. When
// overwrite is false and the file exists, Export fails with
// domain.ErrAlreadyExists and leaves the file untouched.
func Export(p *domain.Project, path string, overwrite bool) (string, error) {
	if path == "" {
		path = DefaultFileName(p.Name)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving export path %q: %w", path, err)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	f, err := os.OpenFile(absPath, flags, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("file %s exists and overwrite is disabled: %w", absPath, domain.ErrAlreadyExists)
		}
		return "", fmt.Errorf("opening %s: %w", absPath, err)
	}

	if err := Encode(f, p); err != nil {
		f.Close()
		return "", fmt.Errorf("writing %s: %w", absPath, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", absPath, err)
	}
	return absPath, nil
}
