package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/notevault/internal/filex"
)

// Sink receives finished documents.
type Sink interface {
	// Save stores data under name and returns where it ended up.
	Save(name string, data []byte) (string, error)
}

// DirSink writes documents into a directory, creating it on first use.
type DirSink struct {
	Dir string
}

func (s DirSink) Save(name string, data []byte) (string, error) {
	dir, err := filex.EnsureDir(s.Dir)
	if err != nil {
		return "", fmt.Errorf("download dir: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// FileName returns the download file name for a note title.
func FileName(title string) string {
	return filex.SafeFileName(title) + DocxExt
}
