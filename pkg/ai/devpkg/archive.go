package devpkg

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// Archive packs the generated files into an in-memory ZIP. The caller
// decides where the bytes end up (object storage, DB row, download).
func Archive(files []File) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	for _, f := range files {
		entry, err := w.Create(f.Path)
		if err != nil {
			return nil, fmt.Errorf("create zip entry %s: %w", f.Path, err)
		}
		if _, err := entry.Write([]byte(f.Content)); err != nil {
			return nil, fmt.Errorf("write zip entry %s: %w", f.Path, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalize zip: %w", err)
	}
	return buf.Bytes(), nil
}
