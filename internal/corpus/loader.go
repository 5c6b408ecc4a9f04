// Package corpus handles discovery, loading and rewriting of annotated run
// files on disk.
package corpus

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jwhan/biaslens/internal/model"
)

// Discover returns every .json file under root, walking subdirectories.
func Discover(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) == ".json" {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return files, nil
}

// Load reads and normalizes one corpus file.
func Load(path string) (*model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := model.DecodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return doc, nil
}

// Save rewrites a corpus file in its original top-level shape. Serialization
// happens before the file is touched, so an encoding failure leaves the
// on-disk content intact.
func Save(path string, doc *model.Document) error {
	data, err := doc.Encode()
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
