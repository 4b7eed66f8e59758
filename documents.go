package main

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Document store functions
//
// Uploaded files are kept next to the database under documentDir and are
// referenced from the contract row by absolute path. No delete operation
// exists: replacing or removing a contract leaves its files on disk.

// saveDocument writes an uploaded file under documentDir and returns its
// absolute path. The filename embeds the contract id plus a random token so
// concurrent uploads can never collide on a shared wall-clock second.
func saveDocument(header *multipart.FileHeader, contractID int64) (string, error) {
	if err := os.MkdirAll(documentDir, 0755); err != nil {
		return "", fmt.Errorf("create document directory: %w", err)
	}

	ext := filepath.Ext(header.Filename)
	name := fmt.Sprintf("contract_%d_%s%s", contractID, uuid.NewString(), ext)

	path, err := filepath.Abs(filepath.Join(documentDir, name))
	if err != nil {
		return "", fmt.Errorf("resolve document path: %w", err)
	}

	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create document file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write document file: %w", err)
	}

	return path, nil
}

// documentExists reports whether a stored path is still present on disk.
// A row can outlive its file (external tampering), so retrieval checks this
// separately from the record lookup.
func documentExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
