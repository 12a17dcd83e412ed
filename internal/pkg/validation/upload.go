package validation

import (
	"errors"
	"path/filepath"
	"strings"
)

// MaxUploadBytes is the per-file size ceiling for application documents
const MaxUploadBytes = 5 * 1024 * 1024

// Upload errors
var (
	ErrFileRequired = errors.New("file is required")
	ErrFileType     = errors.New("unsupported file type (PDF/DOC/DOCX)")
	ErrFileTooLarge = errors.New("file too large (max 5 MB)")
)

// document extensions accepted for CVs and motivation letters
var allowedUploadExts = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// ValidateUpload checks an application document against the extension
// allow-list and the size ceiling
func ValidateUpload(filename string, size int64) error {
	if filename == "" {
		return ErrFileRequired
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedUploadExts[ext] {
		return ErrFileType
	}

	if size > MaxUploadBytes {
		return ErrFileTooLarge
	}

	return nil
}
