package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUpload(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		size     int64
		err      error
	}{
		{"pdf", "cv.pdf", 1024, nil},
		{"doc", "letter.doc", 1024, nil},
		{"docx", "letter.docx", 1024, nil},
		{"uppercase extension", "CV.PDF", 1024, nil},
		{"exactly at the limit", "cv.pdf", MaxUploadBytes, nil},
		{"executable", "resume.exe", 1024, ErrFileType},
		{"image", "photo.png", 1024, ErrFileType},
		{"no extension", "resume", 1024, ErrFileType},
		{"too large", "cv.pdf", MaxUploadBytes + 1, ErrFileTooLarge},
		{"empty filename", "", 1024, ErrFileRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpload(tt.filename, tt.size)
			if tt.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}
