package validation

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

const (
	// MaxImageSize is the largest accepted avatar image (2 MiB).
	MaxImageSize int64 = 2 * 1024 * 1024
	// MaxResumeSize is the largest accepted resume upload (10 MiB).
	MaxResumeSize int64 = 10 * 1024 * 1024

	// MIMETypePDF is the content type of PDF resumes.
	MIMETypePDF = "application/pdf"
	// MIMETypeDOCX is the content type of Word resumes.
	MIMETypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

//nolint:gochecknoglobals,stylecheck // Validation messages are shown to the user as-is
var (
	ErrImageType      = errors.New("Please select a valid image file (JPG, PNG, or WebP)")
	ErrImageTooLarge  = errors.New("Image file size must not exceed 2MB")
	ErrResumeType     = errors.New("Please upload a PDF or DOCX file")
	ErrResumeTooLarge = errors.New("Resume file size must not exceed 10MB")
)

//nolint:gochecknoglobals // Upload allow-lists
var (
	imageTypes  = []string{"image/jpeg", "image/jpg", "image/png", "image/webp"}
	resumeTypes = []string{MIMETypePDF, MIMETypeDOCX}
)

// FileInfo describes an uploaded file as seen by the validators.
type FileInfo struct {
	Name     string `json:"name"`
	MIMEType string `json:"type"`
	Size     int64  `json:"size"`
}

// ValidateImageFile checks an avatar upload. A wrong type is reported even
// when the file is also too large.
func ValidateImageFile(file FileInfo) (err error) {
	if !contains(imageTypes, file.MIMEType) {
		err = ErrImageType
		return err
	}

	if file.Size > MaxImageSize {
		err = ErrImageTooLarge
		return err
	}

	return err
}

// ValidateResumeFile checks a resume upload: PDF or DOCX, at most 10 MiB.
func ValidateResumeFile(file FileInfo) (err error) {
	if !contains(resumeTypes, file.MIMEType) {
		err = ErrResumeType
		return err
	}

	if file.Size > MaxResumeSize {
		err = ErrResumeTooLarge
		return err
	}

	return err
}

// DescribeFile stats a local file and detects its MIME type from content.
func DescribeFile(path string) (info FileInfo, err error) {
	var stat os.FileInfo
	stat, err = os.Stat(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to stat file: %s", path)
		return info, err
	}

	if stat.IsDir() {
		err = errors.Errorf("not a regular file: %s", path)
		return info, err
	}

	var detected *mimetype.MIME
	detected, err = mimetype.DetectFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to detect file type: %s", path)
		return info, err
	}

	info = FileInfo{
		Name:     filepath.Base(path),
		MIMEType: baseMediaType(detected.String()),
		Size:     stat.Size(),
	}

	return info, err
}

// baseMediaType drops parameters such as "; charset=utf-8".
func baseMediaType(mediaType string) (base string) {
	base, _, _ = strings.Cut(mediaType, ";")
	base = strings.TrimSpace(base)
	return base
}

func contains(list []string, value string) (found bool) {
	for _, item := range list {
		if item == value {
			found = true
			return found
		}
	}
	return found
}
