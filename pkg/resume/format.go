package resume

import (
	"regexp"
	"time"
)

// DateLayout renders dates as abbreviated month and full year, e.g. "Mar 2024".
const DateLayout = "Jan 2006"

// PDFSuffix is appended to the sanitized username of exported files.
const PDFSuffix = "-portfolio.pdf"

//nolint:gochecknoglobals // Compiled once, read-only
var filenameUnsafe = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// FormatDate normalizes a date for display. Strings pass through unchanged,
// time values render with DateLayout, missing values and objects or sequences
// become "" and any other scalar is printed in its plain string form.
func FormatDate(value interface{}) (formatted string) {
	if !usable(value) || !isScalar(value) {
		return formatted
	}

	switch v := value.(type) {
	case string:
		formatted = v
	case time.Time:
		formatted = v.Format(DateLayout)
	case *time.Time:
		formatted = v.Format(DateLayout)
	default:
		formatted = stringify(v)
	}

	return formatted
}

// GeneratePDFFilename builds the export filename for a user. Only letters,
// digits, hyphen and underscore survive from the username.
func GeneratePDFFilename(username string) (filename string) {
	filename = filenameUnsafe.ReplaceAllString(username, "") + PDFSuffix
	return filename
}
