package portfolio

import (
	"github.com/nikogura/portfolio-builder/pkg/resume"
	"github.com/nikogura/portfolio-builder/pkg/validation"
)

// ProfileFields extracts the editable profile form fields from a record.
// Missing or non-string values come back empty.
func ProfileFields(record resume.Record) (fields validation.ProfileFieldSet) {
	fields = validation.ProfileFieldSet{
		Title:    stringField(record, "title", "tagline"),
		Location: stringField(record, "location"),
		Bio:      stringField(record, "bio", "about"),
		GitHub:   stringField(record, "github"),
		LinkedIn: stringField(record, "linkedin"),
		Website:  stringField(record, "website"),
	}
	return fields
}

// Username picks the name used for export filenames.
func Username(record resume.Record, fallback string) (username string) {
	username = stringField(record, "username", "name")
	if username == "" {
		username = fallback
	}
	return username
}

func stringField(record resume.Record, keys ...string) (value string) {
	for _, key := range keys {
		if s, ok := record[key].(string); ok && s != "" {
			value = s
			return value
		}
	}
	return value
}
