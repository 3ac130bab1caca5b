package validation

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const (
	// TitleMinLength is the minimum trimmed length of a professional title.
	TitleMinLength = 3
	// TitleMaxLength is the maximum trimmed length of a professional title.
	TitleMaxLength = 60
	// LocationMaxLength is the maximum length of the location field.
	LocationMaxLength = 50
	// BioMaxLength is the maximum length of the about me field.
	BioMaxLength = 500
)

//nolint:gochecknoglobals,stylecheck // Validation messages are shown to the user as-is
var (
	ErrTitleRequired      = errors.New("Professional title is required")
	ErrTitleTooShort      = errors.New("Professional title must be at least 3 characters")
	ErrTitleTooLong       = errors.New("Professional title must not exceed 60 characters")
	ErrLocationTooLong    = errors.New("Location must not exceed 50 characters")
	ErrBioTooLong         = errors.New("About me must not exceed 500 characters")
	ErrInvalidGitHubURL   = errors.New("Please enter a valid GitHub profile URL (e.g., https://github.com/username)")
	ErrInvalidLinkedInURL = errors.New("Please enter a valid LinkedIn profile URL (e.g., https://linkedin.com/in/username)")
	ErrWebsiteScheme      = errors.New("Website URL must start with http:// or https://")
	ErrInvalidWebsiteURL  = errors.New("Please enter a valid website URL (e.g., https://yourwebsite.com)")
)

//nolint:gochecknoglobals // Compiled once, read-only
var (
	githubProfilePattern   = regexp.MustCompile(`^https?://(www\.)?github\.com/[a-zA-Z0-9_-]+/?$`)
	linkedinProfilePattern = regexp.MustCompile(`^https?://(www\.)?linkedin\.com/in/[a-zA-Z0-9_-]+/?$`)
)

// ValidateTitle checks the professional title. It is the only required field.
func ValidateTitle(value string) (err error) {
	length := utf8.RuneCountInString(strings.TrimSpace(value))

	switch {
	case length == 0:
		err = ErrTitleRequired
	case length < TitleMinLength:
		err = ErrTitleTooShort
	case length > TitleMaxLength:
		err = ErrTitleTooLong
	}

	return err
}

// ValidateLocation checks the optional location field.
func ValidateLocation(value string) (err error) {
	if utf8.RuneCountInString(value) > LocationMaxLength {
		err = ErrLocationTooLong
	}
	return err
}

// ValidateBio checks the optional about me field.
func ValidateBio(value string) (err error) {
	if utf8.RuneCountInString(value) > BioMaxLength {
		err = ErrBioTooLong
	}
	return err
}

// ValidateGitHubURL accepts an empty value or a GitHub profile URL.
// Repository paths, query strings and fragments are rejected.
func ValidateGitHubURL(value string) (err error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return err
	}

	if !githubProfilePattern.MatchString(trimmed) {
		err = ErrInvalidGitHubURL
	}
	return err
}

// ValidateLinkedInURL accepts an empty value or a linkedin.com/in/ profile URL.
func ValidateLinkedInURL(value string) (err error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return err
	}

	if !linkedinProfilePattern.MatchString(trimmed) {
		err = ErrInvalidLinkedInURL
	}
	return err
}

// ValidateWebsiteURL accepts an empty value or any absolute URL whose scheme
// starts with "http". Unlike the GitHub and LinkedIn checks this is a generic
// parse, so paths and query strings are allowed.
func ValidateWebsiteURL(value string) (err error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return err
	}

	parsed, parseErr := url.Parse(trimmed)
	if parseErr != nil || parsed.Scheme == "" || (parsed.Opaque == "" && parsed.Host == "" && parsed.Path == "") {
		err = ErrInvalidWebsiteURL
		return err
	}

	if !strings.HasPrefix(strings.ToLower(parsed.Scheme), "http") {
		err = ErrWebsiteScheme
	}
	return err
}
