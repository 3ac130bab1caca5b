package validation

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  error
	}{
		{name: "empty", value: "", want: ErrTitleRequired},
		{name: "whitespace only", value: "   \t ", want: ErrTitleRequired},
		{name: "too short", value: "ab", want: ErrTitleTooShort},
		{name: "too short after trim", value: "  ab  ", want: ErrTitleTooShort},
		{name: "minimum length", value: "Dev", want: nil},
		{name: "typical", value: "Senior Backend Engineer", want: nil},
		{name: "maximum length", value: strings.Repeat("a", 60), want: nil},
		{name: "maximum length with padding", value: "  " + strings.Repeat("a", 60) + "  ", want: nil},
		{name: "too long", value: strings.Repeat("a", 61), want: ErrTitleTooLong},
		{name: "multibyte counts runes", value: strings.Repeat("é", 60), want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateTitle(tt.value)
			if !errors.Is(got, tt.want) {
				t.Errorf("ValidateTitle(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestValidateTitleLengthRange(t *testing.T) {
	for n := 3; n <= 60; n++ {
		value := strings.Repeat("x", n)
		if err := ValidateTitle(value); err != nil {
			t.Errorf("Expected title of length %d to be valid, got %v", n, err)
		}
	}

	for n := 61; n <= 80; n++ {
		if err := ValidateTitle(strings.Repeat("x", n)); !errors.Is(err, ErrTitleTooLong) {
			t.Errorf("Expected too long error for length %d, got %v", n, err)
		}
	}
}

func TestValidateLocation(t *testing.T) {
	if err := ValidateLocation(""); err != nil {
		t.Errorf("Expected empty location to be valid, got %v", err)
	}
	if err := ValidateLocation(strings.Repeat("a", 50)); err != nil {
		t.Errorf("Expected 50 char location to be valid, got %v", err)
	}
	if err := ValidateLocation(strings.Repeat("a", 51)); !errors.Is(err, ErrLocationTooLong) {
		t.Errorf("Expected too long error, got %v", err)
	}
}

func TestValidateBio(t *testing.T) {
	if err := ValidateBio(""); err != nil {
		t.Errorf("Expected empty bio to be valid, got %v", err)
	}
	if err := ValidateBio(strings.Repeat("a", 500)); err != nil {
		t.Errorf("Expected 500 char bio to be valid, got %v", err)
	}
	if err := ValidateBio(strings.Repeat("a", 501)); !errors.Is(err, ErrBioTooLong) {
		t.Errorf("Expected too long error, got %v", err)
	}
}

func TestValidateGitHubURL(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"", true},
		{"   ", true},
		{"https://github.com/alice", true},
		{"http://github.com/alice/", true},
		{"https://www.github.com/alice_b-2", true},
		{"  https://github.com/alice  ", true},
		{"https://github.com/alice/repo", false},
		{"https://github.com/alice?tab=repos", false},
		{"https://github.com/", false},
		{"github.com/alice", false},
		{"https://gitlab.com/alice", false},
		{"ftp://github.com/alice", false},
	}

	for _, tt := range tests {
		err := ValidateGitHubURL(tt.value)
		if tt.valid && err != nil {
			t.Errorf("ValidateGitHubURL(%q) returned %v, want nil", tt.value, err)
		}
		if !tt.valid && !errors.Is(err, ErrInvalidGitHubURL) {
			t.Errorf("ValidateGitHubURL(%q) returned %v, want %v", tt.value, err, ErrInvalidGitHubURL)
		}
	}
}

func TestValidateLinkedInURL(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"", true},
		{"https://linkedin.com/in/alice", true},
		{"https://www.linkedin.com/in/alice-smith/", true},
		{"https://linkedin.com/alice", false},
		{"https://linkedin.com/in/alice/details", false},
		{"https://linkedin.com/company/acme", false},
		{"linkedin.com/in/alice", false},
	}

	for _, tt := range tests {
		err := ValidateLinkedInURL(tt.value)
		if tt.valid && err != nil {
			t.Errorf("ValidateLinkedInURL(%q) returned %v, want nil", tt.value, err)
		}
		if !tt.valid && !errors.Is(err, ErrInvalidLinkedInURL) {
			t.Errorf("ValidateLinkedInURL(%q) returned %v, want %v", tt.value, err, ErrInvalidLinkedInURL)
		}
	}
}

func TestValidateWebsiteURL(t *testing.T) {
	tests := []struct {
		value string
		want  error
	}{
		{"", nil},
		{"https://example.com", nil},
		{"http://example.com/blog?page=2", nil},
		{"ftp://example.com", ErrWebsiteScheme},
		{"mailto:me@example.com", ErrWebsiteScheme},
		{"example.com", ErrInvalidWebsiteURL},
		{"https://", ErrInvalidWebsiteURL},
		{"://missing-scheme", ErrInvalidWebsiteURL},
	}

	for _, tt := range tests {
		got := ValidateWebsiteURL(tt.value)
		if !errors.Is(got, tt.want) {
			t.Errorf("ValidateWebsiteURL(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
