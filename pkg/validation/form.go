package validation

// Field names used as keys in the error map.
const (
	FieldTitle    = "title"
	FieldLocation = "location"
	FieldBio      = "bio"
	FieldGitHub   = "github"
	FieldLinkedIn = "linkedin"
	FieldWebsite  = "website"
)

// ProfileFieldSet holds the editable profile form fields.
type ProfileFieldSet struct {
	Title    string `json:"title"`
	Location string `json:"location"`
	Bio      string `json:"bio"`
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
}

// ErrorMap maps a field name to its error message. A missing key means the
// field is valid.
type ErrorMap map[string]string

// ValidateProfileForm runs every field validator and collects the failures.
// All fields are checked so the caller can show every error at once.
func ValidateProfileForm(fields ProfileFieldSet) (errs ErrorMap) {
	errs = make(ErrorMap)

	checks := []struct {
		field string
		err   error
	}{
		{FieldTitle, ValidateTitle(fields.Title)},
		{FieldLocation, ValidateLocation(fields.Location)},
		{FieldBio, ValidateBio(fields.Bio)},
		{FieldGitHub, ValidateGitHubURL(fields.GitHub)},
		{FieldLinkedIn, ValidateLinkedInURL(fields.LinkedIn)},
		{FieldWebsite, ValidateWebsiteURL(fields.Website)},
	}

	for _, check := range checks {
		if check.err != nil {
			errs[check.field] = check.err.Error()
		}
	}

	return errs
}

// Valid reports whether no field failed.
func (e ErrorMap) Valid() (valid bool) {
	valid = len(e) == 0
	return valid
}

// Fields returns the failing field names in form order.
func (e ErrorMap) Fields() (fields []string) {
	fields = make([]string, 0, len(e))
	for _, name := range []string{FieldTitle, FieldLocation, FieldBio, FieldGitHub, FieldLinkedIn, FieldWebsite} {
		if _, ok := e[name]; ok {
			fields = append(fields, name)
		}
	}
	return fields
}
