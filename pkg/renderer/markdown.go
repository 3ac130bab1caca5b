package renderer

import (
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/nikogura/portfolio-builder/pkg/resume"
	"github.com/pkg/errors"
)

// Layout holds the per-template listing limits.
type Layout struct {
	// MaxEntries caps experience, project and certificate listings.
	MaxEntries int
	// DescriptionLimit is the length in characters at which project
	// descriptions are cut.
	DescriptionLimit int
	// MaxSkillsPerCategory caps each skill group. Zero means no cap.
	MaxSkillsPerCategory int
}

//nolint:gochecknoglobals // Read-only lookup table
var layouts = map[string]Layout{
	TemplateClassic: {MaxEntries: 5, DescriptionLimit: 150},
	TemplateModern:  {MaxEntries: 4, DescriptionLimit: 120, MaxSkillsPerCategory: 5},
}

// LayoutFor returns the listing limits of a template.
func LayoutFor(templateName string) (layout Layout, ok bool) {
	layout, ok = layouts[templateName]
	return layout, ok
}

// SectionToggles selects which sections are rendered. A toggled-on section
// is still skipped when it has no content.
type SectionToggles struct {
	About        bool
	Skills       bool
	Experience   bool
	Projects     bool
	Certificates bool
}

// AllSections renders every section that has content.
func AllSections() (sections SectionToggles) {
	sections = SectionToggles{
		About:        true,
		Skills:       true,
		Experience:   true,
		Projects:     true,
		Certificates: true,
	}
	return sections
}

// view is the template input derived from ResumeData.
type view struct {
	resume.ResumeData

	Contact     []contactLine
	SkillGroups []resume.SkillGroup
	Experience  []resume.Achievement

	ShowAbout        bool
	ShowSkills       bool
	ShowExperience   bool
	ShowProjects     bool
	ShowCertificates bool
}

//nolint:gochecknoglobals // Parsed once, read-only
var templates = map[string]*template.Template{
	TemplateClassic: template.Must(template.New(TemplateClassic).Funcs(templateFuncs()).Parse(classicTemplate)),
	TemplateModern:  template.Must(template.New(TemplateModern).Funcs(templateFuncs()).Parse(modernTemplate)),
}

// Templates lists the available template names.
func Templates() (names []string) {
	names = []string{TemplateClassic, TemplateModern}
	return names
}

// RenderMarkdown renders resume data with the named template.
func RenderMarkdown(data resume.ResumeData, templateName string, sections SectionToggles) (markdown string, err error) {
	tmpl, ok := templates[templateName]
	if !ok {
		err = errors.Errorf("unknown template %q (available: %s)", templateName, strings.Join(Templates(), ", "))
		return markdown, err
	}

	v := buildView(data, layouts[templateName], sections)

	var sb strings.Builder
	err = tmpl.Execute(&sb, v)
	if err != nil {
		err = errors.Wrapf(err, "failed to render %s template", templateName)
		return markdown, err
	}

	markdown = sb.String()
	return markdown, err
}

func buildView(data resume.ResumeData, layout Layout, sections SectionToggles) (v view) {
	experience := limit(resume.ExperienceEntries(data.Achievements), layout.MaxEntries)

	projects := limit(data.Projects, layout.MaxEntries)
	data.Projects = make([]resume.Project, len(projects))
	for i, p := range projects {
		p.Description = truncate(p.Description, layout.DescriptionLimit)
		data.Projects[i] = p
	}
	data.Certificates = limit(data.Certificates, layout.MaxEntries)

	groups := resume.GroupSkills(data.Skills)
	if layout.MaxSkillsPerCategory > 0 {
		for i := range groups {
			groups[i].Skills = limit(groups[i].Skills, layout.MaxSkillsPerCategory)
		}
	}

	v = view{
		ResumeData:  data,
		Contact:     contactLines(data),
		SkillGroups: groups,
		Experience:  experience,

		ShowAbout:        sections.About && resume.HasSectionContent(data, resume.SectionAbout),
		ShowSkills:       sections.Skills && resume.HasSectionContent(data, resume.SectionSkills),
		ShowExperience:   sections.Experience && resume.HasSectionContent(data, resume.SectionExperience) && len(experience) > 0,
		ShowProjects:     sections.Projects && resume.HasSectionContent(data, resume.SectionProjects),
		ShowCertificates: sections.Certificates && resume.HasSectionContent(data, resume.SectionCertificates),
	}
	return v
}

type contactLine struct {
	Label string
	Value string
}

func contactLines(data resume.ResumeData) (lines []contactLine) {
	fields := []contactLine{
		{"Email", data.Email},
		{"Location", data.Location},
		{"GitHub", data.GitHub},
		{"LinkedIn", data.LinkedIn},
		{"Website", data.Website},
	}

	for _, f := range fields {
		if f.Value != "" {
			lines = append(lines, f)
		}
	}
	return lines
}

func limit[T any](items []T, maxItems int) (limited []T) {
	limited = items
	if len(limited) > maxItems {
		limited = limited[:maxItems]
	}
	return limited
}

func templateFuncs() (funcs template.FuncMap) {
	funcs = template.FuncMap{
		"esc":     escapeMarkdown,
		"escjoin": joinEscaped,
	}
	return funcs
}

// truncate shortens text to maxRunes characters, marking the cut.
func truncate(text string, maxRunes int) (result string) {
	if utf8.RuneCountInString(text) <= maxRunes {
		result = text
		return result
	}
	result = string([]rune(text)[:maxRunes]) + "..."
	return result
}

// markdownActive are the characters pandoc markdown gives a meaning to
// anywhere in a line: emphasis, code, links, raw HTML/TeX, math, super- and
// subscript, headings and table pipes.
const markdownActive = "\\`*_{}[]<>#|~^$"

// escapeMarkdown backslash-escapes record text so pandoc reads it as literal
// characters. Line-leading list markers are escaped too.
func escapeMarkdown(text string) (escaped string) {
	var sb strings.Builder
	sb.Grow(len(text))

	lineStart := true
	numbered := false
	for _, r := range text {
		switch {
		case strings.ContainsRune(markdownActive, r):
			sb.WriteByte('\\')
		case lineStart && strings.ContainsRune("-+=:", r):
			sb.WriteByte('\\')
		case numbered && (r == '.' || r == ')'):
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)

		switch {
		case r == '\n':
			lineStart = true
			numbered = false
		case lineStart && (r == ' ' || r == '\t'):
		case (lineStart || numbered) && r >= '0' && r <= '9':
			lineStart = false
			numbered = true
		default:
			lineStart = false
			numbered = false
		}
	}

	escaped = sb.String()
	return escaped
}

func joinEscaped(items []string, sep string) (joined string) {
	escaped := make([]string, len(items))
	for i, item := range items {
		escaped[i] = escapeMarkdown(item)
	}
	joined = strings.Join(escaped, sep)
	return joined
}
