package renderer

// Template names accepted by RenderMarkdown.
const (
	TemplateClassic = "classic"
	TemplateModern  = "modern"
)

const classicTemplate = `# {{ esc .Name }}

**{{ esc .Title }}**
{{ if .Contact }}
{{ range $i, $c := .Contact }}{{ if $i }} | {{ end }}{{ $c.Label }}: {{ esc $c.Value }}{{ end }}
{{ end }}
{{- if .ShowAbout }}
## Professional Summary

{{ esc .About }}
{{ end }}
{{- if .ShowSkills }}
## Skills
{{ range .SkillGroups }}
- **{{ esc .Category }}:** {{ escjoin .Skills ", " }}
{{- end }}
{{ end }}
{{- if .ShowExperience }}
## Experience
{{ range .Experience }}
### {{ esc .Title }}{{ if .Date }} ({{ esc .Date }}){{ end }}
{{ if .Issuer }}
*{{ esc .Issuer }}*
{{ end }}
{{- if .Description }}
- {{ esc .Description }}
{{ end }}
{{- end }}
{{- end }}
{{- if .ShowProjects }}
## Projects
{{ range .Projects }}
### {{ esc .Title }}
{{ if .Description }}
{{ esc .Description }}
{{ end }}
{{- if .Tech }}
Technologies: {{ escjoin .Tech ", " }}
{{ end }}
{{- end }}
{{- end }}
{{- if .ShowCertificates }}
## Certifications
{{ range .Certificates }}
### {{ esc .Title }}{{ if .Date }} ({{ esc .Date }}){{ end }}
{{ if .Issuer }}
*{{ esc .Issuer }}*
{{ end }}
{{- if .CredentialID }}
Credential ID: {{ esc .CredentialID }}
{{ end }}
{{- end }}
{{- end }}`

const modernTemplate = `# {{ esc .Name }}

*{{ esc .Title }}*
{{ if .Contact }}
## Contact
{{ range .Contact }}
- {{ .Label }}: {{ esc .Value }}
{{- end }}
{{ end }}
{{- if .ShowSkills }}
## Skills
{{ range .SkillGroups }}
**{{ esc .Category }}**

{{ escjoin .Skills " · " }}
{{ end }}
{{- end }}
{{- if .ShowAbout }}
## Professional Summary

{{ esc .About }}
{{ end }}
{{- if .ShowExperience }}
## Experience
{{ range .Experience }}
**{{ esc .Title }}**{{ if .Issuer }} | {{ esc .Issuer }}{{ end }}{{ if .Date }} | {{ esc .Date }}{{ end }}
{{ if .Description }}
{{ esc .Description }}
{{ end }}
{{- end }}
{{- end }}
{{- if .ShowProjects }}
## Projects
{{ range .Projects }}
**{{ esc .Title }}**{{ if .Link }} ({{ esc .Link }}){{ end }}
{{ if .Description }}
{{ esc .Description }}
{{ end }}
{{- if .Tech }}
*{{ escjoin .Tech ", " }}*
{{ end }}
{{- end }}
{{- end }}
{{- if .ShowCertificates }}
## Certifications
{{ range .Certificates }}
**{{ esc .Title }}**{{ if .Issuer }} | {{ esc .Issuer }}{{ end }}{{ if .Date }} | {{ esc .Date }}{{ end }}
{{ if .CredentialID }}
Credential ID: {{ esc .CredentialID }}
{{ end }}
{{- end }}
{{- end }}`
