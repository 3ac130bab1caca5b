package resume

// Record is a loosely shaped portfolio record as decoded from JSON or YAML.
// Keys vary between upstream producers; the mapper resolves the synonyms.
type Record map[string]interface{}

// ResumeData is the canonical record handed to the templates. Every slice is
// non-nil and every string is set, so templates need no nil checks.
type ResumeData struct {
	Name         string        `json:"name"`
	Title        string        `json:"title"`
	Email        string        `json:"email"`
	Location     string        `json:"location"`
	GitHub       string        `json:"github"`
	LinkedIn     string        `json:"linkedin"`
	Website      string        `json:"website"`
	About        string        `json:"about"`
	Skills       []Skill       `json:"skills"`
	Projects     []Project     `json:"projects"`
	Achievements []Achievement `json:"achievements"`
	Certificates []Certificate `json:"certificates"`
}

// Skill is a named skill and the category it is listed under.
type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Project is a portfolio project.
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
	Link        string   `json:"link"`
}

// Achievement covers awards, work and internship entries. Type distinguishes them.
type Achievement struct {
	Title       string `json:"title"`
	Issuer      string `json:"issuer"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// Certificate is a professional certification.
type Certificate struct {
	Title        string `json:"title"`
	Issuer       string `json:"issuer"`
	Date         string `json:"date"`
	CredentialID string `json:"credentialId"`
}

// SkillGroup is a category with the names of its skills, in input order.
type SkillGroup struct {
	Category string
	Skills   []string
}
