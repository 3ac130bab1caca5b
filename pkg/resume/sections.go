package resume

// Section names understood by HasSectionContent.
const (
	SectionAbout        = "about"
	SectionSkills       = "skills"
	SectionProjects     = "projects"
	SectionExperience   = "experience"
	SectionCertificates = "certificates"
)

// OtherSkillCategory groups skills that carry no category.
const OtherSkillCategory = "Other"

// HasSectionContent reports whether a section has anything to render.
// Unknown section names report false.
func HasSectionContent(data ResumeData, section string) (has bool) {
	switch section {
	case SectionAbout:
		has = data.About != ""
	case SectionSkills:
		has = len(data.Skills) > 0
	case SectionProjects:
		has = len(data.Projects) > 0
	case SectionExperience:
		has = len(data.Achievements) > 0
	case SectionCertificates:
		has = len(data.Certificates) > 0
	}
	return has
}

// GroupSkills groups skill names by category, keeping categories in the
// order they first appear.
func GroupSkills(skills []Skill) (groups []SkillGroup) {
	groups = []SkillGroup{}
	index := make(map[string]int)

	for _, skill := range skills {
		category := skill.Category
		if category == "" {
			category = OtherSkillCategory
		}

		i, seen := index[category]
		if !seen {
			i = len(groups)
			index[category] = i
			groups = append(groups, SkillGroup{Category: category, Skills: []string{}})
		}
		groups[i].Skills = append(groups[i].Skills, skill.Name)
	}

	return groups
}

// ExperienceEntries returns the work and internship achievements.
func ExperienceEntries(achievements []Achievement) (entries []Achievement) {
	entries = []Achievement{}
	for _, a := range achievements {
		if a.Type == "work" || a.Type == "internship" {
			entries = append(entries, a)
		}
	}
	return entries
}
