package resume

// Placeholders used when the record carries no usable value.
const (
	DefaultName          = "Your Name"
	DefaultTitle         = "Professional Title"
	DefaultSkillCategory = "Technical Skills"
	DefaultProjectTitle  = "Untitled Project"
	DefaultAchievement   = "achievement"
)

// MapPortfolioToResume normalizes a portfolio record into ResumeData.
// It never fails: missing or malformed fields degrade to their defaults.
func MapPortfolioToResume(raw Record) (data ResumeData) {
	data = ResumeData{
		Name:     firstString(raw, DefaultName, "name", "username"),
		Title:    firstString(raw, DefaultTitle, "title", "tagline"),
		Email:    firstString(raw, "", "email"),
		Location: firstString(raw, "", "location"),
		GitHub:   firstString(raw, "", "github"),
		LinkedIn: firstString(raw, "", "linkedin"),
		Website:  firstString(raw, "", "website"),
		About:    firstString(raw, "", "about", "bio"),

		Skills:       mapSkills(raw["skills"]),
		Projects:     mapProjects(raw["projects"]),
		Achievements: mapAchievements(raw["achievements"]),
		Certificates: mapCertificates(raw["certificates"]),
	}
	return data
}

func mapSkills(value interface{}) (skills []Skill) {
	skills = []Skill{}

	list, ok := asList(value)
	if !ok {
		return skills
	}

	for _, entry := range list {
		skill := asRecord(entry)

		name := firstString(skill, "", "name")
		if name == "" {
			if isScalar(entry) && usable(entry) {
				name = stringify(entry)
			}
		}

		skills = append(skills, Skill{
			Name:     name,
			Category: firstString(skill, DefaultSkillCategory, "category", "type"),
		})
	}

	return skills
}

func mapProjects(value interface{}) (projects []Project) {
	projects = []Project{}

	list, ok := asList(value)
	if !ok {
		return projects
	}

	for _, entry := range list {
		project := asRecord(entry)
		projects = append(projects, Project{
			Title:       firstString(project, DefaultProjectTitle, "title", "name"),
			Description: firstString(project, "", "description"),
			Tech:        mapTech(project),
			Link:        firstString(project, "", "link", "github", "demo"),
		})
	}

	return projects
}

// mapTech accepts a sequence or a comma separated string under "tech", then
// under "technologies".
func mapTech(project Record) (tech []string) {
	for _, key := range []string{"tech", "technologies"} {
		value := project[key]

		if list, ok := asList(value); ok {
			tech = make([]string, 0, len(list))
			for _, item := range list {
				if !isScalar(item) {
					continue
				}
				tech = append(tech, stringify(item))
			}
			return tech
		}

		if s, ok := value.(string); ok && s != "" {
			tech = splitList(s)
			return tech
		}
	}

	tech = []string{}
	return tech
}

func mapAchievements(value interface{}) (achievements []Achievement) {
	achievements = []Achievement{}

	list, ok := asList(value)
	if !ok {
		return achievements
	}

	for _, entry := range list {
		achievement := asRecord(entry)
		date, _ := firstScalar(achievement, "date", "year")
		achievements = append(achievements, Achievement{
			Title:       firstString(achievement, "", "title", "name"),
			Issuer:      firstString(achievement, "", "issuer", "organization", "company"),
			Date:        FormatDate(date),
			Description: firstString(achievement, "", "description"),
			Type:        firstString(achievement, DefaultAchievement, "type"),
		})
	}

	return achievements
}

func mapCertificates(value interface{}) (certificates []Certificate) {
	certificates = []Certificate{}

	list, ok := asList(value)
	if !ok {
		return certificates
	}

	for _, entry := range list {
		cert := asRecord(entry)
		date, _ := firstScalar(cert, "date", "year")
		certificates = append(certificates, Certificate{
			Title:        firstString(cert, "", "title", "name"),
			Issuer:       firstString(cert, "", "issuer", "organization"),
			Date:         FormatDate(date),
			CredentialID: firstString(cert, "", "credentialId", "id"),
		})
	}

	return certificates
}
