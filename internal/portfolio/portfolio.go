package portfolio

import "fmt"

// Project represents a showcased piece of work
type Project struct {
	ID           string `json:"id" mapstructure:"id"`
	Title        string `json:"title" mapstructure:"title"`
	Role         string `json:"role" mapstructure:"role"`
	Description  string `json:"description" mapstructure:"description"`
	ImageURL     string `json:"image_url" mapstructure:"image_url"`
	CaseStudyURL string `json:"case_study_url" mapstructure:"case_study_url"`
	Color        string `json:"color" mapstructure:"color"`
}

// Tool is a design application shown in the toolbox grid
type Tool struct {
	Name  string `json:"name" mapstructure:"name"`
	Icon  string `json:"icon" mapstructure:"icon"`
	Color string `json:"color" mapstructure:"color"`
}

// SkillCategory groups skills under a colored heading badge.
// Skills are rendered in slice order.
type SkillCategory struct {
	Name   string   `json:"name" mapstructure:"name"`
	Color  string   `json:"color" mapstructure:"color"`
	Skills []string `json:"skills" mapstructure:"skills"`
}

// DuplicateKeys returns a description of every key that appears more than
// once within its list. Rendering never calls this; keys are expected to be
// unique and duplicates only surface as confusing markup.
func DuplicateKeys(projects []Project, tools []Tool, categories []SkillCategory) []string {
	var dups []string

	seen := make(map[string]bool)
	for _, p := range projects {
		if seen[p.ID] {
			dups = append(dups, fmt.Sprintf("project id %q", p.ID))
		}
		seen[p.ID] = true
	}

	seen = make(map[string]bool)
	for _, t := range tools {
		if seen[t.Name] {
			dups = append(dups, fmt.Sprintf("tool %q", t.Name))
		}
		seen[t.Name] = true
	}

	seen = make(map[string]bool)
	for _, c := range categories {
		if seen[c.Name] {
			dups = append(dups, fmt.Sprintf("skill category %q", c.Name))
		}
		seen[c.Name] = true

		skills := make(map[string]bool)
		for _, s := range c.Skills {
			if skills[s] {
				dups = append(dups, fmt.Sprintf("skill %q in category %q", s, c.Name))
			}
			skills[s] = true
		}
	}

	return dups
}
