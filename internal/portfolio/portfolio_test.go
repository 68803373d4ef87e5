package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	assert.Len(t, DefaultTags(), 3)
	assert.Len(t, DefaultProjects(), 6)
	assert.Len(t, DefaultTools(), 6)
	assert.Len(t, DefaultSkillCategories(), 5)

	assert.Empty(t, DuplicateKeys(DefaultProjects(), DefaultTools(), DefaultSkillCategories()))
}

func TestDefaultsAreFreshCopies(t *testing.T) {
	projects := DefaultProjects()
	projects[0].Title = "changed"
	assert.Equal(t, "ROOTX – Brand Identity", DefaultProjects()[0].Title)

	categories := DefaultSkillCategories()
	categories[0].Skills[0] = "changed"
	assert.Equal(t, "Wireframing", DefaultSkillCategories()[0].Skills[0])
}

func TestDuplicateKeys(t *testing.T) {
	tests := []struct {
		name       string
		projects   []Project
		tools      []Tool
		categories []SkillCategory
		want       []string
	}{
		{
			name: "no lists",
		},
		{
			name:     "duplicate project id",
			projects: []Project{{ID: "a"}, {ID: "b"}, {ID: "a"}},
			want:     []string{`project id "a"`},
		},
		{
			name:  "duplicate tool name",
			tools: []Tool{{Name: "Figma"}, {Name: "Figma"}},
			want:  []string{`tool "Figma"`},
		},
		{
			name: "duplicate category and skill",
			categories: []SkillCategory{
				{Name: "UI", Skills: []string{"A", "B", "A"}},
				{Name: "UI"},
			},
			want: []string{`skill "A" in category "UI"`, `skill category "UI"`},
		},
		{
			name: "same skill in different categories is fine",
			categories: []SkillCategory{
				{Name: "UI", Skills: []string{"Animation"}},
				{Name: "Motion", Skills: []string{"Animation"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DuplicateKeys(tt.projects, tt.tools, tt.categories)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.Equal(t, tt.want[i], got[i])
			}
		})
	}
}
