package store

// SkillCategories are the accepted values for FindSkill.Category.
var SkillCategories = []string{"AI", "ML", "programming", "Tools", "Cloud", "Data_tools"}

// Skill is one named skill on the CV.
type Skill struct {
	SkillName     string `json:"skill_name"`
	SkillCategory string `json:"skill_category,omitempty"`
}

// FindSkill narrows the skill listing. Category is an exact match;
// rows are ordered alphabetically by skill name.
type FindSkill struct {
	CVID     string
	Category string
}

// IsValidSkillCategory reports whether category is one of the
// enumerated skill categories.
func IsValidSkillCategory(category string) bool {
	for _, c := range SkillCategories {
		if c == category {
			return true
		}
	}
	return false
}
