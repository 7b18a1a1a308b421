package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidSkillCategory(t *testing.T) {
	for _, category := range SkillCategories {
		assert.True(t, IsValidSkillCategory(category))
	}

	assert.False(t, IsValidSkillCategory("ml"), "matching is case sensitive")
	assert.False(t, IsValidSkillCategory("Databases"))
	assert.False(t, IsValidSkillCategory(""))
}
