package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brawldash/club-sync/internal/domain"
)

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected domain.Tag
	}{
		{"literal hash", "#2QJ0VGRLC", "#2QJ0VGRLC"},
		{"percent escaped", "%232QJ0VGRLC", "#2QJ0VGRLC"},
		{"bare", "2qj0vgrlc", "#2QJ0VGRLC"},
		{"lowercase with hash", "#2qj0vgrlc", "#2QJ0VGRLC"},
		{"surrounding whitespace", "  #ABC  ", "#ABC"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.NormalizeTag(tt.input))
		})
	}
}

func TestTagAPIPath(t *testing.T) {
	tag := domain.NormalizeTag("#2QJ0VGRLC")
	assert.Equal(t, "%232QJ0VGRLC", tag.APIPath())
}

func TestClassifyRoleChange(t *testing.T) {
	assert.Equal(t, domain.RoleChangePromotion, domain.ClassifyRoleChange("member", "senior"))
	assert.Equal(t, domain.RoleChangePromotion, domain.ClassifyRoleChange("senior", "Vice President"))
	assert.Equal(t, domain.RoleChangeDemotion, domain.ClassifyRoleChange("president", "vicePresident"))
	assert.Equal(t, domain.RoleChangeNone, domain.ClassifyRoleChange("vice-president", "vicePresident"))
	assert.Equal(t, domain.RoleChangeNone, domain.ClassifyRoleChange("member", "member"))
	assert.Equal(t, domain.RoleChangeLateral, domain.ClassifyRoleChange("member", "elder"))
}

func TestClassifyActivity(t *testing.T) {
	assert.Equal(t, domain.ActivityActive, domain.ClassifyActivity(20))
	assert.Equal(t, domain.ActivityActive, domain.ClassifyActivity(-35))
	assert.Equal(t, domain.ActivityMinimal, domain.ClassifyActivity(5))
	assert.Equal(t, domain.ActivityMinimal, domain.ClassifyActivity(-19))
	assert.Equal(t, domain.ActivityInactive, domain.ClassifyActivity(0))
}

func TestRankLabelForScore(t *testing.T) {
	assert.Equal(t, "Bronze I", domain.RankLabelForScore(0))
	assert.Equal(t, "Bronze I", domain.RankLabelForScore(-10))
	assert.Equal(t, "Bronze III", domain.RankLabelForScore(600))
	assert.Equal(t, "Legendary III", domain.RankLabelForScore(4499))
	assert.Equal(t, "Masters I", domain.RankLabelForScore(4500))
	assert.Equal(t, "Pro", domain.RankLabelForScore(12000))
}
