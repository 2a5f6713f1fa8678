package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightsFor_SumToOne(t *testing.T) {
	for _, role := range RoleLevels() {
		t.Run(string(role), func(t *testing.T) {
			total := 0.0
			for _, section := range Sections {
				total += WeightsFor(role)[section]
			}
			assert.InDelta(t, 1.0, total, 1e-9)
		})
	}
}

func TestWeightsFor_ReferenceValues(t *testing.T) {
	tests := []struct {
		role     RoleLevel
		expected map[string]float64
	}{
		{RoleEntry, map[string]float64{"personal_info": 0.20, "experience": 0.25, "education": 0.25, "skills": 0.20, "certifications": 0.05, "projects": 0.05}},
		{RoleMid, map[string]float64{"personal_info": 0.15, "experience": 0.35, "education": 0.15, "skills": 0.25, "certifications": 0.05, "projects": 0.05}},
		{RoleSenior, map[string]float64{"personal_info": 0.10, "experience": 0.45, "education": 0.10, "skills": 0.25, "certifications": 0.05, "projects": 0.05}},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, WeightProfile(tt.expected), WeightsFor(tt.role))
		})
	}
}

func TestWeightsFor_UnknownRoleUsesMid(t *testing.T) {
	assert.Equal(t, WeightsFor(RoleMid), WeightsFor(RoleLevel("principal")))
	assert.Equal(t, WeightsFor(RoleMid), WeightsFor(""))
}

func TestWeightsFor_ReturnsCopy(t *testing.T) {
	weights := WeightsFor(RoleSenior)
	weights[SectionExperience] = 0

	assert.Equal(t, 0.45, WeightsFor(RoleSenior)[SectionExperience])
}

func TestParseRoleLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected RoleLevel
	}{
		{"entry", RoleEntry},
		{"  Senior ", RoleSenior},
		{"MID", RoleMid},
		{"", RoleMid},
		{"staff", RoleMid},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseRoleLevel(tt.input))
		})
	}
}

func TestRoleLevel_IsKnown(t *testing.T) {
	assert.True(t, RoleEntry.IsKnown())
	assert.False(t, RoleLevel("lead").IsKnown())
}
