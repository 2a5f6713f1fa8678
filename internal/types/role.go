package types

import "strings"

// RoleLevel selects the weight profile used to aggregate section scores.
type RoleLevel string

// Supported role levels
const (
	RoleEntry  RoleLevel = "entry"
	RoleMid    RoleLevel = "mid"
	RoleSenior RoleLevel = "senior"
)

// DefaultRoleLevel is used when no role level is given or the given one is unknown.
const DefaultRoleLevel = RoleMid

// Section names, in scoring and feedback order.
const (
	SectionPersonalInfo   = "personal_info"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionCertifications = "certifications"
	SectionProjects       = "projects"
)

// Sections lists every scored section in a fixed order.
//
//nolint:gochecknoglobals // fixed section order
var Sections = []string{
	SectionPersonalInfo,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionCertifications,
	SectionProjects,
}

// WeightProfile maps a section name to its fractional weight. Weights sum to 1.0.
type WeightProfile map[string]float64

//nolint:gochecknoglobals // scoring configuration constants
var roleWeights = map[RoleLevel]WeightProfile{
	RoleEntry: {
		SectionPersonalInfo:   0.20,
		SectionExperience:     0.25,
		SectionEducation:      0.25,
		SectionSkills:         0.20,
		SectionCertifications: 0.05,
		SectionProjects:       0.05,
	},
	RoleMid: {
		SectionPersonalInfo:   0.15,
		SectionExperience:     0.35,
		SectionEducation:      0.15,
		SectionSkills:         0.25,
		SectionCertifications: 0.05,
		SectionProjects:       0.05,
	},
	RoleSenior: {
		SectionPersonalInfo:   0.10,
		SectionExperience:     0.45,
		SectionEducation:      0.10,
		SectionSkills:         0.25,
		SectionCertifications: 0.05,
		SectionProjects:       0.05,
	},
}

// ParseRoleLevel converts user input into a RoleLevel, falling back to mid for anything unrecognized.
func ParseRoleLevel(s string) RoleLevel {
	role := RoleLevel(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := roleWeights[role]; ok {
		return role
	}
	return DefaultRoleLevel
}

// IsKnown reports whether r names one of the supported role levels.
func (r RoleLevel) IsKnown() bool {
	_, ok := roleWeights[r]
	return ok
}

// WeightsFor returns a copy of the weight profile for role, using mid weights for unknown roles.
func WeightsFor(role RoleLevel) WeightProfile {
	profile, ok := roleWeights[role]
	if !ok {
		profile = roleWeights[DefaultRoleLevel]
	}
	out := make(WeightProfile, len(profile))
	for section, weight := range profile {
		out[section] = weight
	}
	return out
}

// RoleLevels returns the supported role levels in ascending seniority.
func RoleLevels() []RoleLevel {
	return []RoleLevel{RoleEntry, RoleMid, RoleSenior}
}
