// Package types provides type definitions for structured data used throughout the ATS scoring system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeData is the structured resume consumed by the scoring engine.
// Missing sections and missing fields are valid and decode to zero values.
type ResumeData struct {
	PersonalInfo   PersonalInfo    `json:"personal_info"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         []Skill         `json:"skills"`
	Certifications []Certification `json:"certifications"`
	Projects       []Project       `json:"projects"`
}

// PersonalInfo holds contact details and the professional summary.
type PersonalInfo struct {
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

// Experience is a single work history entry.
type Experience struct {
	Company      string   `json:"company,omitempty"`
	Position     string   `json:"position,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// IsComplete reports whether company, position, start date and description are all present.
func (e Experience) IsComplete() bool {
	return e.Company != "" && e.Position != "" && e.StartDate != "" && e.Description != ""
}

// Education is a single education entry.
type Education struct {
	Institution  string `json:"institution,omitempty"`
	Degree       string `json:"degree,omitempty"`
	FieldOfStudy string `json:"field_of_study,omitempty"`
}

// IsComplete reports whether institution, degree and field of study are all present.
func (e Education) IsComplete() bool {
	return e.Institution != "" && e.Degree != "" && e.FieldOfStudy != ""
}

// Skill is a named skill with an optional proficiency level.
type Skill struct {
	Name  string `json:"name,omitempty"`
	Level string `json:"level,omitempty"`
}

// Certification is a professional certification.
type Certification struct {
	Name   string `json:"name,omitempty"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

// Project is a portfolio project.
type Project struct {
	Name         string   `json:"name,omitempty"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}
