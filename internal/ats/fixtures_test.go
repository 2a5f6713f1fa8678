package ats

import "github.com/jonathan/ats-scorer/internal/types"

// fullResume has every section populated; with role mid and no job description it scores 94.
func fullResume() *types.ResumeData {
	return &types.ResumeData{
		PersonalInfo: types.PersonalInfo{
			FullName: "Jane Doe",
			Email:    "jane.doe@example.com",
			Phone:    "(555) 123-4567",
			Location: "Austin, TX",
			Summary:  "Backend engineer with eight years of experience building payment platforms.",
		},
		Experience: []types.Experience{
			{
				Company:     "Acme Payments",
				Position:    "Senior Software Engineer",
				StartDate:   "2019-01",
				EndDate:     "2024-06",
				Description: "Developed the settlement platform, led a team of 5 and implemented automated reconciliation.",
				Achievements: []string{
					"Increased throughput by 40%",
					"Cut infrastructure spend by $20K per month",
				},
			},
		},
		Education: []types.Education{
			{Institution: "University of Texas", Degree: "BS", FieldOfStudy: "Computer Science"},
		},
		Skills: []types.Skill{
			{Name: "Go"}, {Name: "Python"}, {Name: "PostgreSQL"}, {Name: "Docker"},
			{Name: "Kubernetes"}, {Name: "AWS"}, {Name: "Terraform"}, {Name: "gRPC"},
		},
		Certifications: []types.Certification{
			{Name: "AWS Solutions Architect", Issuer: "Amazon", Date: "2022"},
		},
		Projects: []types.Project{
			{Name: "ledgerctl", Description: "CLI for ledger audits", Technologies: []string{"Go", "SQLite"}},
		},
	}
}
