package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// fullResumeJSON scores 94 (A) for role mid with no job description.
const fullResumeJSON = `{
  "personal_info": {
    "full_name": "Jane Doe",
    "email": "jane.doe@example.com",
    "phone": "(555) 123-4567",
    "location": "Austin, TX",
    "summary": "Backend engineer with eight years of experience building payment platforms."
  },
  "experience": [{
    "company": "Acme Payments",
    "position": "Senior Software Engineer",
    "start_date": "2019-01",
    "end_date": "2024-06",
    "description": "Developed the settlement platform, led a team of 5 and implemented automated reconciliation.",
    "achievements": ["Increased throughput by 40%", "Cut infrastructure spend by $20K per month"]
  }],
  "education": [{"institution": "University of Texas", "degree": "BS", "field_of_study": "Computer Science"}],
  "skills": [
    {"name": "Go"}, {"name": "Python"}, {"name": "PostgreSQL"}, {"name": "Docker"},
    {"name": "Kubernetes"}, {"name": "AWS"}, {"name": "Terraform"}, {"name": "gRPC"}
  ],
  "certifications": [{"name": "AWS Solutions Architect", "issuer": "Amazon", "date": "2022"}],
  "projects": [{"name": "ledgerctl", "description": "CLI for ledger audits", "technologies": ["Go", "SQLite"]}]
}`

// contactOnlyJSON has only personal info: 20 for entry, 15 for mid, 10 for senior.
const contactOnlyJSON = `{
  "personal_info": {
    "full_name": "Jane Doe",
    "email": "jane.doe@example.com",
    "phone": "(555) 123-4567",
    "location": "Austin, TX",
    "summary": "Backend engineer with eight years of experience building payment platforms."
  }
}`

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// executeCommand runs the root command in-process and returns what it wrote to stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	for _, name := range []string{"ATS_REDIS_URL", "ATS_ROLE_LEVEL", "ATS_CACHE_TTL", "ATS_ENHANCER_TIMEOUT"} {
		t.Setenv(name, "")
	}
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores every flag to its default so package-level flag variables do not leak between tests.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}
