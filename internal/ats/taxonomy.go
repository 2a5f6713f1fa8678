package ats

// TaxonomyEntry is a canonical keyword with its known spelling variants.
type TaxonomyEntry struct {
	Name     string
	Variants []string
}

//nolint:gochecknoglobals // curated keyword taxonomy, read-only after init
var (
	// technicalKeywords drives keyword suggestions, walked in order
	technicalKeywords = []TaxonomyEntry{
		{Name: "python", Variants: []string{"python", "py", "python3"}},
		{Name: "javascript", Variants: []string{"javascript", "js", "node.js", "nodejs", "node"}},
		{Name: "react", Variants: []string{"react", "reactjs", "react.js"}},
		{Name: "java", Variants: []string{"java", "jdk"}},
		{Name: "sql", Variants: []string{"sql", "mysql", "postgresql", "postgres"}},
		{Name: "aws", Variants: []string{"aws", "amazon web services"}},
		{Name: "docker", Variants: []string{"docker", "containerization"}},
		{Name: "kubernetes", Variants: []string{"kubernetes", "k8s"}},
	}

	actionVerbs = []string{
		"developed", "managed", "led", "implemented", "designed", "created",
		"improved", "increased", "reduced", "achieved", "delivered", "built",
		"launched", "optimized", "streamlined", "coordinated", "established",
	}
)

// TechnicalKeywords returns a copy of the curated technical keyword taxonomy.
func TechnicalKeywords() []TaxonomyEntry {
	return copyEntries(technicalKeywords)
}

// ActionVerbs returns a copy of the action verbs recognized in experience descriptions.
func ActionVerbs() []string {
	return append([]string(nil), actionVerbs...)
}

func copyEntries(entries []TaxonomyEntry) []TaxonomyEntry {
	out := make([]TaxonomyEntry, len(entries))
	for i, entry := range entries {
		out[i] = TaxonomyEntry{Name: entry.Name, Variants: append([]string(nil), entry.Variants...)}
	}
	return out
}
