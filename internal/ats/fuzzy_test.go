package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuzzyMatch(t *testing.T) {
	tests := []struct {
		text    string
		keyword string
		want    bool
	}{
		{"React.js", "react", true},
		{"NodeJS", "node", true},
		{"Python3", "python", true},
		{"  KUBERNETES ", "kubernetes", true},
		{"kubernets", "kubernetes", true},
		{"Java", "JavaScript", false},
		{"Go", "Rust", false},
	}

	for _, tt := range tests {
		t.Run(tt.text+"/"+tt.keyword, func(t *testing.T) {
			assert.Equal(t, tt.want, FuzzyMatch(tt.text, tt.keyword))
		})
	}
}

func TestFuzzyMatchThreshold_LowerThresholdAcceptsLooserMatches(t *testing.T) {
	assert.False(t, FuzzyMatchThreshold("java", "javascript", DefaultFuzzyThreshold))
	assert.True(t, FuzzyMatchThreshold("java", "javascript", 0.5))
}

func TestSimilarityRatio(t *testing.T) {
	assert.Equal(t, 1.0, SimilarityRatio("docker", "docker"))
	assert.Equal(t, 1.0, SimilarityRatio("", ""))
	assert.Equal(t, 0.0, SimilarityRatio("abc", "xyz"))
	assert.InDelta(t, 8.0/14.0, SimilarityRatio("java", "javascript"), 1e-9)
}

func TestSimilarityRatio_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"kubernetes", "kubernets"},
		{"postgresql", "postgres"},
		{"abcd", "bcda"},
		{"résumé", "resume"},
	}

	for _, p := range pairs {
		assert.Equal(t, SimilarityRatio(p[0], p[1]), SimilarityRatio(p[1], p[0]), "%q vs %q", p[0], p[1])
	}
}
