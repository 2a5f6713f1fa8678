package ats

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractKeywords_Empty(t *testing.T) {
	keywords := ExtractKeywords("")
	require.NotNil(t, keywords)
	assert.Empty(t, keywords)
}

func TestExtractKeywords_FirstAppearanceOrder(t *testing.T) {
	jd := "We are looking for a Senior Python developer with Kubernetes and AWS experience. " +
		"The developer will work with Python daily."

	keywords := ExtractKeywords(jd)

	assert.Equal(t, []string{
		"looking", "senior", "python", "developer", "kubernetes", "experience", "work", "daily",
	}, keywords)
}

func TestExtractKeywords_DropsShortTokensAndStopWords(t *testing.T) {
	assert.Empty(t, ExtractKeywords("the and for with this that from have will your"))
	assert.Empty(t, ExtractKeywords("Go SQL AWS C++ k8s"))
}

func TestExtractKeywords_CapsAtTwenty(t *testing.T) {
	words := make([]string, 0, 30)
	for i := 1; i <= 30; i++ {
		words = append(words, fmt.Sprintf("term%02d", i))
	}

	keywords := ExtractKeywords(strings.Join(words, " "))

	require.Len(t, keywords, maxJobKeywords)
	assert.Equal(t, "term01", keywords[0])
	assert.Equal(t, "term20", keywords[19])
}

func TestExtractKeywords_Deterministic(t *testing.T) {
	jd := "Distributed systems engineer: Kafka, Postgres, Terraform, observability, Kafka again"
	assert.Equal(t, ExtractKeywords(jd), ExtractKeywords(jd))
}
