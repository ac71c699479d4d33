package scorer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobscout/jobscout/internal/scorer"
)

// testVocabulary mirrors the default AI/ML keyword configuration.
var testVocabulary = []string{
	"machine learning", "deep learning", "neural network", "nlp",
	"computer vision", "artificial intelligence", "tensorflow", "pytorch",
	"data science", "llm", "gpt", "generative", "transformer", "bert",
	"reinforcement learning",
}

func TestScore_Deterministic(t *testing.T) {
	s := scorer.New(testVocabulary)

	title := "Senior ML Engineer"
	desc := "Build deep learning models with pytorch and tensorflow for NLP"

	rel1, conf1 := s.Score(title, desc)
	rel2, conf2 := s.Score(title, desc)

	assert.Equal(t, rel1, rel2, "relevance must be deterministic")
	assert.Equal(t, conf1, conf2, "confidence must be deterministic")
}

func TestScore_MLJobExample(t *testing.T) {
	s := scorer.New(testVocabulary)

	relevant, confidence := s.Score(
		"Senior ML Engineer",
		"Build deep learning models with pytorch and tensorflow for NLP",
	)

	require.True(t, relevant, "job matching deep learning, pytorch, tensorflow, nlp must be relevant")
	// 4 matches out of K keywords.
	expected := 4.0 / float64(len(testVocabulary)) * 100
	assert.InDelta(t, expected, confidence, 0.001)
}

func TestScore_EmptyText(t *testing.T) {
	s := scorer.New(testVocabulary)

	relevant, confidence := s.Score("", "")

	assert.False(t, relevant)
	assert.Zero(t, confidence)
}

func TestScore_Irrelevant(t *testing.T) {
	s := scorer.New(testVocabulary)

	relevant, confidence := s.Score("Plumber needed", "Fix the kitchen sink")

	assert.False(t, relevant)
	assert.Zero(t, confidence)
}

func TestScore_CaseInsensitive(t *testing.T) {
	s := scorer.New(testVocabulary)

	relUpper, confUpper := s.Score("MACHINE LEARNING expert", "PyTorch and TensorFlow")
	relLower, confLower := s.Score("machine learning expert", "pytorch and tensorflow")

	assert.Equal(t, relLower, relUpper)
	assert.Equal(t, confLower, confUpper)
}

func TestScore_MonotonicInMatches(t *testing.T) {
	s := scorer.New(testVocabulary)

	texts := []string{
		"nothing to see here",
		"pytorch",
		"pytorch tensorflow",
		"pytorch tensorflow nlp",
		"pytorch tensorflow nlp llm gpt",
	}

	prev := -1.0
	for _, text := range texts {
		_, conf := s.Score("", text)
		require.GreaterOrEqual(t, conf, prev, "confidence must be non-decreasing with match count (text=%q)", text)
		require.GreaterOrEqual(t, conf, 0.0)
		require.LessOrEqual(t, conf, 100.0)
		prev = conf
	}
}

func TestScore_SingleMatchBelowThreshold(t *testing.T) {
	s := scorer.New(testVocabulary)

	// One match out of 15 keywords: below both the match-count and the
	// confidence thresholds.
	relevant, confidence := s.Score("Data entry specialist", "Familiarity with pytorch a plus")

	assert.False(t, relevant)
	assert.Greater(t, confidence, 0.0)
}

func TestScore_SmallVocabularyConfidenceThreshold(t *testing.T) {
	// With a 5-term vocabulary a single match yields 20% confidence, which
	// meets the relevance threshold on its own.
	s := scorer.New([]string{"llm", "gpt", "rag", "agents", "prompt"})

	relevant, confidence := s.Score("LLM engineer", "")

	assert.True(t, relevant)
	assert.InDelta(t, 20.0, confidence, 0.001)
}

func TestScore_EmptyVocabulary(t *testing.T) {
	s := scorer.New(nil)

	relevant, confidence := s.Score("machine learning", "pytorch")

	assert.False(t, relevant)
	assert.Zero(t, confidence)
}

func TestNew_DropsBlankKeywords(t *testing.T) {
	s := scorer.New([]string{"llm", "", "  ", "gpt"})
	assert.Equal(t, 2, s.VocabularySize())
}
