// Package scorer classifies listing text against a configured keyword
// vocabulary.
package scorer

import (
	"strings"
)

// Relevance thresholds: a listing is relevant when it matches at least
// minMatches keywords or reaches minConfidence percent.
const (
	minMatches    = 2
	minConfidence = 20.0
	maxConfidence = 100.0
)

// Scorer scores text against a fixed keyword vocabulary. The vocabulary is
// injected at construction; the scoring algorithm never changes with it.
type Scorer struct {
	keywords []string
}

// New creates a Scorer for the given vocabulary. Keywords are matched
// case-insensitively as substrings; empty entries are dropped.
func New(keywords []string) *Scorer {
	vocab := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			vocab = append(vocab, kw)
		}
	}
	return &Scorer{keywords: vocab}
}

// Score reports whether the combined title and description text is relevant,
// and a confidence percentage in [0,100]. It is deterministic and side-effect
// free: confidence = 100 * matches / len(vocabulary), relevant when at least
// two keywords match or confidence reaches 20%.
func (s *Scorer) Score(title, description string) (bool, float64) {
	if len(s.keywords) == 0 {
		return false, 0
	}

	combined := strings.ToLower(title + " " + description)

	matches := 0
	for _, kw := range s.keywords {
		if strings.Contains(combined, kw) {
			matches++
		}
	}

	confidence := float64(matches) / float64(len(s.keywords)) * maxConfidence
	relevant := matches >= minMatches || confidence >= minConfidence

	return relevant, confidence
}

// VocabularySize returns the number of keywords in the vocabulary.
func (s *Scorer) VocabularySize() int {
	return len(s.keywords)
}
