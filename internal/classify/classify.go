// Package classify assigns a DocumentType to a normalized text blob.
//
// Scoring is two-tier: a rich keyword/pattern scoring pass, then a strict
// single-pattern fallback for documents whose keyword density is too low to
// clear the threshold. The two tiers must not be collapsed into one.
package classify

import (
	"strings"

	"taxdoc/internal/domain"
	"taxdoc/internal/textnorm"
)

const (
	keywordPoints = 1
	patternPoints = 2
	hintPoints    = 1

	// scoreThreshold gates the scored path; below it the fallback table is
	// consulted. Inherited constant, tunable rather than principled.
	scoreThreshold = 2

	// assumedMaxScore converts a raw score to a percentage. A realistic
	// maximum rather than a true one; tunable, kept for compatibility.
	assumedMaxScore = 10

	// fallbackConfidence is assigned when only the fallback marker matched.
	fallbackConfidence = 30
)

// Classify assigns a document type and confidence to text. filenameHint is
// optional; when non-empty it contributes one point to types whose name it
// contains. Classify is a pure function and never fails: unrecognized text
// yields Unknown with confidence 0.
func Classify(text, filenameHint string) domain.ClassificationResult {
	norm := textnorm.Normalize(text)
	lower := strings.ToLower(norm)
	hint := textnorm.StripSeparators(filenameHint)

	bestScore := 0
	bestType := domain.DocTypeUnknown
	for _, c := range candidates {
		score := 0
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				score += keywordPoints
			}
		}
		for _, p := range c.patterns {
			if p.MatchString(norm) {
				score += patternPoints
			}
		}
		if hint != "" && strings.Contains(hint, c.hintToken) {
			score += hintPoints
		}
		// Strictly greater: ties resolve to the first candidate in table
		// order.
		if score > bestScore {
			bestScore = score
			bestType = c.docType
		}
	}

	if bestScore >= scoreThreshold {
		return domain.ClassificationResult{
			Type:       bestType,
			Confidence: confidenceFromScore(bestScore),
		}
	}

	for _, f := range fallbacks {
		if f.pattern.MatchString(norm) {
			return domain.ClassificationResult{
				Type:       f.docType,
				Confidence: fallbackConfidence,
			}
		}
	}

	return domain.ClassificationResult{Type: domain.DocTypeUnknown, Confidence: 0}
}

func confidenceFromScore(score int) int {
	pct := score * 100 / assumedMaxScore
	if pct > 100 {
		return 100
	}
	return pct
}
