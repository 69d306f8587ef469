// Package assist implements the retrieval and answer assembly behind
// the AI Q&A surface: scope-filtered document resolution, an offline
// canned-answer matcher, and an online grounded gateway client.
package assist

import (
	"context"
	"strings"
	"unicode/utf8"

	"kmis/store"
	"kmis/types"
)

// Answerer produces a grounded answer for a free-text prompt.
type Answerer interface {
	Answer(ctx context.Context, prompt string, scope types.Scope) (types.Answer, error)
}

// Select picks the strategy for the current settings: the gateway
// client when an API key is configured, the offline matcher otherwise.
// Absence of a credential is a routing decision, not an error.
func Select(settings types.AISettings, docs store.DocumentSource, library []types.Answer) Answerer {
	if settings.Configured() {
		return NewGroundedClient(settings, docs)
	}
	return NewMatcher(library, docs)
}

const (
	snippetLength = 120
	// fallbackReferenceLabel marks synthesized citations that have no
	// real locator inside the source document.
	fallbackReferenceLabel = "Section 1, p. 5"
)

// snippet returns the leading excerpt of a document body used for
// synthesized citations.
func snippet(text string) string {
	if utf8.RuneCountInString(text) <= snippetLength {
		return text
	}
	runes := []rune(text)
	return string(runes[:snippetLength]) + "..."
}

// keywordOverlap tokenizes the canonical prompt on whitespace, keeps
// tokens longer than 3 characters, and counts how many appear as
// substrings of the lowercased input prompt.
func keywordOverlap(canonical, input string) int {
	lowerInput := strings.ToLower(input)
	count := 0
	for _, token := range strings.Fields(strings.ToLower(canonical)) {
		if len(token) > 3 && strings.Contains(lowerInput, token) {
			count++
		}
	}
	return count
}
