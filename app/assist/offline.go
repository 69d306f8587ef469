package assist

import (
	"context"
	"fmt"
	"strings"
	"time"

	"kmis/store"
	"kmis/types"

	"github.com/google/uuid"
)

const (
	strongOverlapThreshold = 3
	weakOverlapThreshold   = 1
)

// fallbackBullets describe typical programme findings and are used
// when no canned answer matches the question.
var fallbackBullets = []string{
	"Multiple reports document progress in programme implementation across the selected scope.",
	"Key achievements include improvements in governance systems, market access, and community participation.",
	"Challenges remain in enforcement capacity, cross-border coordination, and reaching remote communities.",
	"Climate finance and results-based payments are growing, creating new opportunities.",
}

// Matcher is the offline strategy: it resolves questions against a
// fixed library of prebuilt answers by keyword and scope overlap, with
// a generic scope-based synthesis as the last resort. Matching is
// deliberately coarse keyword overlap, not semantic search.
type Matcher struct {
	library []types.Answer
	docs    store.DocumentSource

	// Delay simulates analysis time before answering, so the chat
	// surface behaves the same with and without a configured gateway.
	Delay time.Duration

	now func() time.Time
}

func NewMatcher(library []types.Answer, docs store.DocumentSource) *Matcher {
	return &Matcher{
		library: library,
		docs:    docs,
		now:     time.Now,
	}
}

func (m *Matcher) Answer(ctx context.Context, prompt string, scope types.Scope) (types.Answer, error) {
	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return types.Answer{}, ctx.Err()
		}
	}

	// Tier 1: strong keyword overlap with a canned prompt wins outright.
	for _, entry := range m.library {
		if keywordOverlap(entry.Prompt, prompt) > strongOverlapThreshold {
			return m.cannedAnswer(entry), nil
		}
	}

	// Tier 2: shared country or theme plus weak keyword overlap.
	for _, entry := range m.library {
		scopeMatch := intersects(scope.Countries, entry.Scope.Countries) ||
			intersects(scope.Themes, entry.Scope.Themes)
		if scopeMatch && keywordOverlap(entry.Prompt, prompt) > weakOverlapThreshold {
			return m.cannedAnswer(entry), nil
		}
	}

	return m.synthesize(prompt, scope), nil
}

// cannedAnswer returns a library entry with its own scope and sources,
// dropping any citation whose document is no longer in the corpus.
func (m *Matcher) cannedAnswer(entry types.Answer) types.Answer {
	sources := make([]types.Source, 0, len(entry.Sources))
	for _, src := range entry.Sources {
		if _, ok := m.docs.Document(src.DocumentID); ok {
			sources = append(sources, src)
		}
	}
	entry.Sources = sources
	return entry
}

// synthesize builds a generic scope-based answer over up to four
// resolved documents.
func (m *Matcher) synthesize(prompt string, scope types.Scope) types.Answer {
	resolved := Resolve(scope, m.docs.Documents(), OfflineDocumentLimit)

	var sb strings.Builder
	sb.WriteString("Based on the available documents")
	if len(scope.Countries) > 0 {
		sb.WriteString(" for " + strings.Join(scope.Countries, ", "))
	}
	if len(scope.Themes) > 0 {
		sb.WriteString(" on " + strings.Join(scope.Themes, ", "))
	}
	sb.WriteString(", here is a summary of the relevant findings and evidence.")

	sources := make([]types.Source, 0, len(resolved))
	for _, d := range resolved {
		sources = append(sources, types.Source{
			DocumentID:     d.ID,
			Snippet:        snippet(d.ExtractedText),
			ReferenceLabel: fallbackReferenceLabel,
		})
	}

	return types.Answer{
		ID:         fmt.Sprintf("ai-fallback-%s", uuid.NewString()),
		CreatedAt:  m.now(),
		Prompt:     prompt,
		Scope:      scope,
		AnswerText: sb.String(),
		Bullets:    fallbackBullets,
		Sources:    sources,
	}
}
