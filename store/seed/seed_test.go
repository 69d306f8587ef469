package seed_test

import (
	"testing"

	"kmis/store/seed"
	"kmis/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCorpusCoversAllCitations(t *testing.T) {
	byID := make(map[string]types.Document)
	for _, d := range seed.Documents() {
		byID[d.ID] = d
	}

	for _, answer := range seed.Answers() {
		for _, src := range answer.Sources {
			doc, ok := byID[src.DocumentID]
			require.True(t, ok, "answer %s cites unknown document %s", answer.ID, src.DocumentID)
			assert.NotEqual(t, types.StatusDraft, doc.Status,
				"answer %s cites draft document %s", answer.ID, src.DocumentID)
		}
	}

	for _, e := range seed.EvidenceUpdates() {
		for _, id := range e.SourceDocumentIDs {
			_, ok := byID[id]
			assert.True(t, ok, "evidence %s cites unknown document %s", e.ID, id)
		}
	}
}

func TestSeedDocumentsTaggedWithinTaxonomy(t *testing.T) {
	tax := seed.Taxonomy()
	countries := toSet(tax.Countries)
	themes := toSet(tax.Themes)
	periods := toSet(tax.ReportingPeriods)

	for _, d := range seed.Documents() {
		for _, c := range d.Metadata.Countries {
			assert.True(t, countries[c], "document %s has unknown country %q", d.ID, c)
		}
		for _, th := range d.Metadata.Themes {
			assert.True(t, themes[th], "document %s has unknown theme %q", d.ID, th)
		}
		for _, p := range d.Metadata.ReportingPeriods {
			assert.True(t, periods[p], "document %s has unknown period %q", d.ID, p)
		}
	}
}

func TestSeedDefaultState(t *testing.T) {
	state := seed.DefaultState(types.AISettings{Model: "gpt-4o-mini"})()

	assert.NotEmpty(t, state.Documents)
	assert.NotEmpty(t, state.Users)
	assert.NotEmpty(t, state.Events)
	assert.Empty(t, state.ChatSessions, "fresh installs start with no conversations")
	assert.Equal(t, types.RoleViewer, state.Role)
	assert.Equal(t, "gpt-4o-mini", state.AISettings.Model)
}

func toSet(values []string) map[string]bool {
	out := make(map[string]bool, len(values))
	for _, v := range values {
		out[v] = true
	}
	return out
}
