package assist_test

import (
	"testing"

	"kmis/app/assist"
	"kmis/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doc(id string, status types.DocumentStatus, countries, themes, periods []string, project string) types.Document {
	return types.Document{
		ID:     id,
		Title:  "Title " + id,
		Status: status,
		Metadata: types.DocumentMetadata{
			Countries:        countries,
			Themes:           themes,
			ReportingPeriods: periods,
			Project:          project,
		},
		ExtractedText: "Body of " + id,
	}
}

func testCorpus() []types.Document {
	return []types.Document{
		doc("d1", types.StatusPublished, []string{"Ghana"}, []string{"Forest Governance"}, []string{"2024 Q4"}, "Core Programme"),
		doc("d2", types.StatusDraft, []string{"Ghana"}, []string{"Forest Governance"}, []string{"2024 Q4"}, "Core Programme"),
		doc("d3", types.StatusValidated, []string{"Brazil"}, []string{"Climate"}, []string{"2024 Q3"}, "Action Plan"),
		doc("d4", types.StatusPublished, []string{"Indonesia"}, []string{"Markets"}, []string{"2024 Q4"}, "Core Programme"),
		doc("d5", types.StatusPublished, []string{"Ghana", "Brazil"}, []string{"Markets", "Climate"}, []string{"2025 Q1"}, "Carbon Partnership"),
	}
}

func TestResolvePinnedFirst(t *testing.T) {
	scope := types.Scope{
		DocumentIDs: []string{"d4", "d2"},
		Countries:   []string{"Ghana"},
	}

	resolved := assist.Resolve(scope, testCorpus(), 8)
	require.GreaterOrEqual(t, len(resolved), 2)

	// Pinned documents lead in pin order, drafts included.
	assert.Equal(t, "d4", resolved[0].ID)
	assert.Equal(t, "d2", resolved[1].ID)
	for _, d := range resolved[2:] {
		assert.NotEqual(t, "d4", d.ID)
		assert.NotEqual(t, "d2", d.ID)
	}
}

func TestResolveBoundRespected(t *testing.T) {
	resolved := assist.Resolve(types.Scope{}, testCorpus(), 2)
	assert.Len(t, resolved, 2)

	resolved = assist.Resolve(types.Scope{DocumentIDs: []string{"d1", "d3", "d4"}}, testCorpus(), 2)
	require.Len(t, resolved, 2)
	assert.Equal(t, "d1", resolved[0].ID)
	assert.Equal(t, "d3", resolved[1].ID)
}

func TestResolveExcludesDrafts(t *testing.T) {
	resolved := assist.Resolve(types.Scope{Countries: []string{"Ghana"}}, testCorpus(), 8)
	for _, d := range resolved {
		assert.NotEqual(t, types.StatusDraft, d.Status, "draft %s must not resolve", d.ID)
	}
	assert.Equal(t, []string{"d1", "d5"}, ids(resolved))
}

func TestResolveAxisIntersection(t *testing.T) {
	// All non-empty axes must intersect.
	scope := types.Scope{Countries: []string{"Ghana"}, Themes: []string{"Climate"}}
	assert.Equal(t, []string{"d5"}, ids(assist.Resolve(scope, testCorpus(), 8)))

	// Project matches against the document's single project value.
	scope = types.Scope{Projects: []string{"Action Plan", "Carbon Partnership"}}
	assert.Equal(t, []string{"d3", "d5"}, ids(assist.Resolve(scope, testCorpus(), 8)))
}

func TestResolveUnknownPinnedIDSkipped(t *testing.T) {
	scope := types.Scope{DocumentIDs: []string{"missing", "d3"}}
	resolved := assist.Resolve(scope, testCorpus(), 8)
	require.NotEmpty(t, resolved)
	assert.Equal(t, "d3", resolved[0].ID)
}

func TestResolveEmptyCorpus(t *testing.T) {
	assert.Empty(t, assist.Resolve(types.Scope{}, nil, 8))
	assert.Empty(t, assist.Resolve(types.Scope{Countries: []string{"Ghana"}}, nil, 8))
}

func ids(docs []types.Document) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.ID)
	}
	return out
}
