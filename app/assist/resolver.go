package assist

import (
	"kmis/types"
)

const (
	// OnlineDocumentLimit bounds grounding for the gateway call.
	OnlineDocumentLimit = 8
	// OfflineDocumentLimit bounds the offline fallback synthesis.
	OfflineDocumentLimit = 4
)

// Resolve turns a scope into an ordered, bounded candidate document
// list. Pinned documents come first in pin order regardless of status.
// Remaining capacity is filled in corpus order with non-draft documents
// matching every non-empty scope axis.
func Resolve(scope types.Scope, docs []types.Document, maxDocuments int) []types.Document {
	if maxDocuments <= 0 {
		return nil
	}

	byID := make(map[string]types.Document, len(docs))
	for _, d := range docs {
		byID[d.ID] = d
	}

	resolved := make([]types.Document, 0, maxDocuments)
	pinned := make(map[string]struct{}, len(scope.DocumentIDs))
	for _, id := range scope.DocumentIDs {
		if len(resolved) >= maxDocuments {
			return resolved
		}
		if _, seen := pinned[id]; seen {
			continue
		}
		pinned[id] = struct{}{}
		if d, ok := byID[id]; ok {
			resolved = append(resolved, d)
		}
	}

	for _, d := range docs {
		if len(resolved) >= maxDocuments {
			break
		}
		if _, isPinned := pinned[d.ID]; isPinned {
			continue
		}
		if d.Status == types.StatusDraft {
			continue
		}
		if !matchesScope(d, scope) {
			continue
		}
		resolved = append(resolved, d)
	}
	return resolved
}

func matchesScope(d types.Document, scope types.Scope) bool {
	if len(scope.Countries) > 0 && !intersects(d.Metadata.Countries, scope.Countries) {
		return false
	}
	if len(scope.Themes) > 0 && !intersects(d.Metadata.Themes, scope.Themes) {
		return false
	}
	if len(scope.ReportingPeriods) > 0 && !intersects(d.Metadata.ReportingPeriods, scope.ReportingPeriods) {
		return false
	}
	if len(scope.Projects) > 0 && !contains(scope.Projects, d.Metadata.Project) {
		return false
	}
	return true
}

func intersects(a, b []string) bool {
	for _, x := range a {
		if contains(b, x) {
			return true
		}
	}
	return false
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
