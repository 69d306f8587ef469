// Package seed holds the default portal state: the document corpus,
// taxonomy, user accounts, events, evidence updates and the canned
// answer library used by the offline assistant.
package seed

import (
	"kmis/store"
	"kmis/types"
)

// DefaultState builds a fresh default blob. The AI settings come from
// the environment because the persisted blob may predate them.
func DefaultState(ai types.AISettings) func() store.State {
	return func() store.State {
		return store.State{
			Documents:       Documents(),
			EvidenceUpdates: EvidenceUpdates(),
			Taxonomy:        Taxonomy(),
			Events:          Events(),
			Users:           Users(),
			AISettings:      ai,
			ChatSessions:    []types.ChatSession{},
			Role:            types.RoleViewer,
			CurrentUserID:   "",
		}
	}
}

func Taxonomy() types.Taxonomy {
	return types.Taxonomy{
		Countries:        []string{"Ghana", "Indonesia", "Brazil"},
		Themes:           []string{"Forest Governance", "Markets", "Climate"},
		ReportingPeriods: []string{"2024 Q2", "2024 Q3", "2024 Q4", "2025 Q1"},
		DocumentTypes:    []string{"Annual Report", "Quarterly Report", "Case Study", "Policy Brief"},
		Projects:         []string{"Core Programme", "VPA Support Programme", "Action Plan", "Carbon Partnership"},
		Contributors:     []string{"Sarah Johnson", "James Osei", "Maria Silva", "Ahmad Wijaya", "Claire Dupont", "David Mensah"},
	}
}

func Users() []types.UserAccount {
	return []types.UserAccount{
		{ID: "user-1", Name: "Sarah Johnson", Email: "sarah.johnson@fcdo.gov.uk", Role: types.RoleAdmin, Initials: "SJ"},
		{ID: "user-2", Name: "James Osei", Email: "james.osei@fcdo.gov.uk", Role: types.RoleAdmin, Initials: "JO"},
		{ID: "user-3", Name: "Maria Silva", Email: "maria.silva@fcdo.gov.uk", Role: types.RoleViewer, Initials: "MS"},
		{ID: "user-4", Name: "Ahmad Wijaya", Email: "ahmad.wijaya@fcdo.gov.uk", Role: types.RoleViewer, Initials: "AW"},
		{ID: "user-5", Name: "Claire Dupont", Email: "claire.dupont@fgmc-cop.org", Role: types.RoleExternal, Initials: "CD"},
		{ID: "user-6", Name: "David Mensah", Email: "david.mensah@fgmc-cop.org", Role: types.RoleExternal, Initials: "DM"},
	}
}

func Events() []types.Event {
	return []types.Event{
		{ID: "event-1", Title: "Quarterly CoP Webinar: Timber Legality Systems", Date: "2025-02-18", Description: "Cross-country exchange on legality assurance system performance in 2024.", Type: "Webinar"},
		{ID: "event-2", Title: "Regional Workshop: Community Forest Management", Date: "2025-03-05", Description: "In-person workshop in Accra on scaling community forest management agreements.", Type: "Workshop"},
		{ID: "event-3", Title: "Annual Programme Learning Event", Date: "2025-04-22", Description: "Annual review of programme evidence and lessons across Ghana, Indonesia and Brazil.", Type: "Conference"},
		{ID: "event-4", Title: "Carbon Markets Clinic", Date: "2025-05-14", Description: "Clinic on results-based payments and carbon market safeguards.", Type: "Webinar"},
	}
}

func EvidenceUpdates() []types.EvidenceUpdate {
	return []types.EvidenceUpdate{
		{
			ID: "ev-001", PageType: types.PageCountry, PageKey: "Ghana", Date: "2025-01-10",
			Title: "Timber legality permits up 15% in Q4",
			Body:  "The legality assurance system processed 2,340 permits in Q4 2024, continuing the upward trend since system rollout.",
			Tags:  []string{"Forest Governance"}, SourceDocumentIDs: []string{"doc-002"},
		},
		{
			ID: "ev-002", PageType: types.PageCountry, PageKey: "Indonesia", Date: "2025-01-08",
			Title: "REDD+ verified reductions reach 25M tCO2e",
			Body:  "Verified emission reductions for 2024 reached 25 million tCO2e with results-based payments totalling $120 million.",
			Tags:  []string{"Climate"}, SourceDocumentIDs: []string{"doc-012"},
		},
		{
			ID: "ev-003", PageType: types.PageTheme, PageKey: "Markets", Date: "2024-12-19",
			Title: "Certified timber demand grows 18%",
			Body:  "Global certified timber demand grew 18% year-over-year in Q4 2024, with certified hardwood prices at 5-year highs.",
			Tags:  []string{"Markets"}, SourceDocumentIDs: []string{"doc-021"},
		},
		{
			ID: "ev-004", PageType: types.PageCountry, PageKey: "Brazil", Date: "2024-12-02",
			Title: "Cerrado clearance up 15% in Q2",
			Body:  "Alert data shows a 15% increase in Cerrado clearance compared to Q2 2023, driven primarily by agricultural expansion.",
			Tags:  []string{"Forest Governance", "Climate"}, SourceDocumentIDs: []string{"doc-025"},
		},
	}
}
