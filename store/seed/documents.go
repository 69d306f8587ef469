package seed

import (
	"time"

	"kmis/types"
)

func seededAt(day int) time.Time {
	return time.Date(2024, time.December, day%28+1, 9, 0, 0, 0, time.UTC)
}

// Documents returns the seed corpus. IDs are stable because the canned
// answer library and evidence updates cite them.
func Documents() []types.Document {
	docs := []struct {
		id, title, filename string
		sizeMB              float64
		status              types.DocumentStatus
		countries, themes   []string
		periods             []string
		docType, project    string
		contributor         string
		text                string
	}{
		{
			"doc-001", "Ghana VPA Implementation Annual Report 2024", "ghana-vpa-annual-2024.pdf", 4.2,
			types.StatusPublished, []string{"Ghana"}, []string{"Forest Governance"}, []string{"2024 Q4"},
			"Annual Report", "VPA Support Programme", "James Osei",
			"Key achievements include the establishment of community forest management committees in 15 districts, improved timber tracking systems, and strengthened stakeholder consultation structures. Challenges remain in cross-border timber trade monitoring and community benefit-sharing mechanisms, with 23 non-compliance cases identified through joint monitoring during the year.",
		},
		{
			"doc-002", "Timber Legality Assurance System Quarterly Report Q4 2024", "tlas-q4-2024.pdf", 1.8,
			types.StatusPublished, []string{"Ghana"}, []string{"Forest Governance"}, []string{"2024 Q4"},
			"Quarterly Report", "VPA Support Programme", "James Osei",
			"The timber legality assurance system processed 2,340 permits, a 15% increase from Q3. Verification turnaround improved to an average of six working days, and stakeholder consultations in Ashanti and Western regions strengthened joint monitoring arrangements.",
		},
		{
			"doc-003", "Community Forest Management in Ghana: Case Study", "ghana-cfm-case-study.pdf", 2.6,
			types.StatusPublished, []string{"Ghana"}, []string{"Forest Governance"}, []string{"2024 Q3"},
			"Case Study", "Core Programme", "James Osei",
			"Results show a 30% reduction in illegal logging in managed areas. Improved livelihoods through sustainable harvesting, and stronger community engagement in monitoring, were documented across the participating districts, with growing women's participation in non-timber forest products.",
		},
		{
			"doc-004", "Ghana Timber Trade and Export Analysis 2024", "ghana-trade-analysis-2024.pdf", 3.1,
			types.StatusPublished, []string{"Ghana"}, []string{"Markets"}, []string{"2024 Q4"},
			"Annual Report", "Core Programme", "Sarah Johnson",
			"Certified timber exports increased by 22% while overall export volumes remained stable. Recommendations include strengthening domestic processing capacity and diversifying export markets beyond traditional EU destinations.",
		},
		{
			"doc-005", "Ghana Climate Adaptation and REDD+ Policy Update", "ghana-climate-policy-2024.pdf", 1.4,
			types.StatusPublished, []string{"Ghana"}, []string{"Climate"}, []string{"2024 Q4"},
			"Policy Brief", "Carbon Partnership", "Sarah Johnson",
			"National REDD+ strategy updated to incorporate new climate projections. Fire management programmes expanded to cover 12 additional districts, and national carbon monitoring shows a 5% increase in sequestration across managed forest reserves.",
		},
		{
			"doc-006", "FLEGT Licensing Readiness Assessment: Ghana", "flegt-readiness-ghana.pdf", 2.2,
			types.StatusValidated, []string{"Ghana"}, []string{"Forest Governance"}, []string{"2024 Q3"},
			"Case Study", "VPA Support Programme", "James Osei",
			"Current systems meet 78% of requirements. Key gaps identified in chain-of-custody tracking for domestic market timber and in reconciliation between harvesting permits and mill intake records.",
		},
		{
			"doc-007", "Draft: Ghana Domestic Timber Market Scoping", "ghana-domestic-scoping-draft.pdf", 0.9,
			types.StatusDraft, []string{"Ghana"}, []string{"Markets"}, []string{"2025 Q1"},
			"Case Study", "Core Programme", "Maria Silva",
			"Early scoping notes on the structure of the domestic lumber market, informal mill clusters and the incentives that keep supply outside the legality assurance system. Figures unverified pending field validation.",
		},
		{
			"doc-008", "SVLK Certification System Review 2024", "svlk-review-2024.pdf", 3.8,
			types.StatusPublished, []string{"Indonesia"}, []string{"Forest Governance"}, []string{"2024 Q4"},
			"Annual Report", "Core Programme", "Ahmad Wijaya",
			"The system processed over 15,000 certificates in 2024. Independent monitoring reports confirmed improved auditor consistency, while smallholder certification costs remain the main barrier to broader participation.",
		},
		{
			"doc-009", "Draft: Peatland Restoration Financing Options", "peatland-financing-draft.pdf", 1.1,
			types.StatusDraft, []string{"Indonesia"}, []string{"Climate"}, []string{"2025 Q1"},
			"Policy Brief", "Carbon Partnership", "Ahmad Wijaya",
			"Working draft reviewing blended finance options for peatland rewetting at province scale. Cost ranges and counterparty assumptions still under review with the ministry working group.",
		},
		{
			"doc-010", "Indonesia Social Forestry Programme Report 2024", "social-forestry-2024.pdf", 4.6,
			types.StatusPublished, []string{"Indonesia"}, []string{"Forest Governance"}, []string{"2024 Q4"},
			"Annual Report", "Core Programme", "Ahmad Wijaya",
			"The social forestry programme issued 6,400 permits covering 4.8 million hectares in 2024, bringing the cumulative total to 5.2 million hectares under community management across the archipelago.",
		},
		{
			"doc-011", "Indonesia Timber Market Analysis Q3 2024", "indonesia-market-q3-2024.pdf", 2.0,
			types.StatusPublished, []string{"Indonesia"}, []string{"Markets"}, []string{"2024 Q3"},
			"Quarterly Report", "Core Programme", "Maria Silva",
			"Plywood exports to Japan increased 12%. Furniture exports to EU showed strong growth on the back of sustainability certification, while domestic construction demand softened slightly.",
		},
		{
			"doc-012", "Indonesia REDD+ Results Report 2024", "indonesia-redd-results-2024.pdf", 5.2,
			types.StatusPublished, []string{"Indonesia"}, []string{"Climate"}, []string{"2024 Q4"},
			"Annual Report", "Carbon Partnership", "Ahmad Wijaya",
			"Verified emission reductions of 25 million tCO2e in 2024. Results-based payments totalled $120 million from bilateral agreements, and the benefit-sharing mechanism distributed funds to 450 villages.",
		},
		{
			"doc-013", "Indonesia Forest Climate Risk Assessment", "indonesia-climate-risk.pdf", 2.9,
			types.StatusPublished, []string{"Indonesia"}, []string{"Climate"}, []string{"2024 Q3"},
			"Case Study", "Carbon Partnership", "Ahmad Wijaya",
			"Increased drought frequency threatens 3.5 million hectares. Fire risk elevated in El Nino years, with peatland areas facing the highest combined exposure. Adaptation priorities include rewetting, early-warning systems and community fire brigades.",
		},
		{
			"doc-014", "Brazil Amazon Forest Governance Review 2024", "brazil-governance-review-2024.pdf", 4.9,
			types.StatusPublished, []string{"Brazil"}, []string{"Forest Governance"}, []string{"2024 Q4"},
			"Annual Report", "Action Plan", "Maria Silva",
			"Deforestation enforcement actions increased by 35%. The Amazon Fund disbursed $200 million to state-level programmes. Challenges in illegal mining and land grabbing persist despite the stepped-up enforcement presence.",
		},
		{
			"doc-015", "DETER Deforestation Monitoring Summary Q4 2024", "deter-summary-q4-2024.pdf", 1.2,
			types.StatusPublished, []string{"Brazil"}, []string{"Forest Governance"}, []string{"2024 Q4"},
			"Quarterly Report", "Action Plan", "Maria Silva",
			"DETER alerts showed 18% decrease in deforestation compared to Q4 2023. PRODES annual data confirmed the overall reduction trend in the Amazon, and real-time alert response time improved to 48 hours.",
		},
		{
			"doc-016", "Community Forestry Enterprises in Para: Case Study", "para-enterprises-case-study.pdf", 2.4,
			types.StatusPublished, []string{"Brazil"}, []string{"Markets"}, []string{"2024 Q3"},
			"Case Study", "Core Programme", "Maria Silva",
			"Community forestry enterprises achieved 40% premium for certified timber. Revenue reinvestment in local processing increased value capture, though access to working capital remains the binding constraint.",
		},
		{
			"doc-017", "Carbon Market Design: Integrity and Safeguards", "carbon-market-design.pdf", 1.6,
			types.StatusPublished, []string{"Ghana", "Indonesia", "Brazil"}, []string{"Climate", "Markets"}, []string{"2024 Q4"},
			"Policy Brief", "Carbon Partnership", "Sarah Johnson",
			"Policy recommendations for ensuring environmental integrity and social safeguards in forest carbon market design, covering baseline setting, leakage accounting and community consent requirements.",
		},
		{
			"doc-018", "Atlantic Forest Restoration Activities Summary", "atlantic-restoration-summary.pdf", 2.1,
			types.StatusPublished, []string{"Brazil"}, []string{"Climate"}, []string{"2024 Q4"},
			"Quarterly Report", "Action Plan", "Maria Silva",
			"Restoration corridors connected 12 forest fragments. Climate-smart agroforestry adopted by 800 smallholders, with seedling survival rates above 85% in monitored plots.",
		},
		{
			"doc-019", "Traditional Knowledge in Forest Policy: Brazil Policy Brief", "traditional-knowledge-brief.pdf", 0.8,
			types.StatusValidated, []string{"Brazil"}, []string{"Forest Governance"}, []string{"2024 Q3"},
			"Policy Brief", "Action Plan", "Claire Dupont",
			"Recommendations for formal recognition of traditional knowledge in forest policy, drawing on indigenous territory management outcomes and co-management pilots in two states.",
		},
		{
			"doc-020", "Comparative Forest Governance Analysis: Ghana, Indonesia, Brazil", "comparative-governance.pdf", 3.5,
			types.StatusPublished, []string{"Ghana", "Indonesia", "Brazil"}, []string{"Forest Governance"}, []string{"2024 Q4"},
			"Case Study", "Core Programme", "Sarah Johnson",
			"All three countries showed improvement in legality verification systems. Common challenges: enforcement capacity, cross-border coordination, and sustaining community participation between programme cycles.",
		},
		{
			"doc-021", "Global Certified Timber Market Overview Q4 2024", "certified-market-overview.pdf", 1.9,
			types.StatusPublished, []string{"Ghana", "Indonesia", "Brazil"}, []string{"Markets"}, []string{"2024 Q4"},
			"Quarterly Report", "Core Programme", "Sarah Johnson",
			"Certified timber demand grew 18% year-over-year. Certified hardwood prices reached 5-year highs, and the EU Deforestation Regulation is driving a fundamental transformation of sourcing practices.",
		},
		{
			"doc-022", "Forest Climate Finance: Global Trends 2024", "climate-finance-trends-2024.pdf", 2.7,
			types.StatusPublished, []string{"Ghana", "Indonesia", "Brazil"}, []string{"Climate"}, []string{"2024 Q4"},
			"Annual Report", "Carbon Partnership", "Sarah Johnson",
			"Total forest climate finance reached $12 billion in 2024. Results-based mechanisms account for a growing share, with private capital entering through jurisdictional crediting programmes.",
		},
		{
			"doc-023", "Draft: Cross-Border Trade Monitoring Protocol", "cross-border-protocol-draft.pdf", 0.7,
			types.StatusDraft, []string{"Ghana"}, []string{"Forest Governance"}, []string{"2025 Q1"},
			"Policy Brief", "VPA Support Programme", "James Osei",
			"Draft protocol for harmonised cross-border timber trade monitoring with neighbouring countries, covering shared permit registries and joint inspection schedules. Pending legal review.",
		},
		{
			"doc-024", "Social Forestry Impact Assessment: Indonesia", "social-forestry-impact.pdf", 3.3,
			types.StatusPublished, []string{"Indonesia"}, []string{"Forest Governance"}, []string{"2024 Q3"},
			"Case Study", "Core Programme", "Ahmad Wijaya",
			"Livelihood improvements documented in 60% of surveyed communities. Household income from forest products rose where permits were paired with enterprise support, and tenure security perceptions improved markedly.",
		},
		{
			"doc-025", "Cerrado Deforestation Alert Summary Q2 2024", "cerrado-alerts-q2-2024.pdf", 1.0,
			types.StatusPublished, []string{"Brazil"}, []string{"Forest Governance", "Climate"}, []string{"2024 Q2"},
			"Quarterly Report", "Action Plan", "Maria Silva",
			"Q2 2024 saw 15% increase in clearance compared to Q2 2023. Agricultural expansion primary driver, concentrated in the Matopiba frontier, with soy and pasture conversion leading the change.",
		},
		{
			"doc-026", "Ghana Stakeholder Consultation Records 2024", "ghana-consultations-2024.pdf", 1.3,
			types.StatusValidated, []string{"Ghana"}, []string{"Forest Governance"}, []string{"2024 Q4"},
			"Annual Report", "VPA Support Programme", "James Osei",
			"Consolidated records of multi-stakeholder consultations held during 2024, including attendance, issues raised on benefit sharing, and agreed follow-up actions by region.",
		},
		{
			"doc-027", "Indonesia Export Compliance Bulletin Q4 2024", "indonesia-compliance-q4.pdf", 0.9,
			types.StatusValidated, []string{"Indonesia"}, []string{"Markets"}, []string{"2024 Q4"},
			"Quarterly Report", "Core Programme", "Ahmad Wijaya",
			"Quarterly bulletin on export documentation compliance rates by port, rejection causes, and the effect of pre-shipment verification pilots introduced in October.",
		},
		{
			"doc-028", "Biomass Monitoring Technology Review", "biomass-tech-review.pdf", 2.5,
			types.StatusPublished, []string{"Ghana", "Indonesia", "Brazil"}, []string{"Climate"}, []string{"2024 Q3"},
			"Case Study", "Carbon Partnership", "Sarah Johnson",
			"LiDAR-satellite fusion improving biomass estimates by 30%. Integrated approaches combining satellite, LiDAR and community ground data outperform any single method for change attribution.",
		},
		{
			"doc-029", "Programme Risk Register Summary 2024", "risk-register-2024.pdf", 0.6,
			types.StatusValidated, []string{"Ghana", "Indonesia", "Brazil"}, []string{"Forest Governance"}, []string{"2024 Q4"},
			"Annual Report", "Core Programme", "Sarah Johnson",
			"Summary of the consolidated programme risk register: enforcement capacity gaps, market transition costs under new due diligence rules, and climate hazards to standing forest assets.",
		},
		{
			"doc-030", "Mangrove Blue Carbon Progress Report: Indonesia", "mangrove-blue-carbon.pdf", 2.8,
			types.StatusPublished, []string{"Indonesia"}, []string{"Climate", "Markets"}, []string{"2024 Q4"},
			"Quarterly Report", "Carbon Partnership", "Ahmad Wijaya",
			"Blue carbon credits generating community income. Aquaculture-mangrove integration models showing economic viability, and rehabilitation of abandoned ponds is scaling through village enterprise groups.",
		},
		{
			"doc-031", "Brazil Restoration Outcomes Report 2024", "brazil-restoration-outcomes.pdf", 3.0,
			types.StatusPublished, []string{"Brazil"}, []string{"Climate"}, []string{"2024 Q4"},
			"Annual Report", "Action Plan", "Maria Silva",
			"2.1 million hectares under active restoration. Carbon sequestration estimated at 8 million tCO2e, with native species nurseries expanding capacity in all priority watersheds.",
		},
		{
			"doc-032", "Stakeholder Engagement Approaches: Synthesis Study", "engagement-synthesis.pdf", 2.3,
			types.StatusPublished, []string{"Ghana", "Indonesia", "Brazil"}, []string{"Forest Governance"}, []string{"2024 Q3"},
			"Case Study", "Core Programme", "Claire Dupont",
			"Recommendations for hybrid engagement models combining digital platforms with in-person forums. Connectivity barriers continue to limit digital participation in remote communities.",
		},
		{
			"doc-033", "Annual Financial Summary 2024", "financial-summary-2024.pdf", 0.5,
			types.StatusValidated, []string{"Ghana", "Indonesia", "Brazil"}, []string{"Markets"}, []string{"2024 Q4"},
			"Annual Report", "Core Programme", "Sarah Johnson",
			"Programme expenditure summary by country and output area, including disbursement against forecast and explanations for variances above ten percent.",
		},
		{
			"doc-034", "Indonesia FLEGT-Licensed Trade Data Q2 2024", "indonesia-flegt-trade-q2.pdf", 1.1,
			types.StatusPublished, []string{"Indonesia"}, []string{"Markets"}, []string{"2024 Q2"},
			"Quarterly Report", "Core Programme", "Ahmad Wijaya",
			"FLEGT-licensed shipments increased 20%. Product diversification towards higher value-added goods continued, with furniture and mouldings gaining share over primary products.",
		},
	}

	out := make([]types.Document, 0, len(docs))
	for i, d := range docs {
		at := seededAt(i + 1)
		out = append(out, types.Document{
			ID:       d.id,
			Title:    d.title,
			Filename: d.filename,
			SizeMB:   d.sizeMB,
			Version:  "1.0",
			Status:   d.status,
			Metadata: types.DocumentMetadata{
				Countries:        d.countries,
				Themes:           d.themes,
				ReportingPeriods: d.periods,
				DocumentType:     d.docType,
				Project:          d.project,
				Contributor:      d.contributor,
			},
			ExtractedText: d.text,
			CreatedAt:     at,
			UpdatedAt:     at,
		})
	}
	return out
}
