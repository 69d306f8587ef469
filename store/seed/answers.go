package seed

import (
	"time"

	"kmis/types"
)

func answerAt(min int) time.Time {
	return time.Date(2025, time.January, 15, 10, min, 0, 0, time.UTC)
}

// Answers returns the canned answer library used by the offline
// assistant. Prompts, bullets and citations are fixed; the matcher
// depends on their exact wording.
func Answers() []types.Answer {
	return []types.Answer{
		{
			ID: "ai-001", CreatedAt: answerAt(0),
			Prompt: "Summarise key findings on forest governance in Ghana for 2024-2025.",
			Scope:  types.Scope{Countries: []string{"Ghana"}, Themes: []string{"Forest Governance"}},
			AnswerText: "Ghana has made notable progress in forest governance during 2024-2025. The VPA implementation achieved a significant milestone with the timber legality assurance system processing over 2,300 permits in Q4 2024. Community forest management has demonstrated tangible results, and the FLEGT licensing readiness stands at 78%.",
			Bullets: []string{
				"Timber legality assurance system processed 2,340 permits in Q4 2024, a 15% increase from Q3.",
				"Community forest management agreements reduced illegal logging by 30% in managed areas.",
				"FLEGT licensing readiness assessed at 78% with key gaps in chain-of-custody tracking.",
				"Stakeholder consultations held in Ashanti and Western regions strengthened monitoring.",
				"23 non-compliance cases identified and enforcement actions taken through joint monitoring.",
			},
			Sources: []types.Source{
				{DocumentID: "doc-001", Snippet: "Key achievements include the establishment of community forest management committees in 15 districts, improved timber tracking systems...", ReferenceLabel: "Section 2, p. 8"},
				{DocumentID: "doc-002", Snippet: "The timber legality assurance system processed 2,340 permits, a 15% increase from Q3...", ReferenceLabel: "Executive Summary, p. 3"},
				{DocumentID: "doc-003", Snippet: "Results show a 30% reduction in illegal logging in managed areas...", ReferenceLabel: "Findings, p. 12"},
				{DocumentID: "doc-006", Snippet: "Current systems meet 78% of requirements. Key gaps identified in chain-of-custody tracking...", ReferenceLabel: "Assessment Results, p. 5"},
			},
		},
		{
			ID: "ai-002", CreatedAt: answerAt(5),
			Prompt: "What evidence do we have on markets and climate in Indonesia?",
			Scope:  types.Scope{Countries: []string{"Indonesia"}, Themes: []string{"Markets", "Climate"}},
			AnswerText: "Indonesia shows strong interconnections between market development and climate action in the forest sector. REDD+ payments and timber market growth are both advancing, while climate finance mechanisms are creating new economic opportunities for forest communities.",
			Bullets: []string{
				"Plywood exports to Japan increased 12% in Q3 2024; furniture exports to EU grew with sustainability certification.",
				"REDD+ programme achieved 25 million tCO2e verified emission reductions in 2024.",
				"Results-based payments from bilateral agreements totalled $120 million.",
				"Blue carbon credits from mangrove conservation generating community income.",
				"Climate risk assessment identifies drought threats to 3.5 million hectares of forest.",
			},
			Sources: []types.Source{
				{DocumentID: "doc-011", Snippet: "Plywood exports to Japan increased 12%. Furniture exports to EU showed strong growth...", ReferenceLabel: "Market Analysis, p. 7"},
				{DocumentID: "doc-012", Snippet: "Verified emission reductions of 25 million tCO2e in 2024. Results-based payments totalled $120 million...", ReferenceLabel: "Results Summary, p. 4"},
				{DocumentID: "doc-013", Snippet: "Increased drought frequency threatens 3.5 million hectares...", ReferenceLabel: "Risk Assessment, p. 9"},
				{DocumentID: "doc-030", Snippet: "Blue carbon credits generating community income. Aquaculture-mangrove integration models showing economic viability...", ReferenceLabel: "Section 3, p. 15"},
			},
		},
		{
			ID: "ai-003", CreatedAt: answerAt(10),
			Prompt: "List the major risks mentioned across the selected documents.",
			Scope:  types.Scope{},
			AnswerText: "Multiple risk factors have been identified across programme countries, spanning governance, environmental, and market dimensions. The most critical risks relate to enforcement gaps, climate threats, and market transition challenges.",
			Bullets: []string{
				"Cross-border timber trade monitoring remains a challenge in Ghana with enforcement gaps.",
				"Indonesia faces elevated fire risk during El Nino years threatening peatlands and forests.",
				"Brazil's Cerrado biome experienced 15% increase in deforestation in Q2 2024.",
				"Illegal mining and land grabbing persist in the Brazilian Amazon despite increased enforcement.",
				"EU Deforestation Regulation creating adjustment costs for tropical timber exporters.",
				"Connectivity barriers limiting digital stakeholder engagement in remote communities.",
			},
			Sources: []types.Source{
				{DocumentID: "doc-001", Snippet: "Challenges remain in cross-border timber trade monitoring and community benefit-sharing mechanisms...", ReferenceLabel: "Challenges, p. 22"},
				{DocumentID: "doc-013", Snippet: "Increased drought frequency threatens 3.5 million hectares. Fire risk elevated in El Nino years...", ReferenceLabel: "Risk Summary, p. 3"},
				{DocumentID: "doc-025", Snippet: "Q2 2024 saw 15% increase in clearance compared to Q2 2023. Agricultural expansion primary driver...", ReferenceLabel: "Alert Summary, p. 2"},
				{DocumentID: "doc-014", Snippet: "Challenges in illegal mining and land grabbing persist...", ReferenceLabel: "Section 4, p. 18"},
			},
		},
		{
			ID: "ai-004", CreatedAt: answerAt(15),
			Prompt: "What progress has been made on REDD+ across programme countries?",
			Scope:  types.Scope{Themes: []string{"Climate"}},
			AnswerText: "REDD+ implementation has advanced significantly across all three programme countries in 2024, with Indonesia leading in verified emission reductions and Brazil achieving major restoration milestones.",
			Bullets: []string{
				"Indonesia achieved 25 million tCO2e verified emission reductions through REDD+ in 2024.",
				"Brazil has 2.1 million hectares under active restoration with carbon sequestration of 8 million tCO2e.",
				"Ghana updated its national REDD+ strategy to incorporate new climate projections.",
				"Results-based payments across countries exceeded $120 million from bilateral agreements.",
				"Forest climate finance globally reached $12 billion in 2024.",
			},
			Sources: []types.Source{
				{DocumentID: "doc-012", Snippet: "REDD+ programme achieved verified emission reductions of 25 million tCO2e...", ReferenceLabel: "Executive Summary, p. 2"},
				{DocumentID: "doc-031", Snippet: "2.1 million hectares under active restoration. Carbon sequestration estimated at 8 million tCO2e...", ReferenceLabel: "Outcomes, p. 10"},
				{DocumentID: "doc-005", Snippet: "National REDD+ strategy updated to incorporate new climate projections...", ReferenceLabel: "Policy Update, p. 6"},
				{DocumentID: "doc-022", Snippet: "Total forest climate finance reached $12 billion in 2024...", ReferenceLabel: "Global Trends, p. 4"},
			},
		},
		{
			ID: "ai-005", CreatedAt: answerAt(20),
			Prompt: "How are communities benefiting from forest programmes?",
			Scope:  types.Scope{},
			AnswerText: "Community benefits from forest programmes are evident across all three countries, spanning improved livelihoods, governance participation, and direct financial returns from sustainable forest management and carbon payments.",
			Bullets: []string{
				"Ghana communities report improved livelihoods through sustainable harvesting under CFM agreements.",
				"Indonesia's social forestry programme issued 6,400 permits covering 4.8 million hectares with livelihood improvements in 60% of surveyed communities.",
				"Brazil's community forestry enterprises in Para achieved 40% premium for certified timber.",
				"REDD+ benefit-sharing distributed funds to 450 villages in Indonesia.",
				"Women's participation increased in non-timber forest products in Ghana.",
			},
			Sources: []types.Source{
				{DocumentID: "doc-003", Snippet: "Improved livelihoods through sustainable harvesting, and stronger community engagement...", ReferenceLabel: "Community Outcomes, p. 15"},
				{DocumentID: "doc-024", Snippet: "Livelihood improvements documented in 60% of surveyed communities...", ReferenceLabel: "Impact Assessment, p. 8"},
				{DocumentID: "doc-016", Snippet: "Community forestry enterprises achieved 40% premium for certified timber...", ReferenceLabel: "Case Study Results, p. 11"},
				{DocumentID: "doc-012", Snippet: "Benefit-sharing mechanism distributed funds to 450 villages...", ReferenceLabel: "Benefit Sharing, p. 20"},
			},
		},
		{
			ID: "ai-006", CreatedAt: answerAt(25),
			Prompt: "What are the trends in certified timber markets?",
			Scope:  types.Scope{Themes: []string{"Markets"}},
			AnswerText: "Certified timber markets are experiencing strong growth driven by regulatory requirements, consumer demand, and sustainability commitments. Prices are at multi-year highs and supply chains are adapting to new due diligence requirements.",
			Bullets: []string{
				"Global certified timber demand grew 18% year-over-year in Q4 2024.",
				"Certified hardwood prices reached 5-year highs.",
				"Ghana's certified timber exports increased 22% while overall volumes remained stable.",
				"Indonesia's FLEGT-licensed shipments to EU increased 20% in Q2 2024.",
				"EU Deforestation Regulation driving fundamental market transformation.",
			},
			Sources: []types.Source{
				{DocumentID: "doc-021", Snippet: "Certified timber demand grew 18% year-over-year. Certified hardwood prices reached 5-year highs...", ReferenceLabel: "Market Overview, p. 5"},
				{DocumentID: "doc-004", Snippet: "Certified timber exports increased by 22% while overall export volumes remained stable...", ReferenceLabel: "Trade Analysis, p. 8"},
				{DocumentID: "doc-034", Snippet: "FLEGT-licensed shipments increased 20%. Product diversification towards higher value-added goods...", ReferenceLabel: "Trade Data, p. 6"},
			},
		},
		{
			ID: "ai-007", CreatedAt: answerAt(30),
			Prompt: "What is the status of Brazil's deforestation monitoring?",
			Scope:  types.Scope{Countries: []string{"Brazil"}, Themes: []string{"Forest Governance"}},
			AnswerText: "Brazil's deforestation monitoring system has shown significant improvements in 2024, with expanded coverage and faster response times, though the Cerrado biome remains a concern area.",
			Bullets: []string{
				"DETER alerts showed 18% decrease in deforestation in Q4 2024 compared to Q4 2023.",
				"PRODES annual data confirmed overall deforestation reduction trend in the Amazon.",
				"Cerrado biome monitoring expanded with new satellite coverage.",
				"Real-time alert system response time improved to 48 hours.",
				"However, Cerrado saw 15% increase in Q2 2024 clearance, primarily from agricultural expansion.",
			},
			Sources: []types.Source{
				{DocumentID: "doc-015", Snippet: "DETER alerts showed 18% decrease in deforestation compared to Q4 2023...", ReferenceLabel: "Monitoring Summary, p. 3"},
				{DocumentID: "doc-025", Snippet: "Q2 2024 saw 15% increase in clearance compared to Q2 2023. Agricultural expansion primary driver...", ReferenceLabel: "Alert Summary, p. 2"},
				{DocumentID: "doc-014", Snippet: "Deforestation enforcement actions increased by 35%...", ReferenceLabel: "Enforcement Section, p. 14"},
			},
		},
		{
			ID: "ai-008", CreatedAt: answerAt(35),
			Prompt: "Compare forest governance approaches across Ghana, Indonesia and Brazil.",
			Scope:  types.Scope{Countries: []string{"Ghana", "Indonesia", "Brazil"}, Themes: []string{"Forest Governance"}},
			AnswerText: "All three countries are pursuing distinct but complementary approaches to forest governance, with common themes around legality verification, community engagement, and technology adoption.",
			Bullets: []string{
				"Ghana focuses on VPA implementation and timber legality assurance with 78% FLEGT readiness.",
				"Indonesia leads with SVLK certification (15,000+ certificates) and social forestry (5.2M hectares).",
				"Brazil emphasises enforcement-led approach with 35% increase in actions and Amazon Fund disbursements.",
				"All three countries improving community participation in governance processes.",
				"Technology adoption (satellite monitoring, digital tracking) advancing across all contexts.",
			},
			Sources: []types.Source{
				{DocumentID: "doc-020", Snippet: "All three countries showed improvement in legality verification systems. Common challenges: enforcement capacity...", ReferenceLabel: "Comparative Analysis, p. 6"},
				{DocumentID: "doc-006", Snippet: "Current systems meet 78% of requirements...", ReferenceLabel: "Readiness Assessment, p. 5"},
				{DocumentID: "doc-008", Snippet: "The system processed over 15,000 certificates in 2024...", ReferenceLabel: "SVLK Review, p. 4"},
				{DocumentID: "doc-014", Snippet: "Deforestation enforcement actions increased by 35%. The Amazon Fund disbursed $200 million...", ReferenceLabel: "Governance Review, p. 8"},
			},
		},
		{
			ID: "ai-009", CreatedAt: answerAt(40),
			Prompt: "What are the key policy recommendations from recent reports?",
			Scope:  types.Scope{},
			AnswerText: "Recent reports converge on several key policy recommendations spanning governance reform, market development, community empowerment, and climate action.",
			Bullets: []string{
				"Strengthen domestic timber processing capacity and diversify export markets (Ghana).",
				"Formal recognition of traditional/indigenous knowledge in forest policy (Brazil).",
				"Scale hybrid stakeholder engagement models combining digital and in-person approaches.",
				"Ensure environmental integrity and social safeguards in carbon market design.",
				"Invest in integrated monitoring approaches combining satellite, LiDAR, and community data.",
			},
			Sources: []types.Source{
				{DocumentID: "doc-004", Snippet: "Recommendations include strengthening domestic processing capacity and diversifying export markets...", ReferenceLabel: "Recommendations, p. 12"},
				{DocumentID: "doc-019", Snippet: "Recommendations for formal recognition of traditional knowledge in forest policy...", ReferenceLabel: "Policy Brief, p. 6"},
				{DocumentID: "doc-032", Snippet: "Recommendations for hybrid engagement models...", ReferenceLabel: "Conclusions, p. 18"},
				{DocumentID: "doc-017", Snippet: "Policy recommendations for ensuring environmental integrity and social safeguards...", ReferenceLabel: "Section 4, p. 14"},
			},
		},
		{
			ID: "ai-010", CreatedAt: answerAt(45),
			Prompt: "Summarise climate adaptation activities across all countries.",
			Scope:  types.Scope{Themes: []string{"Climate"}},
			AnswerText: "Climate adaptation activities are advancing across all programme countries, with focus areas including fire management, restoration, species resilience, and community-based approaches.",
			Bullets: []string{
				"Ghana expanded fire management programmes to 12 additional districts; carbon monitoring shows 5% increase in sequestration.",
				"Indonesia piloting mangrove-aquaculture integration and peatland rewetting with community participation.",
				"Brazil's Atlantic Forest restoration corridors connected 12 forest fragments; climate-smart agroforestry adopted by 800 smallholders.",
				"LiDAR-satellite fusion improving biomass monitoring accuracy by 30% across countries.",
				"Total forest climate finance reached $12 billion globally in 2024.",
			},
			Sources: []types.Source{
				{DocumentID: "doc-005", Snippet: "Fire management programmes expanded to cover 12 additional districts...", ReferenceLabel: "Adaptation Activities, p. 8"},
				{DocumentID: "doc-030", Snippet: "Aquaculture-mangrove integration models showing economic viability...", ReferenceLabel: "Progress Report, p. 10"},
				{DocumentID: "doc-018", Snippet: "Restoration corridors connected 12 forest fragments. Climate-smart agroforestry adopted by 800 smallholders...", ReferenceLabel: "Activities Summary, p. 5"},
				{DocumentID: "doc-028", Snippet: "LiDAR-satellite fusion improving biomass estimates by 30%...", ReferenceLabel: "Technology Review, p. 7"},
			},
		},
	}
}
