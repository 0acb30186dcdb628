package content

import "perception-quiz-service/internal/domain"

var vignettes = []domain.Vignette{
	{
		ID:       1,
		Title:    "Student → Employment Gap",
		Person:   "Maria",
		Scenario: "Maria entered the U.S. from Brazil in 2014 on an F-1 student visa. She completed her degree in 2018 and received Optional Practical Training (OPT). Her employer agreed to sponsor her for an H-1B visa, but the petition was not selected in the lottery. Her OPT expired while she was still employed. She remained in the U.S. after her status expired and continued working for several months.",
		Q1: domain.SubQuestion{
			Text:     "Is Maria currently in the U.S. legally?",
			Answer:   domain.No,
			Feedback: "No, Maria does not currently have legal status.",
		},
		Q2: domain.SubQuestion{
			Text:     "Did Maria consistently comply with her visa terms?",
			Answer:   domain.No,
			Feedback: "No, Maria ceased to comply when she stayed past her expiration date.",
		},
		Explanation:        "Maria is currently out of status because she remained after her OPT expired. Although she followed the process for years, the moment she stayed past her expiration date without a new status, she ceased to comply with her visa terms.",
		ConflictType:       domain.ConflictConsistent,
		ConflictText:       "Status matches compliance (both negative).",
		ScaleEstimate:      "Hundreds of thousands",
		ScaleDescription:   "exposed to this pathway over time due to H-1B lottery odds below 50%",
		AffectedPopulation: domain.Population{Low: 100000, High: 300000, Unit: "people over time"},
		Sources: []domain.Source{
			{Title: "DHS SEVIS by the Numbers (2023–2024)", URL: "https://studyinthestates.dhs.gov/2025/06/read-the-2024-sevis-by-the-numbers-report", Description: "~1.58 million active F-1 and M-1 student records"},
			{Title: "USCIS H-1B Registration Data", URL: "https://www.uscis.gov/working-in-the-united-states/h-1b-specialty-occupations", Description: "~350,000+ registrations competing for ~85,000 cap slots annually"},
		},
	},
	{
		ID:       2,
		Title:    "H-1B Layoff",
		Person:   "Arjun",
		Scenario: "Arjun entered the U.S. from India in 2016 on an H-1B work visa. In 2023, his employer conducted layoffs and terminated his position. He was unable to secure a new sponsoring employer within the 60-day grace period. He remained in the U.S. while applying for new positions.",
		Q1: domain.SubQuestion{
			Text:     "Is Arjun currently in the U.S. legally?",
			Answer:   domain.No,
			Feedback: "No, Arjun does not currently have legal status.",
		},
		Q2: domain.SubQuestion{
			Text:     "Did Arjun consistently comply with his visa terms?",
			Answer:   domain.No,
			Feedback: "No, Arjun technically did not comply with the strict employment terms.",
		},
		Explanation:        "Arjun entered legally and worked legally. However, H-1B status strictly requires employment. By staying past the 60-day grace period, he technically violated the terms of his stay, even though the layoff was not his fault.",
		ConflictType:       domain.ConflictConsistent,
		ConflictText:       "Status matches compliance (both negative), despite sympathetic circumstances.",
		ScaleEstimate:      "Tens of thousands",
		ScaleDescription:   "of workers affected, particularly during economic downturns",
		AffectedPopulation: domain.Population{Low: 10000, High: 50000, Unit: "people during downturns"},
		Sources: []domain.Source{
			{Title: "8 CFR §214.1(l) - Grace Period Regulation", URL: "https://www.law.cornell.edu/cfr/text/8/214.1", Description: "Discretionary grace period of up to 60 days"},
			{Title: "USCIS H-1B Characteristics Report (FY 2024)", URL: "https://www.uscis.gov/tools/reports-and-studies", Description: "Concentrated H-1B workforce in layoff-prone sectors"},
		},
	},
	{
		ID:       3,
		Title:    "Marriage-Based Adjustment",
		Person:   "Elena",
		Scenario: "Elena entered the U.S. from Mexico in 2012 on a tourist visa and overstayed. In 2018, she married a U.S. citizen. Her spouse filed an immediate-relative petition and adjustment of status application (I-485). The application has been pending with USCIS for 3 years. She has not left the U.S. during this time.",
		Q1: domain.SubQuestion{
			Text:     "Is Elena currently in the U.S. legally?",
			Answer:   domain.Yes,
			Feedback: "Yes, Elena is currently in a period of authorized stay.",
		},
		Q2: domain.SubQuestion{
			Text:     "Did Elena consistently comply with her visa terms?",
			Answer:   domain.No,
			Feedback: "No, Elena did not comply with her original visitor visa terms.",
		},
		Explanation:        "Elena violated her original visa terms by overstaying in 2012. However, her marriage to a U.S. citizen allowed her to file for adjustment of status, which grants her a period of 'authorized stay' and protection from deportation.",
		ConflictType:       domain.ConflictParadox,
		ConflictText:       "She broke the rules (overstayed) but is now protected legally.",
		ScaleEstimate:      "Hundreds of thousands",
		ScaleDescription:   "of pending family-based adjustment cases",
		AffectedPopulation: domain.Population{Low: 200000, High: 500000, Unit: "pending cases"},
		Sources: []domain.Source{
			{Title: "USCIS Policy Manual - Lawful Status vs Authorized Stay", URL: "https://www.uscis.gov/policy-manual/volume-7-part-b-chapter-3", Description: "Vol. 7, Part B, Ch. 3 explains the legal distinction"},
			{Title: "USCIS Processing Time Reports", URL: "https://egov.uscis.gov/processing-times", Description: "Multi-year pendency in high-volume field offices"},
		},
	},
	{
		ID:       4,
		Title:    "Long Visa Bulletin Backlog",
		Person:   "Chen",
		Scenario: "Chen entered the U.S. from China in 2009 on an H-1B visa. His employer filed an employment-based green card petition the same year. His priority date is not current due to visa bulletin backlogs. He has maintained valid H-1B extensions tied to his employer and lived continuously in the U.S. for 15 years.",
		Q1: domain.SubQuestion{
			Text:     "Is Chen currently in the U.S. legally?",
			Answer:   domain.Yes,
			Feedback: "Yes, Chen currently has legal status.",
		},
		Q2: domain.SubQuestion{
			Text:     "Did Chen consistently comply with his visa terms?",
			Answer:   domain.Yes,
			Feedback: "Yes, Chen has consistently complied with all regulations.",
		},
		Explanation:        "Chen has followed every rule and maintained his H-1B status through valid extensions while waiting for his priority date. He represents the system working as designed, albeit with decade-plus waits.",
		ConflictType:       domain.ConflictConsistent,
		ConflictText:       "Status matches compliance (both positive).",
		ScaleEstimate:      "Tens of thousands",
		ScaleDescription:   "of long-term workers waiting 10-20+ years for green cards",
		AffectedPopulation: domain.Population{Low: 50000, High: 150000, Unit: "people in backlog"},
		Sources: []domain.Source{
			{Title: "U.S. Department of State Visa Bulletin", URL: "https://travel.state.gov/content/travel/en/legal/visa-law0/visa-bulletin.html", Description: "Shows per-country backlogs exceeding 10-20 years"},
			{Title: "Morgan Lewis Visa Bulletin Analyses", URL: "https://www.morganlewis.com/pubs/2025/09/us-department-of-state-releases-october-2025-visa-bulletin", Description: "EB-2 and EB-3 category wait time projections"},
		},
	},
	{
		ID:       5,
		Title:    "Asylum Applicant Pending",
		Person:   "Samuel",
		Scenario: "Samuel entered the U.S. from Cameroon in 2021 on a visitor visa. Within one year, he applied for asylum based on political persecution. His asylum application has not yet been adjudicated. He does not hold any other visa status but has work authorization while the case is pending.",
		Q1: domain.SubQuestion{
			Text:     "Is Samuel currently in the U.S. legally?",
			Answer:   domain.Yes,
			Feedback: "Yes, Samuel is authorized to stay while his case is pending.",
		},
		Q2: domain.SubQuestion{
			Text:     "Did Samuel consistently comply with legal process?",
			Answer:   domain.Yes,
			Feedback: "Yes, Samuel followed the correct legal process for seeking asylum.",
		},
		Explanation:        "Applying for asylum is a legal right. Even though he entered on a visitor visa, applying for asylum within one year is the correct legal process for seeking protection. He is in a period of authorized stay.",
		ConflictType:       domain.ConflictNuanced,
		ConflictText:       "He is following a specific legal pathway that grants protection without a traditional visa.",
		ScaleEstimate:      "Over one million",
		ScaleDescription:   "people with pending asylum applications",
		AffectedPopulation: domain.Population{Low: 1000000, High: 3000000, Unit: "pending applications"},
		Sources: []domain.Source{
			{Title: "American Immigration Council - Asylum Fact Sheet", URL: "https://www.americanimmigrationcouncil.org/fact-sheet/asylum-united-states/", Description: "~1.45 million affirmative asylum applications pending (2024)"},
			{Title: "TRAC Immigration - Asylum Court Backlogs", URL: "https://tracreports.org/reports/766/", Description: "Millions of additional cases pending in immigration court"},
		},
	},
	{
		ID:       6,
		Title:    "Child Aging Out",
		Person:   "Ana",
		Scenario: "Ana entered the U.S. from the Philippines in 2005 with her parents on temporary visas. Her U.S. citizen aunt filed a family-based petition for Ana and her family. Due to visa bulletin backlogs, the petition took over 20 years. Ana turned 21 before a green card became available. She no longer qualifies as a dependent under the petition.",
		Q1: domain.SubQuestion{
			Text:     "Is Ana currently in the U.S. legally?",
			Answer:   domain.No,
			Feedback: "No, Ana sadly does not currently have legal status.",
		},
		Q2: domain.SubQuestion{
			Text:     "Did Ana consistently comply with her visa terms?",
			Answer:   domain.Yes,
			Feedback: "Yes, Ana and her family followed every rule correctly.",
		},
		Explanation:        "This is the 'Aging Out' tragedy. Ana and her family followed the legal process perfectly. However, because the system took so long, she turned 21 and lost her eligibility. She became undocumented through no fault of her own.",
		ConflictType:       domain.ConflictTragedy,
		ConflictText:       "She followed every rule, yet she is now here illegally.",
		ScaleEstimate:      "Thousands",
		ScaleDescription:   "of children and young adults affected over time",
		AffectedPopulation: domain.Population{Low: 5000, High: 20000, Unit: "people over time"},
		Sources: []domain.Source{
			{Title: "USCIS - Child Status Protection Act (CSPA) Guidance", URL: "https://www.uscis.gov/green-card/green-card-processes-and-procedures/child-status-protection-act-cspa", Description: "CSPA mitigates but does not eliminate aging out"},
			{Title: "American Immigration Council - CSPA Analysis", URL: "https://www.americanimmigrationcouncil.org/blog/uscis-updates-key-cspa-interpretation-to-protect-some-immigrant-youth-but-visa-backlogs-continue-to-cause-hardships/", Description: "Aging out is a predictable result of prolonged backlogs"},
		},
	},
}
