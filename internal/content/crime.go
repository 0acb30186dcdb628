package content

import "perception-quiz-service/internal/domain"

var crimeQuestions = []domain.QuestionItem{
	{
		ID:       1,
		Category: "Incarceration Rates",
		Prompt:   "Compared to native-born U.S. citizens, how likely are immigrants to be incarcerated?",
		Context:  "Based on a 150-year longitudinal study by the National Bureau of Economic Research (NBER) analyzing Census data from 1870-2020.",
		Options: []domain.Option{
			{Label: "Much less likely (60%+ lower)", Value: "much-lower", Correct: true},
			{Label: "Somewhat less likely", Value: "somewhat-lower"},
			{Label: "About the same", Value: "same"},
			{Label: "Somewhat more likely", Value: "somewhat-higher"},
			{Label: "Much more likely (2x or higher)", Value: "much-higher"},
		},
		CorrectAnswer: "much-lower",
		ActualData:    "60% less likely",
		Explanation:   "As of 2020 Census data, immigrants are 60% less likely to be incarcerated than native-born U.S. citizens. This gap persists across all major sending regions, including Mexico and Central America. Even when comparing only low-education cohorts (those most economically marginalized), the immigrant incarceration rate is significantly lower.",
		Reflection:    "If this pattern has held for 150 years, what sources shaped your initial impression? How often do you encounter this statistic in news coverage?",
		Surprise:      domain.SurpriseHigh,
		Sources: []domain.Source{
			{Title: "NBER: The Incarceration Gap Between Immigrants and the US-born, 1870–2020", URL: "https://www.nber.org/papers/w31440"},
			{Title: "American Economic Association Publication", URL: "https://www.aeaweb.org/articles?id=10.1257/aeri.20230459"},
		},
	},
	{
		ID:       2,
		Category: "Texas Homicide Data",
		Prompt:   "In Texas (2013-2022), what was the homicide conviction rate for undocumented immigrants compared to native-born citizens?",
		Context:  "Texas is the only state that systematically cross-references every arrestee's fingerprints against DHS databases, allowing direct comparison by legal status.",
		Options: []domain.Option{
			{Label: "Higher than native-born rate", Value: "higher"},
			{Label: "About the same as native-born", Value: "same"},
			{Label: "Slightly lower (10-15%)", Value: "slightly-lower"},
			{Label: "Moderately lower (26%)", Value: "moderately-lower", Correct: true},
			{Label: "Much lower (50%+)", Value: "much-lower"},
		},
		CorrectAnswer: "moderately-lower",
		ActualData:    "26% lower (2.2 vs 3.0 per 100,000)",
		Explanation:   "The homicide conviction rate for native-born Texans was 3.0 per 100,000. For undocumented immigrants, it was 2.2 per 100,000, meaning an undocumented individual in Texas is approximately 26% less likely to be convicted of homicide than a native-born citizen. Legal immigrants had the lowest rate at 1.2 per 100,000.",
		Reflection:    "Texas publishes this data publicly. Why might this finding receive less media attention than individual high-profile crimes?",
		Surprise:      domain.SurpriseHigh,
		Sources: []domain.Source{
			{Title: "Cato Institute: Illegal Immigrant Murderers in Texas, 2013–2022", URL: "https://www.cato.org/policy-analysis/illegal-immigrant-murderers-texas-2013-2022"},
			{Title: "Texas DPS Criminal Illegal Noncitizen Data", URL: "https://www.dps.texas.gov/section/crime-records/texas-criminal-illegal-noncitizen-data"},
		},
	},
	{
		ID:       3,
		Category: "NYC Migrant Influx",
		Prompt:   "New York City received 170,000+ migrants between 2022-2024. What happened to violent crime rates during this period?",
		Context:  "This was the largest migrant influx to NYC in recent history, straining city resources and generating intense media coverage.",
		Options: []domain.Option{
			{Label: "Violent crime surged significantly", Value: "surged"},
			{Label: "Violent crime decreased", Value: "decreased", Correct: true},
			{Label: "Violent crime increased moderately", Value: "increased"},
			{Label: "Violent crime stayed about the same", Value: "same"},
		},
		CorrectAnswer: "decreased",
		ActualData:    "Murders and shootings dropped by double digits",
		Explanation:   "Contrary to the 'migrant crime wave' narrative, NYPD data shows that during the peak of the migrant influx (2023–2024), major violent crime categories trended downward. Murders and shootings dropped by double digits compared to 2022 levels. Crime near migrant shelters represented less than 1% of the city's total crime volume.",
		Reflection:    "The phrase 'migrant crime wave' appeared frequently in headlines during this period. How do editorial choices about which stories to emphasize shape public perception?",
		Surprise:      domain.SurpriseHigh,
		Sources: []domain.Source{
			{Title: "Brennan Center: 2025 Trends in Crime and Safety in New York City", URL: "https://www.brennancenter.org/our-work/research-reports/2025-trends-crime-and-safety-new-york-city"},
			{Title: "John Jay College Research", URL: "https://johnjayrec.nyc/2024/02/15/nytimes20240215/"},
		},
	},
	{
		ID:       4,
		Category: "Chicago Crime Trends",
		Prompt:   "Chicago received 35,000+ migrants during 2022-2024. How did homicide rates change?",
		Context:  "Chicago has struggled with gun violence for decades. Critics predicted the migrant influx would worsen the situation.",
		Options: []domain.Option{
			{Label: "Homicides decreased (~16%)", Value: "decreased", Correct: true},
			{Label: "Homicides increased significantly", Value: "increased-sig"},
			{Label: "Homicides stayed about the same", Value: "same"},
			{Label: "Homicides increased slightly", Value: "increased-slight"},
		},
		CorrectAnswer: "decreased",
		ActualData:    "Homicides down ~16%, shootings down 30%+",
		Explanation:   "Far from causing a crime wave, the period of highest migrant arrival coincided with a historic drop in violence. By the end of 2024, homicides in Chicago were down roughly 16%, and shootings had decreased by over 30%, reaching their lowest levels since 2019.",
		Reflection:    "When predictions of disaster don't materialize, how often do those who made the predictions revisit them publicly?",
		Surprise:      domain.SurpriseHigh,
		Sources: []domain.Source{
			{Title: "University of Chicago Crime Lab: 2024 End-of-Year Analysis", URL: "https://crimelab.uchicago.edu/resources/2024-end-of-year-analysis-chicago-crime-trends/"},
			{Title: "Chicago Police Department: 2024 in Review", URL: "https://www.chicagopolice.org/wp-content/uploads/2024-in-Review.pdf"},
		},
	},
	{
		ID:       5,
		Category: "Federal Prosecutions",
		Prompt:   "What percentage of noncitizens sentenced in federal courts (2018-2023) were convicted of immigration violations specifically?",
		Context:  "Immigration violations (illegal entry, reentry) are crimes that, by definition, can only be committed by noncitizens.",
		Options: []domain.Option{
			{Label: "About 25%", Value: "25"},
			{Label: "About 40%", Value: "40"},
			{Label: "About 76%", Value: "76", Correct: true},
			{Label: "About 55%", Value: "55"},
		},
		CorrectAnswer: "76",
		ActualData:    "76% were immigration violations",
		Explanation:   "In federal courts, 'immigrant crime' is largely a tautology. 76% of noncitizens sentenced in federal courts were convicted of immigration violations, crimes that by definition can only be committed by noncitizens. This statistic is often cited to show high 'immigrant criminality' without acknowledging that these are status-based offenses, not violent or property crimes.",
		Reflection:    "When you hear statistics about 'crimes committed by immigrants,' do you typically learn whether those are violent crimes, property crimes, or immigration paperwork violations?",
		Surprise:      domain.SurpriseMedium,
		Sources: []domain.Source{
			{Title: "U.S. Sentencing Commission: Federally Sentenced Non-U.S. Citizens", URL: "https://www.ussc.gov/research/quick-facts/federally-sentenced-non-us-citizens"},
		},
	},
	{
		ID:       6,
		Category: "ICE Detention",
		Prompt:   "As of January 2026, what percentage of people in ICE detention had NO criminal convictions (excluding immigration violations)?",
		Context:  "ICE arrests increased significantly in late 2025 following policy changes.",
		Options: []domain.Option{
			{Label: "About 20%", Value: "20"},
			{Label: "About 73%", Value: "73", Correct: true},
			{Label: "About 40%", Value: "40"},
			{Label: "About 55%", Value: "55"},
		},
		CorrectAnswer: "73",
		ActualData:    "73% had no criminal convictions",
		Explanation:   "By January 2026, 73% of individuals booked into ICE detention had no criminal convictions (excluding immigration violations). Only 5% had violent crime convictions. This represents a dramatic shift from late 2024, when enforcement focused more on individuals with criminal records. Rising 'criminal alien' arrest numbers increasingly reflect enforcement of civil violations, not dangerous criminality.",
		Reflection:    "Headlines often report rising 'criminal alien arrests' without this breakdown. What impression does that create, and is it accurate?",
		Surprise:      domain.SurpriseHigh,
		Sources: []domain.Source{
			{Title: "Cato Institute: ICE Detainee Conviction Analysis", URL: "https://www.cato.org/blog/5-ice-detainees-have-violent-convictions-73-no-convictions"},
			{Title: "FactCheck.org: ICE Arrest Analysis", URL: "https://www.factcheck.org/2026/01/as-ice-arrests-increased-a-higher-portion-had-no-u-s-criminal-record/"},
		},
	},
	{
		ID:       7,
		Category: "Victimization Rates",
		Prompt:   "Compared to native-born Americans, how likely are immigrants to be victims of violent crime?",
		Context:  "Based on National Crime Victimization Survey (NCVS) data from 2017-2023.",
		Options: []domain.Option{
			{Label: "44% less likely to be victims", Value: "less", Correct: true},
			{Label: "About equally likely to be victims", Value: "equal"},
			{Label: "Somewhat more likely to be victims", Value: "somewhat-more"},
			{Label: "Much more likely to be victims", Value: "much-more"},
		},
		CorrectAnswer: "less",
		ActualData:    "44% less likely to be victims",
		Explanation:   "Immigrants are 44% less likely to be victims of violent crime than native-born Americans. This challenges the assumption that immigrant communities are hotbeds of disorder. However, aggressive immigration enforcement can create a 'chilling effect' where immigrants stop reporting crimes, potentially making this safety advantage fragile.",
		Reflection:    "If immigrant neighborhoods are actually safer, why might some people perceive them as dangerous? What shapes those perceptions?",
		Surprise:      domain.SurpriseMedium,
		Sources: []domain.Source{
			{Title: "Cato Institute: Immigrants Cut Victimization Rates, Boost Crime Reporting", URL: "https://www.cato.org/policy-analysis/immigrants-cut-victimization-rates-boost-crime-reporting"},
		},
	},
	{
		ID:       8,
		Category: "Arizona Prison Data",
		Prompt:   "In Arizona, non-citizens make up about 13% of the population. What percentage of the state prison population are non-citizens?",
		Context:  "Arizona Department of Corrections tracks citizenship status of inmates.",
		Options: []domain.Option{
			{Label: "About 20% (overrepresented)", Value: "20"},
			{Label: "About 13% (proportional)", Value: "13"},
			{Label: "About 6.8% (significantly under)", Value: "6.8", Correct: true},
			{Label: "About 10% (slightly under)", Value: "10"},
		},
		CorrectAnswer: "6.8",
		ActualData:    "6.8% of prison population",
		Explanation:   "Non-citizens make up approximately 6.8% of Arizona's state prison population, despite comprising about 13% of the state's population. This significant underrepresentation directly contradicts claims that immigrants are disproportionately criminal.",
		Reflection:    "This data is publicly available from Arizona's government. Have you ever seen it cited in debates about immigration policy?",
		Surprise:      domain.SurpriseMedium,
		Sources: []domain.Source{
			{Title: "Arizona Dept. of Corrections Monthly Data Report (Dec 2024)", URL: "https://corrections.az.gov/sites/default/files/2025-01/ADCRR_MDR%20-%20December%202024_FINAL.pdf"},
		},
	},
	{
		ID:       9,
		Category: "Historical Patterns",
		Prompt:   "In the early 1900s, which immigrant group was widely portrayed in American media as inherently criminal and a threat to public safety?",
		Context:  "Newspapers and political cartoons of the era frequently associated this group with organized crime, violence, and moral degeneracy.",
		Options: []domain.Option{
			{Label: "Italian and Irish immigrants", Value: "italian-irish", Correct: true},
			{Label: "German immigrants", Value: "german"},
			{Label: "Scandinavian immigrants", Value: "scandinavian"},
			{Label: "British immigrants", Value: "british"},
		},
		CorrectAnswer: "italian-irish",
		ActualData:    "Italian and Irish immigrants faced intense criminalization",
		Explanation:   "Italian and Irish immigrants were subjected to the same 'criminal immigrant' narrative now applied to Latino immigrants. Newspapers ran stories about 'Italian crime waves,' politicians warned of the 'Irish menace,' and restrictive laws were passed. Research later showed these groups had similar or lower crime rates than native-born Americans, the same pattern we see today.",
		Reflection:    "The specific group changes, but the narrative structure remains remarkably consistent across centuries. Why might this pattern repeat?",
		Surprise:      domain.SurpriseMedium,
		Sources: []domain.Source{
			{Title: "Harvard Political Review: The History of Immigrant Criminalization", URL: "https://harvardpolitics.com/the-history-of-immigrant-criminalization/"},
			{Title: "NBER: Immigration and Crime (Historical Analysis)", URL: "https://www.nber.org/papers/w31440"},
		},
	},
	{
		ID:       10,
		Category: "Media Coverage",
		Prompt:   "Studies of television news coverage find that crimes committed by immigrants receive how much more coverage than comparable crimes by native-born citizens?",
		Context:  "Researchers analyzed local and national TV news coverage, comparing airtime given to similar crimes based on perpetrator background.",
		Options: []domain.Option{
			{Label: "About the same coverage", Value: "same"},
			{Label: "4-6x more coverage", Value: "4-6x", Correct: true},
			{Label: "Slightly less coverage", Value: "less"},
			{Label: "2-3x more coverage", Value: "2-3x"},
		},
		CorrectAnswer: "4-6x",
		ActualData:    "4-6x more coverage for immigrant perpetrators",
		Explanation:   "Multiple media studies have found that crimes committed by immigrants, particularly undocumented immigrants, receive dramatically disproportionate news coverage. This 'availability heuristic' effect means that even though immigrant crime is statistically less common, it feels more common because each instance is more memorable and widely reported.",
		Reflection:    "If your news sources cover certain crimes more than others, how might that affect your sense of how common those crimes are?",
		Surprise:      domain.SurpriseHigh,
		Sources: []domain.Source{
			{Title: "Journal of Ethnic and Migration Studies: Media Coverage Analysis", URL: "https://www.tandfonline.com/doi/full/10.1080/1369183X.2019.1622824"},
			{Title: "Pew Research: News Coverage and Public Perception", URL: "https://www.pewresearch.org/journalism/"},
		},
	},
	{
		ID:       11,
		Category: "Enforcement Economics",
		Prompt:   "What is the approximate cost to U.S. taxpayers to detain one person in ICE custody for one year?",
		Context:  "ICE detention costs include housing, food, medical care, security, transportation, and administrative overhead.",
		Options: []domain.Option{
			{Label: "About $15,000", Value: "15k"},
			{Label: "About $45,000", Value: "45k"},
			{Label: "About $30,000", Value: "30k"},
			{Label: "About $60,000", Value: "60k", Correct: true},
		},
		CorrectAnswer: "60k",
		ActualData:    "~$60,000 per detainee per year",
		Explanation:   "ICE detention costs approximately $150-170 per day per person, totaling around $55,000-$62,000 annually. With detention populations expanding, this represents billions in contracts, primarily to private prison companies. When 73% of detainees have no criminal record, the question becomes: what public safety benefit justifies this expenditure?",
		Reflection:    "Private detention companies are among the largest donors to politicians who advocate for expanded enforcement. How might financial incentives shape policy priorities?",
		Surprise:      domain.SurpriseMedium,
		Sources: []domain.Source{
			{Title: "American Immigration Council: The Cost of Immigration Detention", URL: "https://www.americanimmigrationcouncil.org/research/cost-immigration-detention"},
			{Title: "DHS Budget Allocation Reports", URL: "https://www.dhs.gov/publication/budget-fiscal-year-2025"},
		},
	},
}
