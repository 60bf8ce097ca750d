package rules

// Default returns the built-in rule tables. Each call returns a fresh copy so callers
// may treat the result as their own immutable value.
func Default() *RuleSet {
	return &RuleSet{
		Criteria: []Criterion{
			{
				Name:        "sustainability",
				Weight:      0.25,
				Keywords:    []string{"green", "solar", "eco", "sustainable", "renewable", "efficient", "leed", "carbon", "energy"},
				Description: "ENVIRONMENTAL CONSCIOUSNESS AND RESOURCE EFFICIENCY",
				Recommendations: []string{
					"ENHANCE ENERGY EFFICIENCY STRATEGIES",
					"INCORPORATE MORE SUSTAINABLE MATERIALS",
					"IMPROVE WATER CONSERVATION MEASURES",
				},
			},
			{
				Name:        "functionality",
				Weight:      0.20,
				Keywords:    []string{"function", "purpose", "use", "practical", "workflow", "circulation", "program"},
				Description: "HOW WELL THE DESIGN SERVES ITS INTENDED PURPOSE",
				Recommendations: []string{
					"OPTIMIZE SPATIAL PROGRAM RELATIONSHIPS",
					"IMPROVE CIRCULATION EFFICIENCY",
					"ENHANCE USER EXPERIENCE THROUGH BETTER PROGRAMMING",
				},
			},
			{
				Name:        "aesthetics",
				Weight:      0.15,
				Keywords:    []string{"beautiful", "elegant", "stunning", "artistic", "visual", "proportions", "harmony"},
				Description: "VISUAL APPEAL AND ARTISTIC MERIT",
				Recommendations: []string{
					"REFINE FORMAL COMPOSITION",
					"IMPROVE VISUAL HIERARCHY",
					"STRENGTHEN MATERIAL PALETTE COHERENCE",
				},
			},
			{
				Name:        "innovation",
				Weight:      0.15,
				Keywords:    []string{"innovative", "unique", "creative", "novel", "cutting-edge", "experimental", "breakthrough"},
				Description: "ORIGINALITY AND FORWARD-THINKING DESIGN",
				Recommendations: []string{
					"EXPLORE MORE GROUNDBREAKING SOLUTIONS",
					"PUSH TECHNOLOGICAL BOUNDARIES FURTHER",
					"DEVELOP MORE ORIGINAL DESIGN CONCEPTS",
				},
			},
			{
				Name:        "context",
				Weight:      0.10,
				Keywords:    []string{"site", "location", "context", "surroundings", "neighborhood", "culture", "history"},
				Description: "RELATIONSHIP TO SITE AND CULTURAL CONTEXT",
				Recommendations: []string{
					"STRENGTHEN SITE-SPECIFIC RESPONSE",
					"IMPROVE CULTURAL SENSITIVITY",
					"ENHANCE HISTORICAL CONTEXT INTEGRATION",
				},
			},
			{
				Name:        "accessibility",
				Weight:      0.10,
				Keywords:    []string{"accessible", "universal", "inclusive", "barrier-free", "ada", "mobility", "disability"},
				Description: "DESIGN FOR ALL USERS REGARDLESS OF ABILITY",
				Recommendations: []string{
					"IMPROVE UNIVERSAL DESIGN FEATURES",
					"ENHANCE ACCESSIBILITY COMPLIANCE",
					"OPTIMIZE INCLUSIVE DESIGN ELEMENTS",
				},
			},
			{
				Name:        "economics",
				Weight:      0.05,
				Keywords:    []string{"cost", "budget", "affordable", "value", "economic", "efficient", "roi"},
				Description: "COST EFFECTIVENESS AND ECONOMIC VIABILITY",
				Recommendations: []string{
					"IMPROVE COST-EFFECTIVENESS",
					"OPTIMIZE BUDGET ALLOCATION",
					"ENHANCE VALUE ENGINEERING",
				},
			},
		},
		Styles: []Style{
			{Name: "modernist", Bonus: 7, Keywords: []string{"clean", "minimal", "geometric", "glass", "steel", "concrete", "bauhaus"},
				Description: "EMPHASIZES FUNCTIONAL RATIONALISM AND MATERIAL HONESTY"},
			{Name: "postmodern", Bonus: 5, Keywords: []string{"eclectic", "playful", "colorful", "ironic", "mixed", "decorative"},
				Description: "CELEBRATES PLURALISM AND HISTORICAL REFERENCE"},
			{Name: "brutalist", Bonus: 5, Keywords: []string{"concrete", "raw", "massive", "monolithic", "fortress", "heavy"},
				Description: "CHAMPIONS RAW CONCRETE AND MONUMENTAL SCALE"},
			{Name: "deconstructivist", Bonus: 5, Keywords: []string{"fragmented", "angular", "twisted", "unconventional", "dynamic"},
				Description: "CHALLENGES TRADITIONAL GEOMETRIC ASSUMPTIONS"},
			{Name: "sustainable", Bonus: 6, Keywords: []string{"green", "eco", "solar", "passive", "renewable", "efficient"},
				Description: "PRIORITIZES ENVIRONMENTAL RESPONSIBILITY"},
			{Name: "classical", Bonus: 5, Keywords: []string{"columns", "symmetry", "proportion", "order", "traditional", "timeless"},
				Description: "ADHERES TO TIMELESS PROPORTIONAL SYSTEMS"},
			{Name: "vernacular", Bonus: 5, Keywords: []string{"local", "traditional", "cultural", "indigenous", "regional", "contextual"},
				Description: "RESPONDS TO LOCAL CULTURAL CONDITIONS"},
		},
		CoOccurrences: []CoOccurrence{
			{Keyword: "concrete", With: "raw", Points: 3},
			{Keyword: "green", With: "eco", Points: 2},
		},
		TechnicalTerms: []string{
			"fenestration", "cantilever", "facade", "atrium", "portico", "clerestory",
			"curtain wall", "load-bearing", "post-tensioned", "thermal bridge",
			"daylighting", "ventilation", "hvac", "sustainability", "leed",
			"circulation", "zoning", "programming", "massing", "articulation",
		},
		PositiveWords:        []string{"excellent", "beautiful", "innovative", "stunning", "brilliant", "masterful", "exceptional"},
		NegativeWords:        []string{"poor", "ugly", "failed", "lacking", "insufficient", "problematic", "weak"},
		ConceptualIndicators: []string{"concept", "philosophy", "theory", "principle", "ideology", "vision", "paradigm"},
		Jargon: []JargonCategory{
			{Name: "spatial", Phrases: []string{"volumetric composition", "spatial hierarchy", "circulation patterns", "programmatic organization"}},
			{Name: "material", Phrases: []string{"materiality", "tectonic expression", "surface articulation", "material palette"}},
			{Name: "light", Phrases: []string{"daylighting strategies", "luminous environment", "solar orientation", "artificial illumination"}},
			{Name: "structure", Phrases: []string{"structural expression", "load-bearing systems", "tectonic honesty", "constructional logic"}},
			{Name: "form", Phrases: []string{"formal language", "compositional strategy", "morphological approach", "geometric paradigm"}},
		},
		Templates: Templates{
			Positive: []string{
				"DEMONSTRATES EXCEPTIONAL {aspect} THROUGH {detail}",
				"SHOWS MASTERFUL UNDERSTANDING OF {aspect} WITH {detail}",
				"BRILLIANTLY INTEGRATES {aspect} BY {detail}",
				"ACHIEVES REMARKABLE {aspect} THROUGH INNOVATIVE {detail}",
			},
			Negative: []string{
				"LACKS CONSIDERATION FOR {aspect}, PARTICULARLY IN {detail}",
				"SHOWS WEAKNESS IN {aspect}, ESPECIALLY REGARDING {detail}",
				"MISSES OPPORTUNITY TO ENHANCE {aspect} THROUGH {detail}",
				"DEMONSTRATES INSUFFICIENT ATTENTION TO {aspect} IN {detail}",
			},
			Neutral: []string{
				"ADDRESSES {aspect} ADEQUATELY THROUGH {detail}",
				"SHOWS STANDARD APPROACH TO {aspect} WITH {detail}",
				"DEMONSTRATES COMPETENT HANDLING OF {aspect} VIA {detail}",
			},
		},
		References: []Reference{
			{Name: "LE CORBUSIER", Score: 95},
			{Name: "MIES VAN DER ROHE", Score: 93},
			{Name: "FRANK LLOYD WRIGHT", Score: 97},
			{Name: "ZAHA HADID", Score: 92},
			{Name: "REM KOOLHAAS", Score: 88},
			{Name: "TADAO ANDO", Score: 90},
			{Name: "ALVAR AALTO", Score: 89},
		},
	}
}
