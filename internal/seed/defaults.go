package seed

// Default returns the built-in catalogue used when no catalogue file is
// configured.
func Default() *Catalogue {
	return &Catalogue{
		Statements: map[string][]string{
			"current": {"202401", "202402", "202403"},
			"joint":   {"202401", "202402", "202403"},
		},
		Tags: []string{
			"salary",
			"rent",
			"groceries",
			"transport",
			"eating-out",
			"utilities",
			"household",
		},
		Descriptions: []DescriptionRule{
			{Desc: "ACME PAYROLL", Tags: []string{"salary"}},
			{Desc: "CITY LETTINGS LTD", Tags: []string{"rent", "household"}},
			{Desc: "TESCO STORES 3297", Tags: []string{"groceries"}},
			{Desc: "TFL TRAVEL CH", Tags: []string{"transport"}},
			{Desc: "BRITISH GAS", Tags: []string{"utilities", "household"}},
		},
		Expansions: []ExpansionRule{
			{
				Date:    "2024-03-08",
				Desc:    "TESCO STORES 3297",
				Amount:  "-54.20",
				Balance: "1201.55",
				Splits: []Split{
					{Amount: "-38.70", Tags: []string{"groceries"}},
					{Amount: "-15.50", Tags: []string{"household"}},
				},
			},
		},
	}
}
