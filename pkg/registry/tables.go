package registry

// defaultCities is the built-in city table. Order matters: CityKeys
// preserves it for listing pages.
var defaultCities = []City{
	{Name: "London", Country: "UK", Zone: "Europe/London", Lang: LangEN},
	{Name: "New York", Country: "USA", Zone: "America/New_York", Lang: LangEN},
	{Name: "Berlin", Country: "Germany", Zone: "Europe/Berlin", Lang: LangDE},
	{Name: "Paris", Country: "France", Zone: "Europe/Paris", Lang: LangFR},
	{Name: "Tokyo", Country: "Japan", Zone: "Asia/Tokyo", Lang: LangJA},
	{Name: "Mumbai", Country: "India", Zone: "Asia/Kolkata", Lang: LangHI},
	{Name: "Singapore", Country: "Singapore", Zone: "Asia/Singapore", Lang: LangEN},
	{Name: "Sydney", Country: "Australia", Zone: "Australia/Sydney", Lang: LangEN},
	{Name: "San Francisco", Country: "USA", Zone: "America/Los_Angeles", Lang: LangEN},
	{Name: "Toronto", Country: "Canada", Zone: "America/Toronto", Lang: LangEN},
	{Name: "Dubai", Country: "UAE", Zone: "Asia/Dubai", Lang: LangEN},
	{Name: "Chicago", Country: "USA", Zone: "America/Chicago", Lang: LangEN},
	{Name: "Los Angeles", Country: "USA", Zone: "America/Los_Angeles", Lang: LangEN},
	{Name: "Amsterdam", Country: "Netherlands", Zone: "Europe/Amsterdam", Lang: LangEN},
	{Name: "Madrid", Country: "Spain", Zone: "Europe/Madrid", Lang: LangES},
	{Name: "Rome", Country: "Italy", Zone: "Europe/Rome", Lang: LangEN},
	{Name: "Zurich", Country: "Switzerland", Zone: "Europe/Zurich", Lang: LangDE},
	{Name: "Stockholm", Country: "Sweden", Zone: "Europe/Stockholm", Lang: LangEN},
	{Name: "Warsaw", Country: "Poland", Zone: "Europe/Warsaw", Lang: LangEN},
	{Name: "Dublin", Country: "Ireland", Zone: "Europe/Dublin", Lang: LangEN},
	{Name: "Lisbon", Country: "Portugal", Zone: "Europe/Lisbon", Lang: LangPT},
	{Name: "Denver", Country: "USA", Zone: "America/Denver", Lang: LangEN},
	{Name: "Phoenix", Country: "USA", Zone: "America/Phoenix", Lang: LangEN},
	{Name: "Vancouver", Country: "Canada", Zone: "America/Vancouver", Lang: LangEN},
	{Name: "Mexico City", Country: "Mexico", Zone: "America/Mexico_City", Lang: LangES},
	{Name: "São Paulo", Country: "Brazil", Zone: "America/Sao_Paulo", Lang: LangPT},
	{Name: "Buenos Aires", Country: "Argentina", Zone: "America/Buenos_Aires", Lang: LangES},
	{Name: "Hong Kong", Country: "Hong Kong", Zone: "Asia/Hong_Kong", Lang: LangEN},
	{Name: "Seoul", Country: "South Korea", Zone: "Asia/Seoul", Lang: LangEN},
	{Name: "Shanghai", Country: "China", Zone: "Asia/Shanghai", Lang: LangEN},
	{Name: "Bangkok", Country: "Thailand", Zone: "Asia/Bangkok", Lang: LangEN},
	{Name: "Jakarta", Country: "Indonesia", Zone: "Asia/Jakarta", Lang: LangEN},
	{Name: "Manila", Country: "Philippines", Zone: "Asia/Manila", Lang: LangEN},
	{Name: "Kuala Lumpur", Country: "Malaysia", Zone: "Asia/Kuala_Lumpur", Lang: LangEN},
	{Name: "Johannesburg", Country: "South Africa", Zone: "Africa/Johannesburg", Lang: LangEN},
	{Name: "Nairobi", Country: "Kenya", Zone: "Africa/Nairobi", Lang: LangEN},
	{Name: "Melbourne", Country: "Australia", Zone: "Australia/Melbourne", Lang: LangEN},
	{Name: "Auckland", Country: "New Zealand", Zone: "Pacific/Auckland", Lang: LangEN},
}

// defaultTimezones is the timezone picker list shown in the UI.
var defaultTimezones = []TimezoneOption{
	{Zone: "Europe/London", Label: "London (UK)"},
	{Zone: "Europe/Paris", Label: "Paris (France)"},
	{Zone: "Europe/Berlin", Label: "Berlin (Germany)"},
	{Zone: "America/New_York", Label: "New York (USA)"},
	{Zone: "America/Chicago", Label: "Chicago (USA)"},
	{Zone: "America/Los_Angeles", Label: "Los Angeles (USA)"},
	{Zone: "America/Toronto", Label: "Toronto (Canada)"},
	{Zone: "Asia/Dubai", Label: "Dubai (UAE)"},
	{Zone: "Asia/Kolkata", Label: "Kolkata (India)"},
	{Zone: "Asia/Singapore", Label: "Singapore"},
	{Zone: "Asia/Tokyo", Label: "Tokyo (Japan)"},
	{Zone: "Australia/Sydney", Label: "Sydney (Australia)"},
}
