package scenario

// basePairs are the hand-picked flagship comparisons, in authored order.
var basePairs = [][2]string{
	{"london", "new-york"},
	{"london", "berlin"},
	{"london", "paris"},
	{"london", "tokyo"},
	{"london", "sydney"},
	{"london", "singapore"},
	{"new-york", "berlin"},
	{"new-york", "tokyo"},
	{"new-york", "sydney"},
	{"new-york", "singapore"},
	{"new-york", "san-francisco"},
	{"berlin", "tokyo"},
	{"berlin", "sydney"},
	{"paris", "new-york"},
	{"paris", "tokyo"},
	{"tokyo", "sydney"},
	{"tokyo", "singapore"},
	{"singapore", "sydney"},
	{"san-francisco", "singapore"},
	{"san-francisco", "tokyo"},
	{"toronto", "london"},
	{"toronto", "new-york"},
	{"dubai", "london"},
	{"dubai", "new-york"},
	{"mumbai", "london"},
	{"mumbai", "new-york"},
}

// baseTriads keep their narrative order in slugs and titles.
var baseTriads = [][3]string{
	{"london", "new-york", "tokyo"},
	{"london", "new-york", "sydney"},
	{"london", "new-york", "singapore"},
	{"london", "berlin", "tokyo"},
	{"new-york", "tokyo", "sydney"},
	{"san-francisco", "singapore", "tokyo"},
	{"london", "paris", "berlin"},
	{"new-york", "toronto", "chicago"},
}

// Region groups used by the programmatic cross joins.
var (
	topCities = []string{
		"london", "new-york", "san-francisco", "tokyo", "singapore",
		"sydney", "berlin", "paris", "dubai", "mumbai", "hong-kong",
		"seoul", "shanghai", "amsterdam", "madrid",
	}

	europeCities = []string{
		"london", "berlin", "paris", "amsterdam", "madrid", "rome",
		"zurich", "stockholm", "warsaw", "dublin", "lisbon",
	}

	usCities = []string{
		"new-york", "san-francisco", "chicago", "los-angeles", "denver", "phoenix",
	}

	asiaCities = []string{
		"tokyo", "singapore", "hong-kong", "seoul", "shanghai", "bangkok",
		"jakarta", "manila", "kuala-lumpur", "mumbai", "dubai",
	}

	latamCities = []string{"mexico-city", "sao-paulo", "buenos-aires"}
)

// supplementalPairs fill in popular routes the cross joins miss.
var supplementalPairs = [][2]string{
	{"amsterdam", "london"},
	{"london", "madrid"},
	{"london", "rome"},
	{"london", "zurich"},
	{"london", "stockholm"},
	{"london", "warsaw"},
	{"dublin", "london"},
	{"lisbon", "london"},
	{"hong-kong", "london"},
	{"london", "seoul"},
	{"amsterdam", "new-york"},
	{"madrid", "new-york"},
	{"hong-kong", "new-york"},
	{"new-york", "seoul"},
	{"new-york", "shanghai"},
	{"denver", "new-york"},
	{"new-york", "vancouver"},
	{"mexico-city", "new-york"},
	{"new-york", "sao-paulo"},
	{"hong-kong", "san-francisco"},
	{"san-francisco", "shanghai"},
	{"san-francisco", "seoul"},
	{"san-francisco", "vancouver"},
	{"hong-kong", "tokyo"},
	{"seoul", "tokyo"},
	{"shanghai", "tokyo"},
	{"bangkok", "tokyo"},
	{"hong-kong", "singapore"},
	{"jakarta", "singapore"},
	{"manila", "singapore"},
	{"kuala-lumpur", "singapore"},
	{"hong-kong", "sydney"},
	{"auckland", "sydney"},
	{"melbourne", "sydney"},
	{"dubai", "hong-kong"},
	{"dubai", "singapore"},
	{"mumbai", "singapore"},
	{"hong-kong", "mumbai"},
	{"johannesburg", "london"},
	{"johannesburg", "new-york"},
	{"london", "nairobi"},
	{"dubai", "nairobi"},
}

// supplementalTriads are common three-region setups.
var supplementalTriads = [][3]string{
	{"london", "new-york", "hong-kong"},
	{"london", "new-york", "singapore"},
	{"london", "new-york", "tokyo"},
	{"london", "new-york", "sydney"},
	{"london", "new-york", "dubai"},
	{"london", "new-york", "mumbai"},
	{"london", "new-york", "amsterdam"},
	{"london", "new-york", "madrid"},
	{"london", "paris", "amsterdam"},
	{"london", "berlin", "amsterdam"},
	{"london", "paris", "madrid"},
	{"london", "paris", "rome"},
	{"london", "berlin", "zurich"},
	{"new-york", "london", "tokyo"},
	{"new-york", "london", "singapore"},
	{"new-york", "san-francisco", "tokyo"},
	{"new-york", "san-francisco", "hong-kong"},
	{"new-york", "san-francisco", "singapore"},
	{"new-york", "san-francisco", "london"},
	{"san-francisco", "new-york", "tokyo"},
	{"san-francisco", "new-york", "hong-kong"},
	{"san-francisco", "tokyo", "singapore"},
	{"san-francisco", "tokyo", "hong-kong"},
	{"tokyo", "singapore", "hong-kong"},
	{"tokyo", "singapore", "sydney"},
	{"tokyo", "hong-kong", "seoul"},
	{"tokyo", "hong-kong", "shanghai"},
	{"singapore", "hong-kong", "sydney"},
	{"london", "amsterdam", "stockholm"},
	{"london", "dublin", "paris"},
	{"paris", "amsterdam", "zurich"},
	{"berlin", "amsterdam", "stockholm"},
	{"mexico-city", "new-york", "sao-paulo"},
	{"mexico-city", "new-york", "buenos-aires"},
	{"sao-paulo", "new-york", "london"},
	{"dubai", "london", "singapore"},
	{"dubai", "singapore", "hong-kong"},
	{"johannesburg", "london", "dubai"},
	{"sydney", "melbourne", "auckland"},
	{"tokyo", "seoul", "shanghai"},
	{"hong-kong", "singapore", "jakarta"},
	{"london", "warsaw", "stockholm"},
	{"new-york", "toronto", "vancouver"},
	{"san-francisco", "toronto", "vancouver"},
}
