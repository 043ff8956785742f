package lookup

// Options holds the static lists the frontend renders as dropdowns. The
// nationality list doubles as the validator's lookup table.
type Options struct {
	Genders         []string `json:"genders"`
	MaritalStatuses []string `json:"maritalStatuses"`
	Departments     []string `json:"departments"`
	Nationalities   []string `json:"nationalities"`
}

var defaultOptions = Options{
	Genders:         []string{"male", "female", "other"},
	MaritalStatuses: []string{"single", "married", "divorced", "widowed"},
	Departments:     []string{"hr", "engineering", "marketing", "sales", "finance", "operations"},
	Nationalities: []string{
		"afghan", "albanian", "algerian", "american", "andorran", "angolan", "antiguans",
		"argentinean", "armenian", "australian", "austrian", "azerbaijani", "bahamian",
		"bahraini", "bangladeshi", "barbadian", "barbudans", "batswana", "belarusian",
		"belgian", "belizean", "beninese", "bhutanese", "bolivian", "bosnian", "brazilian",
		"british", "bruneian", "bulgarian", "burkinabe", "burmese", "burundian", "cambodian",
		"cameroonian", "canadian", "cape verdean", "central african", "chadian", "chilean",
		"chinese", "colombian", "comoran", "congolese", "costa rican", "croatian", "cuban",
		"cypriot", "czech", "danish", "djibouti", "dominican", "dutch", "east timorese",
		"ecuadorean", "egyptian", "emirian", "equatorial guinean", "eritrean", "estonian",
		"ethiopian", "fijian", "filipino", "finnish", "french", "gabonese", "gambian",
		"georgian", "german", "ghanaian", "greek", "grenadian", "guatemalan", "guinea-bissauan",
		"guinean", "guyanese", "haitian", "herzegovinian", "honduran", "hungarian", "icelander",
		"indian", "indonesian", "iranian", "iraqi", "irish", "israeli", "italian", "ivorian",
		"jamaican", "japanese", "jordanian", "kazakhstani", "kenyan", "kittian and nevisian",
		"kuwaiti", "kyrgyz", "laotian", "latvian", "lebanese", "liberian", "libyan",
		"liechtensteiner", "lithuanian", "luxembourger", "macedonian", "malagasy", "malawian",
		"malaysian", "maldivan", "malian", "maltese", "marshallese", "mauritanian", "mauritian",
		"mexican", "micronesian", "moldovan", "monacan", "mongolian", "moroccan", "mosotho",
		"motswana", "mozambican", "namibian", "nauruan", "nepalese", "new zealander",
		"ni-vanuatu", "nicaraguan", "nigerien", "nigerian", "north korean", "northern irish",
		"norwegian", "omani", "pakistani", "palauan", "palestinian", "panamanian",
		"papua new guinean", "paraguayan", "peruvian", "polish", "portuguese", "qatari",
		"romanian", "russian", "rwandan", "saint lucian", "salvadoran", "samoan",
		"san marinese", "sao tomean", "saudi", "scottish", "senegalese", "serbian",
		"seychellois", "sierra leonean", "singaporean", "slovakian", "slovenian",
		"solomon islander", "somali", "south african", "south korean", "spanish",
		"sri lankan", "sudanese", "surinamer", "swazi", "swedish", "swiss", "syrian",
		"taiwanese", "tajik", "tanzanian", "thai", "togolese", "tongan", "trinidadian",
		"tunisian", "turkish", "tuvaluan", "ugandan", "ukrainian", "uruguayan", "uzbekistani",
		"venezuelan", "vietnamese", "welsh", "yemenite", "zambian", "zimbabwean",
	},
}

// DefaultOptions returns a copy so callers cannot mutate the shared lists.
func DefaultOptions() Options {
	return Options{
		Genders:         append([]string(nil), defaultOptions.Genders...),
		MaritalStatuses: append([]string(nil), defaultOptions.MaritalStatuses...),
		Departments:     append([]string(nil), defaultOptions.Departments...),
		Nationalities:   append([]string(nil), defaultOptions.Nationalities...),
	}
}
