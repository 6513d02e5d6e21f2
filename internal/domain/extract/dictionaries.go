package extract

// category pairs a target value with the keywords that vote for it.
// Declaration order matters: on a hit-count tie the first declared
// category wins, so keep the most specific categories on top.
type category struct {
	name     string
	keywords []string
}

var industryCategories = []category{
	{"Graphics and Signage", []string{"signage", "sign", "graphics", "visual communications"}},
	{"Large-Format Printing", []string{"large-format", "large format", "wide format", "digital printing", "print"}},
	{"Vehicle Wraps", []string{"vehicle wrap", "fleet graphics", "car wrap", "vehicle graphics"}},
	{"Architectural Graphics", []string{"architectural", "wayfinding", "environmental graphics", "building graphics"}},
	{"Protective Films", []string{"protective film", "laminate", "surface protection", "overlaminate"}},
	{"Retail Displays", []string{"retail display", "point of purchase", "pop display", "merchandising"}},
}

var sizeCategories = []category{
	{"Large", []string{"enterprise", "global", "nationwide", "fortune", "multinational", "thousands of employees"}},
	{"Medium", []string{"mid-size", "midsize", "regional", "growing team", "hundreds of employees"}},
	{"Small", []string{"small business", "family-owned", "local", "boutique"}},
	{"Micro", []string{"startup", "one-person", "sole proprietor", "freelance"}},
}

var productCategories = []category{
	{"Signage", []string{"sign", "signage"}},
	{"Banners", []string{"banner"}},
	{"Vehicle Wraps", []string{"wrap", "fleet"}},
	{"Displays", []string{"display", "exhibit"}},
	{"Graphics", []string{"graphic", "decal"}},
	{"Digital Printing", []string{"digital print", "printing", "print"}},
	{"Architectural Graphics", []string{"architectural", "wayfinding"}},
}

var materialCategories = []category{
	{"Vinyl", []string{"vinyl"}},
	{"PVC", []string{"pvc"}},
	{"Acrylic", []string{"acrylic"}},
	{"Aluminum", []string{"aluminum", "aluminium"}},
	{"Polycarbonate", []string{"polycarbonate"}},
	{"Laminate", []string{"laminate", "lamination"}},
	{"Fabric", []string{"fabric", "textile"}},
	{"Foam Board", []string{"foam board", "foamboard"}},
}

var marketCategories = []category{
	{"Retail", []string{"retail", "store", "shop"}},
	{"Corporate", []string{"corporate", "office"}},
	{"Events", []string{"event", "trade show", "exhibition"}},
	{"Outdoor", []string{"outdoor", "billboard", "exterior"}},
	{"Transportation", []string{"transportation", "transit", "fleet", "vehicle"}},
	{"Healthcare", []string{"healthcare", "hospital", "medical"}},
	{"Education", []string{"education", "school", "university", "campus"}},
}
