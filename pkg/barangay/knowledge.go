package barangay

import (
	"strings"
	"unicode"
)

// Domain identifies one curated static-information category.
type Domain string

const (
	DomainHistory      Domain = "history"
	DomainGeography    Domain = "geography"
	DomainDemographics Domain = "demographics"
	DomainFacilities   Domain = "facilities"
	DomainEconomy      Domain = "economy"
	DomainPolitics     Domain = "politics"
	DomainSchools      Domain = "schools"
	DomainOfficials    Domain = "officials"
	DomainPopulation   Domain = "population"
)

// Section is one curated block selected for a query.
type Section struct {
	Domain  Domain
	Heading string
	Body    string
}

var historyTerms = []string{
	"history", "kasaysayan", "alamat", "legend", "story", "origin",
	"established", "created", "founded", "ra 3590", "1963",
	"chinese merchant", "amu-an", "amungan name", "how named",
	"why called", "san isidro", "festival", "celebration",
}

var geographyTerms = []string{
	"location", "geography", "boundary", "boundaries", "north", "south",
	"west", "mountains", "sea", "coastal", "area", "square",
	"kilometers", "terrain", "elevation", "hills", "land use",
	"residential", "agricultural", "commercial", "san agustin",
	"bangatalinga", "zambales mountain", "south china sea",
}

var demographicTerms = []string{
	"2020", "census", "religion", "religious", "catholic", "protestant",
	"iglesia", "baptist", "jehovah", "islam", "families", "households",
	"11332", "11,332",
}

var facilityTerms = []string{
	"facilities", "electricity", "water", "communication", "transport",
	"zameco", "jetmatic", "pump", "cellphone", "radio", "bus",
	"jeepney", "tricycle", "motorcycle",
}

var economyTerms = []string{
	"economy", "economic", "income", "revenue", "budget", "ira",
	"occupation", "livelihood", "farming", "fishing", "business",
	"employment", "bank", "lending", "financial", "institution",
	"landbank", "peso", "₱", "13718953",
}

var politicalTerms = []string{
	"district", "congressional", "puroks", "sitios", "voters",
	"precincts", "election", "political", "second district",
	"pangalawang distrito", "5512", "17 precincts",
}

var schoolTerms = []string{
	"school", "schools", "education", "elementary", "high school",
	"daycare", "day care", "lawak", "dampay", "national high",
	"dona obieta", "doña obieta", "learning", "students",
}

var officialTerms = []string{
	"official", "officials", "barangay official", "barangay officials",
	"kagawad", "councilor", "council", "secretary", "treasurer",
	"captain", "kapitan", "chairman", "punong", "kap ", "cap ",
	"sk", "sangguniang kabataan", "youth council", "youth",
	"purok", "purok president", "purok leader", "president",
}

var officialNames = []string{
	"redondo", "flauta", "olipane", "arquero", "lonzanida",
	"sibug", "susa", "aramay", "castrence", "gutierrez",
	"rico", "mercado", "barried", "dagsaan", "ednalaga",
	"santos", "macalinao", "rebultan", "famisan",
	"alarma", "abadam", "dagun", "arcino", "abad",
	"baluyot", "cristobal", "adona", "mora",
}

var populationTerms = []string{
	"population", "demographics", "residents", "people", "citizens",
	"age", "gender", "male", "female", "men", "women", "boys", "girls",
	"statistics", "census", "how many people", "total population",
}

func containsAny(query string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(query, term) {
			return true
		}
	}
	return false
}

// containsAnyWord matches on word boundaries. The population list is full of
// short everyday words ("men", "age") that substring-match inside unrelated
// words like "document" or "message" and would steal those queries from the
// later dispatch steps.
func containsAnyWord(query string, terms []string) bool {
	padded := " " + strings.Join(strings.FieldsFunc(query, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}), " ") + " "
	for _, term := range terms {
		if strings.Contains(padded, " "+term+" ") {
			return true
		}
	}
	return false
}

// MatchKnowledge returns every curated section whose term list matches the
// query, in a fixed domain order. Multiple domains can match at once; the
// caller renders all of them, each under its own heading.
func MatchKnowledge(query string) []Section {
	q := strings.ToLower(query)
	var sections []Section

	if containsAny(q, historyTerms) {
		sections = append(sections, Section{DomainHistory, "History", HistoryInfo})
	}
	if containsAny(q, geographyTerms) {
		sections = append(sections, Section{DomainGeography, "Geography", GeographyInfo})
	}
	if containsAny(q, demographicTerms) {
		sections = append(sections, Section{DomainDemographics, "Demographics (2020)", DemographicsInfo})
	}
	if containsAny(q, facilityTerms) {
		sections = append(sections, Section{DomainFacilities, "Facilities", FacilitiesInfo})
	}
	if containsAny(q, economyTerms) {
		sections = append(sections, Section{DomainEconomy, "Economy", EconomyInfo})
	}
	if containsAny(q, politicalTerms) {
		sections = append(sections, Section{DomainPolitics, "Politics", PoliticsInfo})
	}
	if containsAny(q, schoolTerms) {
		sections = append(sections, Section{DomainSchools, "Schools", SchoolsInfo})
	}
	if containsAny(q, officialTerms) || containsAny(q, officialNames) {
		sections = append(sections, Section{DomainOfficials, "Officials", OfficialsInfo})
	}
	if containsAnyWord(q, populationTerms) {
		sections = append(sections, Section{DomainPopulation, "Population", PopulationInfo})
	}

	return sections
}
