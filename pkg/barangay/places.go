package barangay

import (
	"math/rand"
	"path"
	"regexp"
	"strings"
)

// Place is a notable location citizens can ask to see pictures of.
type Place struct {
	Name        string
	Keywords    []string
	Images      []string
	Description string
}

const imageBaseDir = "static/images"

// places is ordered; detection returns the first match so the order is part
// of the matching contract.
var places = []Place{
	{
		Name:     "amungan elementary school",
		Keywords: []string{"elementary school", "elementary", "school", "grade school"},
		Images: []string{
			"Amungan_elementary_school.jpg",
			"Amungan_elementary_school2.jpg",
		},
		Description: "Here's Amungan Elementary School, one of the primary educational institutions in Barangay Amungan where young students begin their educational journey.",
	},
	{
		Name:     "amungan market",
		Keywords: []string{"market", "palengke", "marketplace", "public market"},
		Images: []string{
			"Amungan_Market.jpg",
		},
		Description: "This is the Amungan Market, a vibrant hub of local commerce where residents buy fresh produce, goods, and other daily necessities.",
	},
	{
		Name:     "amungan national high school",
		Keywords: []string{"high school", "secondary school", "national high school"},
		Images: []string{
			"Amungan_national_highschool.jpg",
			"amungan_national_highschool2.jpg",
			"amungan_national_highschool3.jpg",
		},
		Description: "Here's Amungan National High School, which provides secondary education to the youth of Barangay Amungan and nearby areas.",
	},
	{
		Name:     "barangay hall",
		Keywords: []string{"hall", "barangay office", "office", "government office"},
		Images: []string{
			"barangay_hall.jpg",
			"barangay_hall2.jpg",
			"barangay_hall3.jpg",
		},
		Description: "This is the Barangay Hall of Amungan, the center of local governance where barangay officials work and community services are provided.",
	},
	{
		Name:     "barangay hall outside",
		Keywords: []string{"hall outside", "outside hall", "hall exterior", "barangay hall exterior"},
		Images: []string{
			"barangay_hall_outside.jpg",
			"barangay_hall_outside2.jpg",
		},
		Description: "Here's the exterior view of the Barangay Hall of Amungan, showing the building's facade and surroundings.",
	},
	{
		Name:     "barangay health center",
		Keywords: []string{"health center", "clinic", "medical center", "health station"},
		Images: []string{
			"barangay_health_center.jpg",
		},
		Description: "This is the Barangay Health Center, which provides basic healthcare services, consultations, and health programs to Amungan residents.",
	},
	{
		Name:     "beach resort",
		Keywords: []string{"resort", "beach resort", "beach"},
		Images: []string{
			"beach_resort.jpg",
			"beach_resort1.jpg",
			"beach_resort2.jpg",
			"beach_resort3.jpg",
		},
		Description: "Here's one of the beach resorts here in Barangay Amungan, with a clean seashore inviting for swimming and water sports.",
	},
	{
		Name:     "plaza mercado",
		Keywords: []string{"plaza", "mercado", "town plaza", "town square", "park"},
		Images: []string{
			"plaza_mercado.jpg",
			"plaza_mercado2.jpg",
			"plaza_mercado3.jpg",
			"plaza_mercado4.jpg",
			"plaza_mercado5.jpg",
		},
		Description: "Here's Plaza Mercado, a public space in Amungan where community gatherings, events, and recreational activities take place.",
	},
}

var viewingVerbs = []string{"show", "see", "view", "picture", "photo", "image", "itsura", "patingin", "look at"}

var placeCategoryWords = []string{
	"place", "location", "area", "site", "spot", "landmark", "building",
	"school", "market", "hall", "plaza", "center", "beach", "resort", "beach resort",
}

var allPlacesPhrases = []string{
	"all places", "all the places", "mga lugar", "tourist spots", "tourist spot",
	"notable places", "places to see", "places here", "every place",
}

// IsPlaceRequest reports whether the message asks to see a place: it must
// contain a viewing verb plus a place-category word, a literal place name,
// or a place keyword.
func IsPlaceRequest(message string) bool {
	m := strings.ToLower(message)

	for _, verb := range viewingVerbs {
		if !strings.Contains(m, verb) {
			continue
		}
		if containsAny(m, placeCategoryWords) {
			return true
		}
		for _, p := range places {
			if strings.Contains(m, p.Name) {
				return true
			}
			if containsAny(m, p.Keywords) {
				return true
			}
		}
	}
	return false
}

// IsAllPlacesRequest reports whether the message asks for every notable place
// at once rather than a specific one.
func IsAllPlacesRequest(message string) bool {
	return containsAny(strings.ToLower(message), allPlacesPhrases)
}

// DetectPlace finds the specific place a message refers to. Literal place
// names win outright; keywords only match when a viewing verb appears next to
// the keyword in either direction.
func DetectPlace(message string) (Place, bool) {
	m := strings.ToLower(strings.TrimSpace(message))

	for _, p := range places {
		if strings.Contains(m, p.Name) {
			return p, true
		}
	}

	for _, p := range places {
		for _, keyword := range p.Keywords {
			if !strings.Contains(m, keyword) {
				continue
			}
			patterns := []string{
				`(show|see|view|picture|photo|image|look at).*\b` + regexp.QuoteMeta(keyword) + `\b`,
				`\b` + regexp.QuoteMeta(keyword) + `\b.*(show|see|view|picture|photo|image)`,
			}
			for _, pattern := range patterns {
				if regexp.MustCompile(pattern).MatchString(m) {
					return p, true
				}
			}
		}
	}

	return Place{}, false
}

// AllPlaces returns every notable place in presentation order.
func AllPlaces() []Place {
	return places
}

// RandomImages picks up to n distinct image paths for a place.
func (p Place) RandomImages(n int) []string {
	if n > len(p.Images) {
		n = len(p.Images)
	}
	perm := rand.Perm(len(p.Images))
	selected := make([]string, 0, n)
	for _, i := range perm[:n] {
		selected = append(selected, path.Join(imageBaseDir, p.Images[i]))
	}
	return selected
}
