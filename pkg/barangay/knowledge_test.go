package barangay

import (
	"strings"
	"testing"
)

func TestMatchKnowledgeSingleDomain(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantDomain Domain
	}{
		{"history", "what is the history of amungan", DomainHistory},
		{"geography", "where is the boundary of the barangay", DomainGeography},
		{"economy", "what is the main livelihood here", DomainEconomy},
		{"officials", "who is the barangay captain", DomainOfficials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections := MatchKnowledge(tt.query)
			if len(sections) == 0 {
				t.Fatalf("MatchKnowledge(%q) returned nothing", tt.query)
			}
			found := false
			for _, s := range sections {
				if s.Domain == tt.wantDomain {
					found = true
				}
			}
			if !found {
				t.Errorf("MatchKnowledge(%q) missing domain %v", tt.query, tt.wantDomain)
			}
		})
	}
}

func TestMatchKnowledgeCombinesDomains(t *testing.T) {
	// A question naming a kagawad and asking about population must return
	// both blocks, officials first.
	sections := MatchKnowledge("who is the kagawad and what is the population")
	if len(sections) != 2 {
		t.Fatalf("len(sections) = %d, want 2", len(sections))
	}
	if sections[0].Domain != DomainOfficials {
		t.Errorf("sections[0].Domain = %v, want %v", sections[0].Domain, DomainOfficials)
	}
	if sections[1].Domain != DomainPopulation {
		t.Errorf("sections[1].Domain = %v, want %v", sections[1].Domain, DomainPopulation)
	}
}

func TestMatchKnowledgePopulationWholeWords(t *testing.T) {
	// "men" and "age" are population terms; they must not fire from inside
	// unrelated words, or document questions never reach the later probes.
	for _, query := range []string{
		"how do i get a document",
		"i have a message about my requirements",
	} {
		if sections := MatchKnowledge(query); len(sections) != 0 {
			t.Errorf("MatchKnowledge(%q) = %d sections, want 0", query, len(sections))
		}
	}

	sections := MatchKnowledge("how many men live in amungan")
	if len(sections) != 1 || sections[0].Domain != DomainPopulation {
		t.Errorf("MatchKnowledge(men query) = %v, want population only", sections)
	}
}

func TestMatchKnowledgeNoMatch(t *testing.T) {
	if sections := MatchKnowledge("good morning po"); len(sections) != 0 {
		t.Errorf("MatchKnowledge returned %d sections for a greeting", len(sections))
	}
}

func TestDetectDocumentType(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"I need a barangay clearance", "barangay clearance"},
		{"certificate of indigency please", "barangay indigency"},
		{"certificate of indengency please", "barangay indigency"},
		{"indegency certificate", "barangay indigency"},
		{"proof of residency", "barangay residency"},
		{"hello there", ""},
	}

	for _, tt := range tests {
		if got := DetectDocumentType(tt.query); got != tt.want {
			t.Errorf("DetectDocumentType(%q) = %q, want %q", tt.query, got, tt.want)
		}
	}
}

func TestCuratedBlocksNonEmpty(t *testing.T) {
	blocks := map[string]string{
		"officials":    OfficialsInfo,
		"population":   PopulationInfo,
		"history":      HistoryInfo,
		"geography":    GeographyInfo,
		"demographics": DemographicsInfo,
		"facilities":   FacilitiesInfo,
		"economy":      EconomyInfo,
		"politics":     PoliticsInfo,
		"schools":      SchoolsInfo,
	}
	for name, body := range blocks {
		if strings.TrimSpace(body) == "" {
			t.Errorf("curated block %q is empty", name)
		}
	}
}
