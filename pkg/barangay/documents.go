package barangay

import "strings"

// AvailableDocuments lists every document type the barangay issues through
// the chatbot, in the order they are suggested to citizens.
var AvailableDocuments = []string{
	"barangay clearance",
	"barangay indigency",
	"barangay residency",
}

// DetectDocumentType resolves the document type mentioned in a query, or ""
// when none is found. Indigency carries common misspellings seen in real
// citizen messages.
func DetectDocumentType(query string) string {
	q := strings.ToLower(query)

	if strings.Contains(q, "clearance") {
		return "barangay clearance"
	}

	for _, word := range []string{"indigency", "indengency", "indengecy", "indegency"} {
		if strings.Contains(q, word) {
			return "barangay indigency"
		}
	}

	if strings.Contains(q, "residency") {
		return "barangay residency"
	}

	for _, docType := range AvailableDocuments {
		if strings.Contains(q, docType) {
			return docType
		}
	}

	return ""
}
