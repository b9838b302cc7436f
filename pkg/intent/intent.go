// Package intent decides, for each inbound chat message, which of the
// mutually exclusive response strategies the service should run. Evaluation
// order is fixed; earlier probes short-circuit later ones.
package intent

import (
	"strings"

	"github.com/Vaujx/BAAC/pkg/barangay"
)

// Kind is one mutually exclusive classification outcome.
type Kind string

const (
	KindAdminAuth       Kind = "ADMIN_AUTH"
	KindKnowledge       Kind = "KNOWLEDGE"
	KindPlace           Kind = "PLACE"
	KindReference       Kind = "REFERENCE"
	KindDocumentInquiry Kind = "DOCUMENT_INQUIRY"
	KindDocumentRequest Kind = "DOCUMENT_REQUEST"
	KindFreeform        Kind = "FREEFORM"
)

// Hints are advisory signals computed client-side. They are trusted as-is;
// only the document-type resolution re-checks keywords server-side.
type Hints struct {
	IsDirectDocumentRequest bool
	ContainsDocumentType    bool
	ContainsDocumentWord    bool
	ContainsInterrogative   bool
	StartsWithInterrogative bool
	RequestedDocType        string
}

// Result carries the selected kind plus the payload the chosen strategy needs.
type Result struct {
	Kind Kind

	// KindKnowledge
	Sections []barangay.Section

	// KindPlace
	AllPlaces bool
	Place     barangay.Place

	// KindReference
	ReferenceToken string
	ReferenceID    int64
	ReferenceValid bool

	// KindDocumentRequest
	DocumentType string
}

// CredentialSource supplies the current admin credentials. Backed by the
// reloadable runtime settings rather than package globals.
type CredentialSource interface {
	AdminCredentials() (key, pass string)
}

// Classifier routes messages through the fixed probe sequence.
type Classifier struct {
	creds CredentialSource
}

func NewClassifier(creds CredentialSource) *Classifier {
	return &Classifier{creds: creds}
}

// Classify selects exactly one intent for the message. It is pure: side
// effects (session flags, lookups, logging) belong to the caller.
func (c *Classifier) Classify(message string, hints Hints) Result {
	// 1. Admin credential probe: exactly two whitespace tokens matching the
	// configured key and passphrase, case-sensitive.
	if key, pass := c.creds.AdminCredentials(); key != "" {
		parts := strings.Fields(message)
		if len(parts) == 2 && parts[0] == key && parts[1] == pass {
			return Result{Kind: KindAdminAuth}
		}
	}

	// 2. Knowledge-domain probes; every matching domain is returned.
	if sections := barangay.MatchKnowledge(message); len(sections) > 0 {
		return Result{Kind: KindKnowledge, Sections: sections}
	}

	// 3. Place request probe.
	if barangay.IsPlaceRequest(message) {
		if barangay.IsAllPlacesRequest(message) {
			return Result{Kind: KindPlace, AllPlaces: true}
		}
		if place, ok := barangay.DetectPlace(message); ok {
			return Result{Kind: KindPlace, Place: place}
		}
	}

	// 4. Reference-number probe. A malformed token still classifies as a
	// reference lookup; it resolves to the not-found template downstream.
	if IsReferenceQuery(message) {
		token := ExtractReferenceToken(message)
		id, ok := ParseReferenceID(token)
		return Result{
			Kind:           KindReference,
			ReferenceToken: token,
			ReferenceID:    id,
			ReferenceValid: ok,
		}
	}

	// 5. Document inquiry without a specific type.
	if hints.ContainsDocumentWord && !hints.ContainsDocumentType {
		return Result{Kind: KindDocumentInquiry}
	}

	// 6. Direct document request.
	if hints.IsDirectDocumentRequest && !hints.StartsWithInterrogative {
		docType := hints.RequestedDocType
		if docType == "" {
			docType = barangay.DetectDocumentType(message)
		}
		if docType != "" {
			return Result{Kind: KindDocumentRequest, DocumentType: docType}
		}
	}

	// 7. Fallback to the generative model.
	return Result{Kind: KindFreeform}
}
