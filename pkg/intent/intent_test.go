package intent

import (
	"testing"
)

type staticCreds struct {
	key  string
	pass string
}

func (c staticCreds) AdminCredentials() (string, string) {
	return c.key, c.pass
}

func TestClassifyAdminProbe(t *testing.T) {
	classifier := NewClassifier(staticCreds{key: "EASTER", pass: "EGG"})

	tests := []struct {
		name     string
		message  string
		wantKind Kind
	}{
		{
			name:     "exact credential pair",
			message:  "EASTER EGG",
			wantKind: KindAdminAuth,
		},
		{
			name:     "extra whitespace still two tokens",
			message:  "  EASTER   EGG  ",
			wantKind: KindAdminAuth,
		},
		{
			name:     "case sensitive",
			message:  "easter egg",
			wantKind: KindFreeform,
		},
		{
			name:     "three tokens",
			message:  "EASTER EGG please",
			wantKind: KindFreeform,
		},
		{
			name:     "wrong pass",
			message:  "EASTER EGGS",
			wantKind: KindFreeform,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(tt.message, Hints{})
			if got.Kind != tt.wantKind {
				t.Errorf("Classify(%q).Kind = %v, want %v", tt.message, got.Kind, tt.wantKind)
			}
		})
	}
}

func TestClassifyPrecedence(t *testing.T) {
	classifier := NewClassifier(staticCreds{key: "EASTER", pass: "EGG"})

	tests := []struct {
		name     string
		message  string
		hints    Hints
		wantKind Kind
	}{
		{
			name:     "knowledge beats document hints",
			message:  "who are the barangay officials",
			hints:    Hints{ContainsDocumentWord: true},
			wantKind: KindKnowledge,
		},
		{
			name:     "reference beats document hints",
			message:  "what is the status of ref-17",
			hints:    Hints{ContainsDocumentWord: true},
			wantKind: KindReference,
		},
		{
			name:     "document word without type",
			message:  "how do I get a document",
			hints:    Hints{ContainsDocumentWord: true},
			wantKind: KindDocumentInquiry,
		},
		{
			name:    "direct request with resolved type",
			message: "I want to get a barangay clearance",
			hints: Hints{
				IsDirectDocumentRequest: true,
				ContainsDocumentType:    true,
			},
			wantKind: KindDocumentRequest,
		},
		{
			name:    "interrogative opener suppresses direct request",
			message: "what is a barangay clearance",
			hints: Hints{
				IsDirectDocumentRequest: true,
				ContainsDocumentType:    true,
				StartsWithInterrogative: true,
			},
			wantKind: KindFreeform,
		},
		{
			name:     "plain question falls through",
			message:  "what time does the office open",
			hints:    Hints{},
			wantKind: KindFreeform,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(tt.message, tt.hints)
			if got.Kind != tt.wantKind {
				t.Errorf("Classify(%q).Kind = %v, want %v", tt.message, got.Kind, tt.wantKind)
			}
		})
	}
}

func TestClassifyDocumentTypeRecheck(t *testing.T) {
	classifier := NewClassifier(staticCreds{key: "EASTER", pass: "EGG"})

	// No client-side type hint; the server keyword re-check must resolve it,
	// including the common misspellings.
	for _, message := range []string{
		"requesting barangay indigency po",
		"need certificate of indengency",
		"i want an indegency certificate",
	} {
		got := classifier.Classify(message, Hints{IsDirectDocumentRequest: true})
		if got.Kind != KindDocumentRequest {
			t.Errorf("Classify(%q).Kind = %v, want %v", message, got.Kind, KindDocumentRequest)
			continue
		}
		if got.DocumentType != "barangay indigency" {
			t.Errorf("Classify(%q).DocumentType = %q, want %q", message, got.DocumentType, "barangay indigency")
		}
	}
}

func TestClassifyMalformedReferenceStillReference(t *testing.T) {
	classifier := NewClassifier(staticCreds{key: "EASTER", pass: "EGG"})

	got := classifier.Classify("what about my reference gibberish!!!", Hints{})
	if got.Kind != KindReference {
		t.Fatalf("Kind = %v, want %v", got.Kind, KindReference)
	}
	if got.ReferenceValid {
		t.Errorf("ReferenceValid = true for malformed token %q", got.ReferenceToken)
	}
}
