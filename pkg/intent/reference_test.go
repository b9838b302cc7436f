package intent

import "testing"

func TestReferenceRoundTrip(t *testing.T) {
	for _, id := range []int64{1, 42, 9000} {
		token := FormatReference(id)
		got, ok := ParseReferenceID(token)
		if !ok || got != id {
			t.Errorf("ParseReferenceID(FormatReference(%d)) = %d, %v", id, got, ok)
		}
	}
}

func TestExtractReferenceToken(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "prefers ref- prefixed token",
			message: "status of 99 and REF-42 please",
			want:    "REF-42",
		},
		{
			name:    "falls back to token containing ref",
			message: "my reference42 please",
			want:    "reference42",
		},
		{
			name:    "falls back to token containing a digit",
			message: "reference number 42",
			want:    "reference",
		},
		{
			name:    "strips punctuation",
			message: "is REF-42? done",
			want:    "REF-42",
		},
		{
			name:    "nothing token-like",
			message: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractReferenceToken(tt.message); got != tt.want {
				t.Errorf("ExtractReferenceToken(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestParseReferenceID(t *testing.T) {
	tests := []struct {
		token  string
		wantID int64
		wantOK bool
	}{
		{"REF-42", 42, true},
		{"ref-7", 7, true},
		{"REF-42abc", 42, true},
		{"REF-42-abc", 42, true},
		{"42", 42, true},
		{"reference", 0, false},
		{"", 0, false},
		{"REF-", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseReferenceID(tt.token)
		if got != tt.wantID || ok != tt.wantOK {
			t.Errorf("ParseReferenceID(%q) = %d, %v; want %d, %v", tt.token, got, ok, tt.wantID, tt.wantOK)
		}
	}
}
