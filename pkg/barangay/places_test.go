package barangay

import (
	"strings"
	"testing"
)

func TestIsPlaceRequest(t *testing.T) {
	tests := []struct {
		message string
		want    bool
	}{
		{"show me the barangay hall", true},
		{"can I see a picture of the market", true},
		{"patingin ng plaza", true},
		{"where is the barangay hall", false},
		{"I want a clearance", false},
	}

	for _, tt := range tests {
		if got := IsPlaceRequest(tt.message); got != tt.want {
			t.Errorf("IsPlaceRequest(%q) = %v, want %v", tt.message, got, tt.want)
		}
	}
}

func TestIsAllPlacesRequest(t *testing.T) {
	if !IsAllPlacesRequest("show me all the places here") {
		t.Error("expected all-places request to match")
	}
	if IsAllPlacesRequest("show me the market") {
		t.Error("specific place request should not match all-places")
	}
}

func TestDetectPlace(t *testing.T) {
	tests := []struct {
		message  string
		wantName string
		wantOK   bool
	}{
		{"show me the plaza mercado", "plaza mercado", true},
		{"picture of the market please", "amungan market", true},
		{"market photo", "amungan market", true},
		{"the market is far", "", false},
		{"random text", "", false},
	}

	for _, tt := range tests {
		got, ok := DetectPlace(tt.message)
		if ok != tt.wantOK {
			t.Errorf("DetectPlace(%q) ok = %v, want %v", tt.message, ok, tt.wantOK)
			continue
		}
		if ok && got.Name != tt.wantName {
			t.Errorf("DetectPlace(%q).Name = %q, want %q", tt.message, got.Name, tt.wantName)
		}
	}
}

func TestRandomImages(t *testing.T) {
	place, ok := DetectPlace("show me the plaza mercado")
	if !ok {
		t.Fatal("plaza mercado not detected")
	}

	images := place.RandomImages(2)
	if len(images) != 2 {
		t.Fatalf("len(images) = %d, want 2", len(images))
	}
	if images[0] == images[1] {
		t.Error("RandomImages returned duplicate paths")
	}
	for _, img := range images {
		if !strings.HasPrefix(img, "static/images/") {
			t.Errorf("image path %q missing static/images prefix", img)
		}
	}

	// Asking for more than the place has returns everything it has.
	market, _ := DetectPlace("picture of the market please")
	if got := market.RandomImages(5); len(got) != len(market.Images) {
		t.Errorf("len = %d, want %d", len(got), len(market.Images))
	}
}
