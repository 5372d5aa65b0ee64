package events

import (
	"testing"

	"github.com/WardenLabs/WardenGo/pkg/models"
)

func TestMatchDeniedDomain(t *testing.T) {
	meta := models.Metadata{
		DomainBL: []string{"scam.example", "bad.io"},
		DomainWL: []string{"safe.bad.io"},
	}

	tests := []struct {
		name    string
		content string
		domain  string
		hit     bool
	}{
		{"plain denied domain", "check out scam.example now", "scam.example", true},
		{"denied with scheme", "https://bad.io/free-stuff", "bad.io", true},
		{"subdomain of denied", "visit promo.scam.example today", "promo.scam.example", true},
		{"allow list wins", "see safe.bad.io please", "", false},
		{"unlisted domain", "docs at golang.org", "", false},
		{"no domain at all", "hello there", "", false},
		{"case insensitive", "SCAM.EXAMPLE", "scam.example", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			domain, hit := matchDeniedDomain(tt.content, meta)
			if hit != tt.hit {
				t.Fatalf("matchDeniedDomain(%q) hit = %v, want %v", tt.content, hit, tt.hit)
			}
			if domain != tt.domain {
				t.Errorf("matchDeniedDomain(%q) domain = %q, want %q", tt.content, domain, tt.domain)
			}
		})
	}
}

func TestOnList(t *testing.T) {
	list := []string{"bad.io"}

	if !onList("bad.io", list) {
		t.Error("onList(bad.io) = false, want true")
	}
	if !onList("cdn.bad.io", list) {
		t.Error("onList(cdn.bad.io) = false, want true")
	}
	if onList("notbad.io", list) {
		t.Error("onList(notbad.io) = true, want false")
	}
}
