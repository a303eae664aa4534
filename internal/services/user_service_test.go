package services

import (
	"testing"

	"github.com/punjabi-rishtey/admin-api/internal/profile"
)

func TestCanonicalStatus(t *testing.T) {
	tests := []struct {
		in    string
		want  string
		valid bool
	}{
		{"pending", "Pending", true},
		{"Pending", "Pending", true},
		{"APPROVED", "Approved", true},
		{"expired", "Expired", true},
		{"canceled", "Canceled", true},
		{"incomplete", "Incomplete", true},
		{"unapproved", "Unapproved", true},
		{"", "", false},
		{"deleted", "Deleted", false},
		{"all", "All", false},
	}
	for _, tt := range tests {
		got := canonicalStatus(tt.in)
		if got != tt.want {
			t.Errorf("canonicalStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if profile.ValidStatus(got) != tt.valid {
			t.Errorf("ValidStatus(%q) = %v, want %v", got, !tt.valid, tt.valid)
		}
	}
}
