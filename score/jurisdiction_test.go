package score_test

import (
	"testing"

	"sovscan/score"
)

func TestJurisdictionBucket(t *testing.T) {
	eu := score.EU()

	tests := []struct {
		location string
		want     string
	}{
		{"", score.BucketUnknown},
		{"Unknown", score.BucketUnknown},
		{"Global", score.BucketGlobal},
		{"Worldwide", score.BucketGlobal},
		{"Multiple regions", score.BucketGlobal},
		{"Germany", score.BucketInside},
		{"Dublin, Ireland", score.BucketInside},
		{"EU", score.BucketInside},
		{"EEA", score.BucketInside},
		{"United States", score.BucketOutside},
		{"US", score.BucketOutside},
		{"Austin, US", score.BucketOutside},
		{"AUSTRALIA", score.BucketOutside},
		{"India", score.BucketOutside},
		// A US marker wins even when an EU region is mentioned alongside.
		{"United States (eu-west-1 region)", score.BucketOutside},
	}

	for _, tt := range tests {
		if got := eu.Bucket(tt.location); got != tt.want {
			t.Errorf("Bucket(%q) = %q, want %q", tt.location, got, tt.want)
		}
	}
}

func TestJurisdictionInside(t *testing.T) {
	eu := score.EU()

	if eu.Inside("Sydney, Australia") {
		t.Error(`Inside("Sydney, Australia") = true; "AU" inside "Australia" must not count as an alias hit`)
	}
	if !eu.Inside("Helsinki, Finland") {
		t.Error(`Inside("Helsinki, Finland") = false, want true`)
	}
}

func TestCustomJurisdiction(t *testing.T) {
	ch := score.Jurisdiction{
		Name:    "Switzerland",
		Aliases: []string{"CH"},
		Members: []string{"SWITZERLAND", "SCHWEIZ"},
	}

	if ch.Bucket("Zurich, Switzerland") != score.BucketInside {
		t.Error("Zurich must be inside a Swiss jurisdiction")
	}
	if ch.Bucket("Germany") != score.BucketOutside {
		t.Error("Germany must be outside a Swiss jurisdiction")
	}
}

func TestCategoryWeight(t *testing.T) {
	tests := []struct {
		purpose string
		want    float64
	}{
		{"AI/ML Services", 1.5},
		{"Payment Processing", 1.4},
		{"Analytics", 1.0},
		{"CDN/Fonts", 0.7},
		{"CDN", 0.8},
		{"Something Else", 1.0},
		{"", 1.0},
	}

	for _, tt := range tests {
		if got := score.CategoryWeight(tt.purpose); got != tt.want {
			t.Errorf("CategoryWeight(%q) = %v, want %v", tt.purpose, got, tt.want)
		}
	}
}
