package score

import (
	"regexp"
	"strings"
)

// locClass buckets a free-text location label relative to the protected
// jurisdiction.
type locClass int

const (
	locUnknown locClass = iota
	locInside
	locGlobal
	locOutside
)

// Jurisdiction is the protected region the score is computed against.
// Expressed as data so tests can run against custom jurisdictions.
type Jurisdiction struct {
	Name string
	// Aliases are region labels that count as inside ("EU", "EEA").
	Aliases []string
	// Members are country keywords that count as inside.
	Members []string
}

// EU returns the default protected jurisdiction.
func EU() Jurisdiction {
	return Jurisdiction{
		Name:    "EU",
		Aliases: []string{"EU", "EEA", "EUROPEAN UNION"},
		Members: []string{
			"GERMANY", "FRANCE", "IRELAND", "NETHERLANDS", "ITALY", "SPAIN",
			"BELGIUM", "AUSTRIA", "SWEDEN", "DENMARK", "FINLAND", "POLAND",
			"PORTUGAL", "CZECH", "ROMANIA", "BULGARIA", "CROATIA", "SLOVENIA",
			"SLOVAKIA", "ESTONIA", "LATVIA", "LITHUANIA", "LUXEMBOURG", "MALTA",
			"CYPRUS", "GREECE", "HUNGARY",
		},
	}
}

var wordUS = regexp.MustCompile(`\bUS\b`)

// Inside reports whether a location label names the protected
// jurisdiction or one of its members.
func (j Jurisdiction) Inside(location string) bool {
	t := strings.ToUpper(location)
	for _, a := range j.Aliases {
		if containsWord(t, a) {
			return true
		}
	}
	for _, m := range j.Members {
		if strings.Contains(t, m) {
			return true
		}
	}
	return false
}

// classify buckets a location label. An explicit US marker beats an
// inside match, so "United States (eu-west-1 region)" counts as
// outside.
func (j Jurisdiction) classify(location string) locClass {
	t := strings.ToUpper(strings.TrimSpace(location))
	switch {
	case t == "" || t == "UNKNOWN":
		return locUnknown
	case strings.Contains(t, "GLOBAL") || strings.Contains(t, "MULTIPLE REGION") || strings.Contains(t, "WORLDWIDE"):
		return locGlobal
	case strings.Contains(t, "USA") || strings.Contains(t, "UNITED STATES") || wordUS.MatchString(t):
		return locOutside
	case j.Inside(t):
		return locInside
	default:
		return locOutside
	}
}

// Bucket labels exposed to report consumers.
const (
	BucketInside  = "inside"
	BucketOutside = "outside"
	BucketGlobal  = "global"
	BucketUnknown = "unknown"
)

// Bucket returns the class label of a location for report breakdowns.
func (j Jurisdiction) Bucket(location string) string {
	switch j.classify(location) {
	case locInside:
		return BucketInside
	case locGlobal:
		return BucketGlobal
	case locOutside:
		return BucketOutside
	default:
		return BucketUnknown
	}
}

func containsWord(haystack, word string) bool {
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(word) + `\b`)
	if err != nil {
		return false
	}
	return re.MatchString(haystack)
}
