package ids

import "testing"

func TestUniquePrefixLengths(t *testing.T) {
	ids := []string{"2u3iutfd", "2a9k1111", "abc12345"}
	lengths := UniquePrefixLengthsNormalized(NormalizeUniqueIDs(ids))

	if got := lengths["2u3iutfd"]; got != 2 {
		t.Fatalf("expected 2u3iutfd prefix length 2, got %d", got)
	}
	if got := lengths["2a9k1111"]; got != 2 {
		t.Fatalf("expected 2a9k1111 prefix length 2, got %d", got)
	}
	if got := lengths["abc12345"]; got != 1 {
		t.Fatalf("expected abc12345 prefix length 1, got %d", got)
	}
}

func TestUniquePrefixLengthsIsCaseInsensitive(t *testing.T) {
	ids := []string{"Abc", "aBD"}
	lengths := UniquePrefixLengthsNormalized(NormalizeUniqueIDs(ids))

	if got := lengths["abc"]; got != 3 {
		t.Fatalf("expected abc prefix length 3, got %d", got)
	}
	if got := lengths["abd"]; got != 3 {
		t.Fatalf("expected abd prefix length 3, got %d", got)
	}
}

func TestUniquePrefixLengthsSkipsDuplicatesAndEmpty(t *testing.T) {
	ids := []string{"abc", "", "ABC"}
	lengths := UniquePrefixLengthsNormalized(NormalizeUniqueIDs(ids))

	if len(lengths) != 1 {
		t.Fatalf("expected 1 unique ID, got %d", len(lengths))
	}
	if got := lengths["abc"]; got != 1 {
		t.Fatalf("expected abc prefix length 1, got %d", got)
	}
}

func TestMatchPrefixNormalized(t *testing.T) {
	normalized := NormalizeUniqueIDs([]string{"sample-1", "sample-10", "f00d"})

	cases := []struct {
		name      string
		prefix    string
		match     string
		found     bool
		ambiguous bool
	}{
		{name: "exact wins over longer", prefix: "sample-1", match: "sample-1", found: true},
		{name: "unique prefix", prefix: "F0", match: "f00d", found: true},
		{name: "ambiguous", prefix: "sample", found: true, ambiguous: true},
		{name: "missing", prefix: "zzz"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			match, found, ambiguous := MatchPrefixNormalized(normalized, tc.prefix)
			if match != tc.match || found != tc.found || ambiguous != tc.ambiguous {
				t.Fatalf("got (%q, %v, %v), want (%q, %v, %v)", match, found, ambiguous, tc.match, tc.found, tc.ambiguous)
			}
		})
	}
}
