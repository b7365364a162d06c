package strings

import "testing"

func TestNormalizeWhitespace(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: " \n\t ",
			want:  "",
		},
		{
			name:  "collapses spaces",
			input: "buy   oat    milk",
			want:  "buy oat milk",
		},
		{
			name:  "collapses newlines",
			input: "one\n\n two\tthree",
			want:  "one two three",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeWhitespace(tc.input)
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestNormalizeLowerTrimSpace(t *testing.T) {
	if got := NormalizeLowerTrimSpace("  High \n"); got != "high" {
		t.Fatalf("expected high, got %q", got)
	}
}

func TestNormalizeNewlines(t *testing.T) {
	if got := NormalizeNewlines("a\r\nb\rc"); got != "a\nb\nc" {
		t.Fatalf("expected LF-only output, got %q", got)
	}
}

func TestTrimSpaceHandlesIdeographicSpace(t *testing.T) {
	got := TrimSpace("　歯医者の予約 \t")
	if got != "歯医者の予約" {
		t.Fatalf("expected ideographic space trimmed, got %q", got)
	}
}

func TestContainsFold(t *testing.T) {
	cases := []struct {
		s      string
		substr string
		want   bool
	}{
		{s: "Buy Milk", substr: "milk", want: true},
		{s: "Buy Milk", substr: "MILK", want: true},
		{s: "Buy Milk", substr: "bread", want: false},
		{s: "", substr: "", want: true},
		{s: "週次レポートの提出", substr: "レポート", want: true},
	}

	for _, tc := range cases {
		if got := ContainsFold(tc.s, tc.substr); got != tc.want {
			t.Errorf("ContainsFold(%q, %q) = %v, want %v", tc.s, tc.substr, got, tc.want)
		}
	}
}
