package richtext

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestExcerpt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "markup only", input: "<p> </p>", want: ""},
		{name: "short text keeps marker", input: "<p>Built with <strong>Go</strong>.</p>", want: "Built with Go...."},
		{name: "entities decoded", input: "<p>Fish &amp; chips</p>", want: "Fish & chips..."},
		{name: "block tags separate words", input: "<p>one</p><p>two</p>", want: "one two..."},
		{name: "script dropped", input: "<p>safe</p><script>alert(1)</script>", want: "safe..."},
	}
	for _, tc := range tests {
		if got := Excerpt(tc.input, ExcerptLength); got != tc.want {
			t.Fatalf("%s: Excerpt() = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestExcerptCutsToRuneLimit(t *testing.T) {
	t.Parallel()

	long := "<div>" + strings.Repeat("é", 400) + "</div>"
	got := Excerpt(long, ExcerptLength)
	if !strings.HasSuffix(got, ExcerptMarker) {
		t.Fatalf("Excerpt() = %q, want marker suffix", got)
	}
	body := strings.TrimSuffix(got, ExcerptMarker)
	if n := utf8.RuneCountInString(body); n != ExcerptLength {
		t.Fatalf("excerpt runes = %d, want %d", n, ExcerptLength)
	}
	if !utf8.ValidString(got) {
		t.Fatal("excerpt is not valid utf-8")
	}
}

func TestSanitizeStripsUnsafeMarkup(t *testing.T) {
	t.Parallel()

	got := string(Sanitize(`<p onclick="x()">Led the <a href="https://example.com">team</a></p><script>alert(1)</script><img src=x onerror=alert(1)>`))
	for _, banned := range []string{"<script", "onclick", "onerror", "alert("} {
		if strings.Contains(got, banned) {
			t.Fatalf("Sanitize() kept %q: %q", banned, got)
		}
	}
	for _, kept := range []string{"<p>", `href="https://example.com"`, `rel="nofollow`, "team"} {
		if !strings.Contains(got, kept) {
			t.Fatalf("Sanitize() dropped %q: %q", kept, got)
		}
	}
	if Sanitize("   ") != "" {
		t.Fatal("Sanitize(blank) should be empty")
	}
}
