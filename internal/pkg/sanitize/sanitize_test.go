package sanitize

import (
	"testing"
)

func TestText(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"<b>Join us</b>  please", "Join us please"},
		{"  plain text  ", "plain text"},
		{"line\none\t\ttwo", "line one two"},
		{"<script>alert('x')</script>welcome", "alert('x')welcome"},
		{"<p>hello <i>there</i></p>", "hello there"},
		{"", ""},
		{"   ", ""},
		{"<br/>", ""},
	}
	for _, c := range cases {
		got := Text(c.input)
		if got != c.want {
			t.Errorf("Text(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"John Doe", "john-doe"},
		{"  O'Brien, Jane  ", "obrien-jane"},
		{"Ada   Lovelace", "ada-lovelace"},
		{"User-42", "user42"},
		{"", ""},
	}
	for _, c := range cases {
		got := NormalizeName(c.input)
		if got != c.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestEmail(t *testing.T) {
	if got := Email("  John.Doe@Example.COM "); got != "john.doe@example.com" {
		t.Errorf("Email() = %q", got)
	}
}
