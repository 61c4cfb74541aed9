package latex

import "testing"

func TestEscape_SpecialCharacters(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"&", `\&`},
		{"%", `\%`},
		{"$", `\$`},
		{"#", `\#`},
		{"_", `\_`},
		{"{", `\{`},
		{"}", `\}`},
		{"~", `\textasciitilde{}`},
		{"^", `\^{}`},
		{`\`, `\textbackslash{}`},
		{"<", `\textless{}`},
		{">", `\textgreater{}`},
	}
	for _, c := range cases {
		if got := Escape(c.in); got != c.want {
			t.Fatalf("Escape(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEscape_PlainTextUnchanged(t *testing.T) {
	in := "Ada Lovelace, Analytical Engines (1843), détails"
	if got := Escape(in); got != in {
		t.Fatalf("expected passthrough, got %q", got)
	}
}

func TestEscape_MixedContent(t *testing.T) {
	got := Escape("C&O 100% $5 #1 a_b")
	want := `C\&O 100\% \$5 \#1 a\_b`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEscape_NotIdempotent(t *testing.T) {
	once := Escape("&")
	twice := Escape(once)
	if once == twice {
		t.Fatalf("expected double escape to differ, got %q both times", once)
	}
	if twice != `\textbackslash{}\&` {
		t.Fatalf("got %q", twice)
	}
}

func TestEscape_Empty(t *testing.T) {
	if got := Escape(""); got != "" {
		t.Fatalf("got %q", got)
	}
}
