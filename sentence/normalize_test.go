package sentence

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `Fix "these" quotes`, `Fix "these" quotes`},
		{"angle", "«these»", `"these"`},
		{"curly double", "“these”", `"these"`},
		{"curly single", "‘these’", "'these'"},
		{"low nine", "„these‟", `"these"`},
		{"single angle", "‹these›", "'these'"},
		{"windows-1252", "\u0093these\u0094 \u0091it\u0092s\u0092", `"these" 'it's'`},
		{"named entity", "&quot;these&quot; &amp; those", `"these" & those`},
		{"numeric entity", "&#8220;these&#8221;", `"these"`},
		{"double escaped", "&amp;quot;these&amp;quot;", `"these"`},
		{"stray ampersand", "Tom & Jerry", "Tom & Jerry"},
		{"multibyte", "Grüße aus Köln", "Grüße aus Köln"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Hello world.",
		"&amp;amp;amp;lt;b&gt;",
		"«Fix» ‘these’ &laquo;quotes&raquo;",
		"&#38;quot;",
		"&nGt; &amp;nGt;",
	}

	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize(Normalize(%q)) = %q, want %q", in, twice, once)
		}
	}
}
