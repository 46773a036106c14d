package sentence

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		text string
		opts Options
		want []string
	}{
		{"empty", "", 0, []string{}},
		{"space", " ", 0, []string{}},
		{"newline", "\n", 0, []string{}},
		{"blank lines", "\r\n \n\t", 0, []string{}},

		{"word", "Hello", 0, []string{"Hello"}},
		{"word period", "Hello.", 0, []string{"Hello."}},
		{"word ellipsis", "Hello...", 0, []string{"Hello..."}},
		{"word exclamation", "Hello!", 0, []string{"Hello!"}},
		{"word question", "Hello?", 0, []string{"Hello?"}},
		{"word interrobang", "Hello?!", 0, []string{"Hello?!"}},

		{"two sentences", "Hello world. Are you there", 0, []string{"Hello world.", " Are you there"}},
		{"two sentences question", "Hello world. Are you there?", 0, []string{"Hello world.", " Are you there?"}},
		{"two sentences trimmed", "Hello world. Are you there", SplitTrim, []string{"Hello world.", "Are you there"}},
		{"two sentences question trimmed", "Hello world. Are you there?", SplitTrim, []string{"Hello world.", "Are you there?"}},
		{"comma", "Hello world, Are you there?", 0, []string{"Hello world, Are you there?"}},
		{"colon", "Hello world: Are you there?", 0, []string{"Hello world: Are you there?"}},
		{"ellipsis", "Hello world... Are you there?", 0, []string{"Hello world... Are you there?"}},

		{"cr", "Hello world...\rAre you there?", 0, []string{"Hello world...\r", "Are you there?"}},
		{"lf leading space", "Hello world...\n Are you there?", 0, []string{"Hello world...\n", " Are you there?"}},
		{"lf", "Hello world...\nAre you there?", 0, []string{"Hello world...\n", "Are you there?"}},
		{"crlf", "Hello world...\r\nAre you there?", 0, []string{"Hello world...\r\n", "Are you there?"}},
		{"crlfcr", "Hello world...\r\n\rAre you there?", 0, []string{"Hello world...\r\n\r", "Are you there?"}},
		{"lfcrlf", "Hello world...\n\r\nAre you there?", 0, []string{"Hello world...\n\r\n", "Are you there?"}},
		{"lflf", "Hello world...\n\nAre you there?", 0, []string{"Hello world...\n\n", "Are you there?"}},
		{"crcr", "Hello world...\r\rAre you there?", 0, []string{"Hello world...\r\r", "Are you there?"}},
		{"break after exclamation", "Hello!\nWorld", 0, []string{"Hello!\n", "World"}},
		{"break trimmed", "Hello world...\n\nAre you there?", SplitTrim, []string{"Hello world...", "Are you there?"}},

		{"lowercase abbreviation", "Hello mr. Smith.", 0, []string{"Hello mr. Smith."}},
		{"acronym", "Hello, OMG Kittens!", 0, []string{"Hello, OMG Kittens!"}},
		{"long abbreviation", "Hello, abbrev. Kittens!", 0, []string{"Hello, abbrev. Kittens!"}},
		{"dotted acronym", "Hello, O.M.G. Kittens!", 0, []string{"Hello, O.M.G. Kittens!"}},
		{"initials", "Last week, former director of the A.B.C. John B. Smith was fired.", 0,
			[]string{"Last week, former director of the A.B.C. John B. Smith was fired."}},
		{"title", "Mr. Smith was not available for comment..", 0, []string{"Mr. Smith was not available for comment.."}},
		{"abbreviation then sentence", "Hello mr. Smith. Are you there?", 0, []string{"Hello mr. Smith.", " Are you there?"}},

		{"one word questions", "You? Smith?", 0, []string{"You?", " Smith?"}},
		{"question then one word", "You there? Smith?", 0, []string{"You there?", " Smith?"}},
		{"one word after abbreviation", "You mr. Smith?", 0, []string{"You mr. Smith?"}},
		{"two words after period", "Are you there. Mister Smith?", 0, []string{"Are you there.", " Mister Smith?"}},
		{"comma after name", "Are you there. Smith, sir?", 0, []string{"Are you there.", " Smith, sir?"}},
		{"title after period", "Are you there. Mr. Smith?", 0, []string{"Are you there.", " Mr. Smith?"}},

		{"parenthesis at end", "You there (not here!). Mister Smith", 0, []string{"You there (not here!).", " Mister Smith"}},
		{"parenthesis inside", "You (not him!) here. Mister Smith", 0, []string{"You (not him!) here.", " Mister Smith"}},
		{"parenthesis at start", "(What!) you here. Mister Smith", 0, []string{"(What!) you here.", " Mister Smith"}},
		{"plain parenthesis at end", "You there (not here). Mister Smith", 0, []string{"You there (not here).", " Mister Smith"}},
		{"plain parenthesis inside", "You (not him) here. Mister Smith", 0, []string{"You (not him) here.", " Mister Smith"}},
		{"plain parenthesis at start", "(What) you here. Mister Smith", 0, []string{"(What) you here.", " Mister Smith"}},
		{"only parentheses", ")))", 0, []string{")))"}},
		{"only terminals", "...", 0, []string{"..."}},
		{"only definite terminals", "!?", 0, []string{"!?"}},

		{"plain quotes", `Fix "these" quotes`, 0, []string{`Fix "these" quotes`}},
		{"angle quotes", "Fix «these« quotes", 0, []string{`Fix "these" quotes`}},
		{"curly quotes", "Fix “these” quotes", 0, []string{`Fix "these" quotes`}},
		{"entity quotes", "Fix &quot;these&quot; quotes", 0, []string{`Fix "these" quotes`}},
		{"closing quote", `"Stop!" he said.`, 0, []string{`"Stop!" he said.`}},
		{"quote inside", `He said "Stop!" and left.`, 0, []string{`He said "Stop!" and left.`}},

		{"decimal", "The price is 25.50, including postage and packing.", 0,
			[]string{"The price is 25.50, including postage and packing."}},
		{"currency", "It costs $2.50! Just kidding.", 0, []string{"It costs $2.50!", " Just kidding."}},
		{"version", "Upgrade to 1.2.3 today. It is faster.", SplitTrim, []string{"Upgrade to 1.2.3 today.", "It is faster."}},

		{"multibyte", "Schöne Grüße aus Köln. Wie geht es dir?", SplitTrim,
			[]string{"Schöne Grüße aus Köln.", "Wie geht es dir?"}},
		{"multibyte abbreviation", "Hallo Ök. Überall gibt es Bier.", 0, []string{"Hallo Ök. Überall gibt es Bier."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.text, tt.opts)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{" ", 0},
		{"\n", 0},
		{"Hello", 1},
		{"Hello?!", 1},
		{"Hello world?!", 1},
		{"Hello world. Are you there", 2},
		{"Hello world... Are you there?", 1},
		{"Hello world...\r\n\rAre you there?", 2},
		{"Hello there. Brave new world.", 2},
		{"Hello there... Brave new world.", 1},
		{"Hello there?... Brave new world.", 2},
		{"Hello there!... Brave new world.", 2},
		{"Hello there!!! Brave new world.", 2},
		{"Hello there??? Brave new world.", 2},
		{"You? Smith?", 2},
		{"You there? Smith?", 2},
		{"You mr. Smith?", 1},
		{"Are you there. Mr. Smith?", 2},
		{"The price is 25.50, including postage and packing.", 1},
		{"Hello there, Mr. Smith. What're you doing today... Smith, my friend?\n\n" +
			"I hope it's good. This last sentence will cost you $2.50! Just kidding :)", 5},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := Count(tt.text); got != tt.want {
				t.Errorf("Count(%q) = %d, want %d", tt.text, got, tt.want)
			}
			if got := len(Split(tt.text, 0)); got != tt.want {
				t.Errorf("len(Split(%q)) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestSplitKeepsText(t *testing.T) {
	texts := []string{
		"Hello there, Mr. Smith. What're you doing today... Smith, my friend?",
		"You there (not here!). Mister Smith",
		"It costs $2.50! Just kidding.",
		`"Stop!" he said. Then he left.`,
		"AB. C1.5 is odd.",
	}

	for _, text := range texts {
		var joined string
		for _, s := range Split(text, 0) {
			joined += s
		}
		if joined != text {
			t.Errorf("joined sentences = %q, want %q", joined, text)
		}
	}
}

func TestNewWithPipeline(t *testing.T) {
	s := NewWithPipeline(Pipeline{tokenizeAll})
	got := s.Split("Hello world. Bye", 0)
	want := []string{"Hello world", ".", " Bye"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Split() = %q, want %q", got, want)
	}
	if n := s.Count("Hello world. Bye"); n != 3 {
		t.Errorf("Count() = %d, want 3", n)
	}
}
