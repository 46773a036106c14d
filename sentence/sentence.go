// Package sentence segments text into sentences.
//
// Segmentation is rule based and tuned for germanic, latin-alphabet languages
// such as English, Dutch and German. It is multibyte safe. Counts should be
// very close to the truth; the exact clipping of sentences may not be.
//
// Text passes through a fixed series of stages. Each stage takes the
// fragments produced by the previous one and regroups them without adding,
// dropping or reordering characters:
//
//	tokenize            "Hello mr. Smith. Bye!" -> "Hello mr", ".", " Smith", ".", " Bye", "!"
//	mergeParens         ")" runs join the run before them
//	mergeRuns           terminal runs join the text before them
//	mergeAbbreviations  "Mr." style endings join the next fragment
//	mergeClosingQuotes  closing quotes join the statement they close
//	assemble            fragments are grouped into sentences
//
// Before the stages run, HTML entities and typographic quotes are normalized,
// numbers such as 25.50 are shielded from being read as sentence ends, and
// the text is cut into line groups.
package sentence

// Options is a set of flags for Split.
type Options int

// SplitTrim trims surrounding whitespace from every returned sentence.
// Without it, whitespace between sentences is kept at the start of the
// sentence that follows it, and line breaks at the end of the sentence they
// follow.
const SplitTrim Options = 0x1

// Stage is one step of the segmentation pipeline.
type Stage func(fragments []string) []string

// Pipeline is an ordered list of stages.
type Pipeline []Stage

// Apply runs the stages in order, feeding each the output of the previous.
func (p Pipeline) Apply(fragments []string) []string {
	for _, stage := range p {
		fragments = stage(fragments)
	}
	return fragments
}

// DefaultPipeline returns the stages used by Split, in order.
func DefaultPipeline() Pipeline {
	return Pipeline{
		tokenizeAll,
		mergeParens, // also works after mergeRuns or mergeAbbreviations
		mergeRuns,
		mergeAbbreviations,
		mergeClosingQuotes,
		assemble,
	}
}

func tokenizeAll(lines []string) []string {
	var runs []string
	for _, line := range lines {
		runs = append(runs, tokenize(line)...)
	}
	return runs
}

// Segmenter splits text into sentences using a pipeline.
type Segmenter struct {
	pipeline Pipeline
}

// New returns a Segmenter running the default pipeline.
func New() *Segmenter {
	return &Segmenter{pipeline: DefaultPipeline()}
}

// NewWithPipeline returns a Segmenter running a custom pipeline on every
// line group.
func NewWithPipeline(p Pipeline) *Segmenter {
	return &Segmenter{pipeline: p}
}

// Split returns the sentences found in text. The result is empty, not nil,
// when text holds no sentences.
func (s *Segmenter) Split(text string, opts Options) []string {
	text = Protect(Normalize(text))

	sentences := make([]string, 0)
	for _, line := range segmentLines(text) {
		if Trim(line) == "" {
			continue
		}
		sentences = append(sentences, s.pipeline.Apply([]string{line})...)
	}

	for i, sentence := range sentences {
		sentence = Restore(sentence)
		if opts&SplitTrim != 0 {
			sentence = Trim(sentence)
		}
		sentences[i] = sentence
	}
	return sentences
}

// Count returns the number of sentences in text.
func (s *Segmenter) Count(text string) int {
	return len(s.Split(text, 0))
}

var defaultSegmenter = New()

// Split returns the sentences found in text using the default pipeline.
func Split(text string, opts Options) []string {
	return defaultSegmenter.Split(text, opts)
}

// Count returns the number of sentences in text using the default pipeline.
func Count(text string) int {
	return defaultSegmenter.Count(text)
}
