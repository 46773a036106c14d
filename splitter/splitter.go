// Package splitter puts the rule-based segmenter and a statistical baseline
// behind one interface so callers can compare them.
package splitter

import (
	"strings"

	"github.com/jdkato/prose/v2"
	"go.uber.org/zap"

	"sentencer/sentence"
)

type SentenceSplitter interface {
	Name() string
	Split(text string, trim bool) []string
}

// RuleSplitter wraps sentence.Segmenter.
type RuleSplitter struct {
	segmenter *sentence.Segmenter
}

func NewRuleSplitter() RuleSplitter {
	return RuleSplitter{segmenter: sentence.New()}
}

func (RuleSplitter) Name() string { return "rule" }

func (r RuleSplitter) Split(text string, trim bool) []string {
	var opts sentence.Options
	if trim {
		opts |= sentence.SplitTrim
	}
	return r.segmenter.Split(text, opts)
}

// ProseSplitter segments with prose's punkt model. Its output is always
// trimmed; prose does not keep inter-sentence whitespace.
type ProseSplitter struct {
	logger *zap.Logger
}

func NewProseSplitter(logger *zap.Logger) ProseSplitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return ProseSplitter{logger: logger}
}

func (ProseSplitter) Name() string { return "prose" }

func (p ProseSplitter) Split(text string, _ bool) []string {
	sentences := make([]string, 0)
	if strings.TrimSpace(text) == "" {
		return sentences
	}

	doc, err := prose.NewDocument(text, prose.WithTagging(false), prose.WithExtraction(false))
	if err != nil {
		p.logger.Warn("Failed to create prose document for sentence detection", zap.Error(err))
		return sentences
	}

	for _, sent := range doc.Sentences() {
		if s := strings.TrimSpace(sent.Text); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// Agree reports whether two splitters found the same sentences once
// whitespace is ignored.
func Agree(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if strings.Join(strings.Fields(a[i]), " ") != strings.Join(strings.Fields(b[i]), " ") {
			return false
		}
	}
	return true
}
