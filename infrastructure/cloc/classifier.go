// Package cloc classifies file content into per-language line counts:
// code, comment, and blank lines. Language detection is by file extension,
// counting by per-language comment syntax. The three buckets are disjoint
// and sum to the total line count.
package cloc

import (
	"strings"

	"github.com/xray4scm/xray/domain/scm"
	"github.com/xray4scm/xray/domain/service"
)

// Classifier implements service.Classifier. Stateless and safe for
// concurrent use.
type Classifier struct{}

func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify counts the lines of content. Empty content yields no counts.
// One file maps to exactly one language; extensions without a mapping are
// counted under UnknownLanguage with no comment syntax, so every non-blank
// line is code.
func (c *Classifier) Classify(filename string, content []byte) ([]service.LineCount, error) {
	if len(content) == 0 {
		return nil, nil
	}

	language := LanguageForFile(filename)
	syntax := syntaxByLanguage[language]

	count := service.LineCount{Language: language}
	inBlock := false
	for _, line := range splitLines(string(content)) {
		trimmed := strings.TrimSpace(line)
		switch {
		case inBlock:
			count.Comments++
			if syntax.blockEnd != "" && strings.Contains(trimmed, syntax.blockEnd) {
				inBlock = false
			}
		case trimmed == "":
			count.Blanks++
		case isLineComment(trimmed, syntax):
			count.Comments++
		case syntax.blockStart != "" && strings.HasPrefix(trimmed, syntax.blockStart):
			count.Comments++
			rest := trimmed[len(syntax.blockStart):]
			if !strings.Contains(rest, syntax.blockEnd) {
				inBlock = true
			}
		default:
			count.Code++
		}
	}

	return []service.LineCount{count}, nil
}

// LanguageForFile maps a file basename to its language name.
func LanguageForFile(filename string) string {
	if language, ok := languageByExtension[scm.Extension(filename)]; ok {
		return language
	}
	return UnknownLanguage
}

func isLineComment(trimmed string, syntax commentSyntax) bool {
	for _, marker := range syntax.line {
		if strings.HasPrefix(trimmed, marker) {
			return true
		}
	}
	return false
}

// splitLines splits on newlines without counting a trailing newline as an
// extra blank line.
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

var _ service.Classifier = (*Classifier)(nil)
