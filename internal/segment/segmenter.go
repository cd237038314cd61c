package segment

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/clausewise/clausewise/internal/model"
)

// markerPattern matches structural clause boundaries: decimal numbering
// ("12.3 Term"), simple numbering ("12. Term") and literal
// Article/Clause/Section headers, each followed by a capitalized word.
var markerPattern = regexp.MustCompile(`\d+\.\d+\.?\s+[A-Z]|\d+\.\s+[A-Z]|Article\s+\d+|Clause\s+\d+|Section\s+\d+`)

// paragraphSplit delimits blank-line separated paragraphs for the
// fallback path.
var paragraphSplit = regexp.MustCompile(`\n[ \t]*\n`)

// Segmenter splits raw contract text into an ordered clause sequence.
// Spans shorter than the configured minimum are silently dropped and
// ids are assigned after filtering, so they are always contiguous
// starting at C001.
type Segmenter struct {
	minLength int
}

// NewSegmenter creates a segmenter using the configured minimum clause
// length.
func NewSegmenter(cfg *model.Config) *Segmenter {
	return &Segmenter{minLength: cfg.MinClauseLength}
}

// Segment splits text on structural markers. When the document contains
// no markers at all it falls back to paragraph segmentation. An empty
// document yields an empty sequence, not an error.
func (s *Segmenter) Segment(text string) []model.Clause {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	locs := markerPattern.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return s.segmentParagraphs(text)
	}

	// Each marker starts a clause; its content runs to the next marker
	// or end of document. Text before the first marker is preamble and
	// is not a clause.
	var clauses []model.Clause
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}

		label := strings.TrimSpace(text[loc[0]:loc[1]])
		content := strings.TrimSpace(text[loc[1]:end])
		if len(content) < s.minLength {
			continue
		}

		clauses = append(clauses, newClause(len(clauses)+1, label, content))
	}

	return clauses
}

func (s *Segmenter) segmentParagraphs(text string) []model.Clause {
	var clauses []model.Clause
	for _, para := range paragraphSplit.Split(text, -1) {
		para = strings.TrimSpace(para)
		if len(para) < s.minLength {
			continue
		}

		n := len(clauses) + 1
		clauses = append(clauses, newClause(n, fmt.Sprintf("Para %d", n), para))
	}
	return clauses
}

func newClause(n int, label, content string) model.Clause {
	return model.Clause{
		ID:        fmt.Sprintf("C%03d", n),
		Label:     label,
		Content:   content,
		Length:    len(content),
		WordCount: len(strings.Fields(content)),
	}
}
