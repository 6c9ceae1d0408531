package textproc

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/tantran-dev/vidscribe/internal/transcript"
)

// minParagraphChars is how much text a paragraph must accumulate before a
// sentence end is allowed to close it.
const minParagraphChars = 50

var (
	spaceRun      = regexp.MustCompile(`[ \t]+`)
	leadingSpaces = regexp.MustCompile(`\n[ \t]+`)
)

// Document flattens cleaned segments into timestamp-free prose, re-chunked
// into paragraphs separated by blank lines. Paragraph breaks happen at
// sentence-ending punctuation once enough text has accumulated; text that
// never reaches the threshold comes back as a single paragraph.
func Document(segments []transcript.Segment) string {
	if len(segments) == 0 {
		return ""
	}

	texts := make([]string, 0, len(segments))
	for _, seg := range segments {
		texts = append(texts, seg.Text)
	}
	flat := strings.Join(texts, " ")

	var paragraphs []string
	var buf strings.Builder

	for _, frag := range splitSentences(flat) {
		buf.WriteString(frag)
		if endsSentence(frag) {
			para := strings.TrimSpace(buf.String())
			if utf8.RuneCountInString(para) > minParagraphChars {
				paragraphs = append(paragraphs, para)
				buf.Reset()
			}
		}
	}
	if rest := strings.TrimSpace(buf.String()); rest != "" {
		paragraphs = append(paragraphs, rest)
	}

	if len(paragraphs) == 0 {
		paragraphs = []string{flat}
	}

	doc := strings.Join(paragraphs, "\n\n")
	doc = spaceRun.ReplaceAllString(doc, " ")
	doc = leadingSpaces.ReplaceAllString(doc, "\n")

	return strings.TrimSpace(doc)
}
