package textproc

import (
	"regexp"
	"strings"
)

// Speech-to-text output carries recognition artifacts: bracketed noise tags
// like [音乐] or 【掌声】, stuttered fillers ("然后然后然后"), and runaway
// punctuation. Normalize strips them in a fixed order so the result is
// stable under repeated application.
var (
	noisePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\[.*?\]`),
		regexp.MustCompile(`\(.*?\)`),
		regexp.MustCompile(`【.*?】`),
	}

	whitespaceRun = regexp.MustCompile(`\s+`)

	// Common spoken-Chinese filler repetitions collapsed to one occurrence.
	fillerPatterns = []struct {
		re   *regexp.Regexp
		repl string
	}{
		{regexp.MustCompile(`(?:然后){2,}`), "然后"},
		{regexp.MustCompile(`(?:就是){2,}`), "就是"},
		{regexp.MustCompile(`(?:那个){2,}`), "那个"},
		{regexp.MustCompile(`(?:这个){2,}`), "这个"},
		{regexp.MustCompile(`我{2,}`), "我"},
		{regexp.MustCompile(`你{2,}`), "你"},
		{regexp.MustCompile(`他{2,}`), "他"},
		{regexp.MustCompile(`嗯{2,}`), "嗯"},
		{regexp.MustCompile(`啊+`), "啊"},
	}
)

// Normalize cleans one piece of recognized text. The result may be empty;
// callers must drop segments that normalize to the empty string.
//
// Bracket removal runs before whitespace collapse so the spaces left behind
// by stripped annotations get folded away.
func Normalize(text string) string {
	for _, re := range noisePatterns {
		text = re.ReplaceAllString(text, "")
	}

	text = strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))

	// Runs of 3+ identical CJK characters or list punctuation down to one.
	// RE2 has no backreferences, so this is a rune scan rather than a regexp.
	text = collapseRuns(text, 3, isCollapsibleRune)

	for _, p := range fillerPatterns {
		text = p.re.ReplaceAllString(text, p.repl)
	}

	// Doubled sentence punctuation ("。。", "！！") down to one.
	text = collapseRuns(text, 2, isSentencePunct)

	return strings.TrimSpace(text)
}

// collapseRuns rewrites runs of minRun or more identical runes accepted by
// match down to a single occurrence. Runes outside the set pass through.
func collapseRuns(s string, minRun int, match func(rune) bool) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(runes); {
		j := i + 1
		for j < len(runes) && runes[j] == runes[i] {
			j++
		}
		if j-i >= minRun && match(runes[i]) {
			b.WriteRune(runes[i])
		} else {
			for k := i; k < j; k++ {
				b.WriteRune(runes[k])
			}
		}
		i = j
	}

	return b.String()
}

func isCollapsibleRune(r rune) bool {
	return (r >= 0x4e00 && r <= 0x9fa5) || strings.ContainsRune("，。！？、", r)
}

func isSentencePunct(r rune) bool {
	return strings.ContainsRune("，。！？", r)
}
