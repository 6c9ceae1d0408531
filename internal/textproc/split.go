package textproc

import "strings"

// sentenceEnders are the marks that terminate a Chinese sentence.
const sentenceEnders = "。！？"

// splitSentences splits text at sentence-ending punctuation, keeping each
// mark attached to the fragment it ends. Fragments that are empty after
// trimming are dropped.
func splitSentences(text string) []string {
	var frags []string
	var b strings.Builder

	for _, r := range text {
		b.WriteRune(r)
		if strings.ContainsRune(sentenceEnders, r) {
			if f := strings.TrimSpace(b.String()); f != "" {
				frags = append(frags, f)
			}
			b.Reset()
		}
	}
	if f := strings.TrimSpace(b.String()); f != "" {
		frags = append(frags, f)
	}

	return frags
}

func endsSentence(frag string) bool {
	runes := []rune(frag)
	return len(runes) > 0 && strings.ContainsRune(sentenceEnders, runes[len(runes)-1])
}
