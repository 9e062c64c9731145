package outline

import (
	"regexp"
	"strings"
)

// MaxSentenceLen is the length above which a sentence is broken at clause boundaries.
const MaxSentenceLen = 150

var (
	sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]+`)
	clauseBoundary  = regexp.MustCompile(`,\s+[A-Z]`)
)

// SplitSentences breaks a line after every run of '.', '!' or '?'. Only
// terminated sentences are returned, so text after the last terminator is
// dropped; a line without any terminator is returned whole.
func SplitSentences(line string) []string {
	sentences := sentencePattern.FindAllString(line, -1)
	if len(sentences) == 0 {
		return []string{line}
	}
	return sentences
}

// SplitLongSentence splits a sentence longer than MaxSentenceLen at every comma
// that is followed by whitespace and an upper-case letter. Parts are trimmed
// and empty parts dropped.
func SplitLongSentence(sentence string) []string {
	sentence = strings.TrimSpace(sentence)
	if runeLen(sentence) <= MaxSentenceLen {
		if sentence == "" {
			return nil
		}
		return []string{sentence}
	}

	var parts []string
	start := 0
	for _, loc := range clauseBoundary.FindAllStringIndex(sentence, -1) {
		parts = append(parts, sentence[start:loc[0]])
		start = loc[1] - 1 // keep the upper-case letter
	}
	parts = append(parts, sentence[start:])

	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
