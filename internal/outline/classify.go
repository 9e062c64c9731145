// Package outline turns the raw OCR text of one slide into a structured outline
// of titles, bullet items, sub-points and sentence-split prose.
//
// OCR output carries no markup, so structure is inferred from typographic cues:
// letter case, line length, trailing punctuation and leading bullet glyphs.
// Classification is a single left-to-right pass; the only state carried between
// lines is the pending heading and the short phrases collected beneath it.
package outline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxTitleLen  = 100
	minTitleLen  = 3 // a title must be longer than this
	titleGrowth  = 1.5
	maxPhraseLen = 80
)

var (
	bulletPrefix = regexp.MustCompile(`^[-*•◦▪→➤✓✔][\s\p{Z}]*`)
	numberPrefix = regexp.MustCompile(`^[0-9]+[.)][\s\p{Z}]*`)
	numberStart  = regexp.MustCompile(`^[0-9]+[.)]`)
)

// rawLine is a trimmed, non-empty line with a view of the line after it.
type rawLine struct {
	Text    string
	Index   int
	Next    string
	HasNext bool
}

type lineClass int

const (
	classTitle lineClass = iota
	classBullet
	classShortPhrase
	classPlain
)

type rule struct {
	class lineClass
	match func(l rawLine, s scanState) bool
}

// rules are evaluated top to bottom; a line that matches none is plain prose.
var rules = []rule{
	{classTitle, isTitle},
	{classBullet, isBullet},
	{classShortPhrase, isShortPhrase},
}

func classifyLine(l rawLine, s scanState) lineClass {
	for _, r := range rules {
		if r.match(l, s) {
			return r.class
		}
	}
	return classPlain
}

func isTitle(l rawLine, _ scanState) bool {
	n := runeLen(l.Text)
	if n >= maxTitleLen || n <= minTitleLen {
		return false
	}
	if isUpperLine(l.Text) {
		return true
	}
	if !startsUpper(l.Text) {
		return false
	}
	return !l.HasNext || float64(runeLen(l.Next)) > float64(n)*titleGrowth
}

func isBullet(l rawLine, _ scanState) bool {
	return bulletPrefix.MatchString(l.Text) || numberStart.MatchString(l.Text)
}

func isShortPhrase(l rawLine, s scanState) bool {
	return s.hasPending() && runeLen(l.Text) < maxPhraseLen && !strings.HasSuffix(l.Text, ".")
}

// isUpperLine reports whether the line has upper-case letters and no
// lower-case ones. Lines in scripts without case never qualify.
func isUpperLine(s string) bool {
	hasUpper := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

func startsUpper(s string) bool {
	return s != "" && s[0] >= 'A' && s[0] <= 'Z'
}

func cleanBullet(s string) string {
	s = bulletPrefix.ReplaceAllString(s, "")
	return numberPrefix.ReplaceAllString(s, "")
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

type heading struct {
	Kind Kind
	Text string
}

// scanState is the pending heading and the short phrases gathered under it.
type scanState struct {
	pending  heading
	subItems []string
}

func (s scanState) hasPending() bool {
	return s.pending.Text != ""
}

// flush emits the pending heading followed by its sub-items and clears both.
func (s scanState) flush() (scanState, []ContentItem) {
	if !s.hasPending() {
		return s, nil
	}
	out := make([]ContentItem, 0, len(s.subItems)+1)
	out = append(out, ContentItem{Kind: s.pending.Kind, Text: s.pending.Text})
	for _, sub := range s.subItems {
		out = append(out, ContentItem{Kind: SubItem, Text: sub})
	}
	return scanState{}, out
}

func (s scanState) step(l rawLine) (scanState, []ContentItem) {
	switch classifyLine(l, s) {
	case classTitle:
		next, out := s.flush()
		next.pending = heading{Kind: Title, Text: l.Text}
		return next, out

	case classBullet:
		cleaned := cleanBullet(l.Text)
		next, out := s, []ContentItem(nil)
		// the same heading seen again is neither flushed nor duplicated
		if s.hasPending() && s.pending.Text != cleaned {
			next, out = s.flush()
		}
		next.pending = heading{Kind: Item, Text: cleaned}
		return next, out

	case classShortPhrase:
		next := s
		next.subItems = append(s.subItems[:len(s.subItems):len(s.subItems)], l.Text)
		return next, nil

	default:
		next, out := s.flush()
		for _, sentence := range SplitSentences(l.Text) {
			sentence = strings.TrimSpace(sentence)
			if sentence == "" {
				continue
			}
			for _, part := range SplitLongSentence(sentence) {
				out = append(out, ContentItem{Kind: Plain, Text: part})
			}
		}
		next.pending = heading{}
		return next, out
	}
}

func (s scanState) finish() []ContentItem {
	if s.hasPending() {
		_, out := s.flush()
		return out
	}
	out := make([]ContentItem, 0, len(s.subItems))
	for _, sub := range s.subItems {
		out = append(out, ContentItem{Kind: SubItem, Text: sub})
	}
	return out
}

func splitLines(text string) []rawLine {
	var texts []string
	for _, line := range strings.FieldsFunc(text, isLineBreak) {
		if line = strings.TrimSpace(line); line != "" {
			texts = append(texts, line)
		}
	}
	lines := make([]rawLine, len(texts))
	for i, t := range texts {
		lines[i] = rawLine{Text: t, Index: i}
		if i+1 < len(texts) {
			lines[i].Next = texts[i+1]
			lines[i].HasNext = true
		}
	}
	return lines
}

func isLineBreak(r rune) bool {
	return r == '\n' || r == '\r'
}

// Classify converts the raw text recognised on one slide into its outline.
// The result is never empty: blank input yields NoTextPlaceholder and input
// that classifies to nothing yields NoContentPlaceholder.
func Classify(text string) Outline {
	lines := splitLines(text)
	if len(lines) == 0 {
		return Outline{{Kind: Plain, Text: NoTextPlaceholder}}
	}

	var (
		state   scanState
		emitted []ContentItem
		out     Outline
	)
	for _, l := range lines {
		state, emitted = state.step(l)
		out = append(out, emitted...)
	}
	out = append(out, state.finish()...)

	result := out[:0]
	for _, it := range out {
		if strings.TrimSpace(it.Text) != "" {
			result = append(result, it)
		}
	}
	if len(result) == 0 {
		return Outline{{Kind: Plain, Text: NoContentPlaceholder}}
	}
	return result
}
