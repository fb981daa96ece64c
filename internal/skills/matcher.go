// Package skills detects catalog skills in extracted resume text.
package skills

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"resume-matcher/internal/catalog"
)

// Mode selects how keywords are located in text.
type Mode string

const (
	// ModeSubstring matches a keyword anywhere in the text, including inside
	// longer tokens ("js" matches "jsonschema").
	ModeSubstring Mode = "substring"
	// ModeWord requires non-alphanumeric characters (or text edges) around
	// the keyword.
	ModeWord Mode = "word"
)

// ParseMode maps a config value to a Mode, defaulting to ModeSubstring.
func ParseMode(raw string) Mode {
	if Mode(strings.ToLower(strings.TrimSpace(raw))) == ModeWord {
		return ModeWord
	}
	return ModeSubstring
}

// Matcher is safe for concurrent use; it never mutates its table.
type Matcher struct {
	table []catalog.Skill
	mode  Mode
}

// NewMatcher copies the keyword table out of cat.
func NewMatcher(cat catalog.Catalog, mode Mode) *Matcher {
	norm := cat.Normalize()
	if mode != ModeWord {
		mode = ModeSubstring
	}
	return &Matcher{table: norm.Skills, mode: mode}
}

// Mode reports the active matching mode.
func (m *Matcher) Mode() Mode {
	return m.mode
}

// Vocabulary returns a copy of the keyword table in table order.
func (m *Matcher) Vocabulary() []catalog.Skill {
	return catalog.Catalog{Skills: m.table}.Clone().Skills
}

// Match returns the tags whose keywords occur in text, in table order.
func (m *Matcher) Match(text string) []string {
	found := make([]string, 0, len(m.table))
	text = strings.ToLower(text)
	if text == "" {
		return found
	}
	for _, skill := range m.table {
		for _, kw := range skill.Keywords {
			if m.contains(text, kw) {
				found = append(found, skill.Tag)
				break
			}
		}
	}
	return found
}

func (m *Matcher) contains(text, kw string) bool {
	if m.mode == ModeWord {
		return containsWord(text, kw)
	}
	return strings.Contains(text, kw)
}

// containsWord reports whether kw appears in text bounded by non-alphanumeric
// runes or the text edges.
func containsWord(text, kw string) bool {
	if kw == "" {
		return false
	}
	for start := 0; start <= len(text)-len(kw); {
		idx := strings.Index(text[start:], kw)
		if idx < 0 {
			return false
		}
		begin := start + idx
		end := begin + len(kw)
		if boundaryBefore(text, begin) && boundaryAfter(text, end) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[begin:])
		start = begin + size
	}
	return false
}

func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !isWordRune(r)
}

func boundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
