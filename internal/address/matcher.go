// Package address recognises strings shaped like three word addresses.
//
// A word is a run of characters that are not digits, whitespace (vertical tab
// included), no-break space, invalid UTF-8, or one of the symbols in
// excludedSymbols. Words are joined by any
// of the full-stop characters in Delimiters. In an address checked by
// IsPossible3wa each word may be made of up to four sub-words separated by a
// space or a no-break space, as some languages use multi-word entries.
package address

import (
	"fmt"
	"iter"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Delimiters are the full-stop characters accepted between words.
const Delimiters = ".｡。･・︒។։။۔።।"

// SubWordSeparators join the sub-words of a multi-word entry.
const SubWordSeparators = "\u0020\u00a0"

const excludedSymbols = "`~!@#$%^&*()+-_=[{]}\\|'<,.>?/\";:£§º©®"

// maxSubWords bounds the number of sub-words in one word.
const maxSubWords = 4

var (
	possibleRegexp = regexp.MustCompile(possiblePattern())
	findRegexp     = regexp.MustCompile(findPattern())
)

// wordClass excludes \v on top of RE2's \s, and U+FFFD so that bytes which
// are not valid UTF-8 never count as letters.
func wordClass() string {
	return `[^0-9\s\v\x{00A0}\x{FFFD}` + classEscape(excludedSymbols) + `]+`
}

func delimiterClass() string {
	return `[` + classEscape(Delimiters) + `]`
}

func possiblePattern() string {
	word := wordClass() + `(?:[` + classEscape(SubWordSeparators) + `]` + wordClass() + `){0,` +
		strconv.Itoa(maxSubWords-1) + `}`
	d := delimiterClass()
	return `^/*(?:` + word + d + word + d + word + `)$`
}

func findPattern() string {
	w, d := wordClass(), delimiterClass()
	return w + d + w + d + w
}

// classEscape quotes ASCII punctuation for use inside a character class and
// spells out the space characters, leaving other runes literal.
func classEscape(chars string) string {
	var sb strings.Builder
	for _, r := range chars {
		switch {
		case r == '\u0020' || r == '\u00a0':
			fmt.Fprintf(&sb, `\x{%04X}`, r)
		case r < utf8.RuneSelf && (unicode.IsPunct(r) || unicode.IsSymbol(r)):
			sb.WriteByte('\\')
			sb.WriteRune(r)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// IsPossible3wa reports whether the whole of text, ignoring surrounding
// whitespace and leading slashes, is shaped like a three word address. It
// does not check the address exists: "x.x.x" is possible.
func IsPossible3wa(text string) bool {
	return possibleRegexp.MatchString(strings.TrimSpace(text))
}

// FindPossible3wa yields every non-overlapping word.word.word substring of
// text, left to right. The sequence is lazy and may be iterated repeatedly.
func FindPossible3wa(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		rest := text
		for {
			loc := findRegexp.FindStringIndex(rest)
			if loc == nil {
				return
			}
			if !yield(rest[loc[0]:loc[1]]) {
				return
			}
			rest = rest[loc[1]:]
		}
	}
}

// FindAllPossible3wa collects FindPossible3wa into a slice. It never returns nil.
func FindAllPossible3wa(text string) []string {
	found := slices.Collect(FindPossible3wa(text))
	if found == nil {
		return []string{}
	}
	return found
}
