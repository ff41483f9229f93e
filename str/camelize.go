package str

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// DefaultCamelizeDelimiters is the default delimiter set used by Camelize.
	DefaultCamelizeDelimiters = "-_"
	// DefaultUncamelizeDelimiter is the default delimiter used by Uncamelize.
	DefaultUncamelizeDelimiter = "_"
)

// Camelize converts the 'text' into camel case. A new word starts at the beginning
// of the text and right after any character from the 'delimiters' set. The first
// letter of each word is upper-cased, the delimiters are dropped and all other
// characters keep their case. With 'lowercaseFirst' the first letter of the text
// is lower-cased instead.
func Camelize(text, delimiters string, lowercaseFirst bool) string {
	return camelize(text, delimiters, lowercaseFirst, false)
}

// Uncamelize converts the camel case 'text' into lower case words separated
// by the 'delimiter'. The delimiter is inserted before every upper-case letter
// that is not the first character of the text.
func Uncamelize(text, delimiter string) string {
	var sb strings.Builder
	sb.Grow(len(text) + len(text)/2)

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !unicode.IsUpper(r) {
			sb.WriteString(text[i : i+size])
		} else {
			if i > 0 {
				sb.WriteString(delimiter)
			}
			sb.WriteRune(unicode.ToLower(r))
		}
		i += size
	}
	return sb.String()
}

func camelize(text, delimiters string, lowercaseFirst, normalize bool) string {
	var sb strings.Builder
	sb.Grow(len(text))

	wordStart, first := true, true
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		raw := text[i : i+size]
		i += size

		// invalid bytes are copied as they are
		if r != utf8.RuneError || size > 1 {
			if strings.ContainsRune(delimiters, r) {
				wordStart = true
				continue
			}
		}

		cased := r
		switch {
		case wordStart && first && lowercaseFirst:
			cased = unicode.ToLower(r)
		case wordStart:
			cased = unicode.ToUpper(r)
		case normalize:
			cased = unicode.ToLower(r)
		}
		if cased == r {
			sb.WriteString(raw)
		} else {
			sb.WriteRune(cased)
		}
		wordStart, first = false, false
	}
	return sb.String()
}
