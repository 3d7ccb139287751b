package casing

import "unicode"

// tokenize splits s into word tokens. A new token starts at every separator
// and at every camelCase or acronym boundary. Any other character that is
// not a letter or digit is dropped without starting a token, so the
// characters around it run together ("don't" tokenizes as "dont").
//
// Boundaries are decided against the original string, before stripping.
// Dots only separate when dotSeparates is set; everywhere else they are
// plain punctuation.
func tokenize(s string, dotSeparates bool) []string {
	runes := []rune(s)

	var tokens []string
	var tok []rune

	flush := func() {
		if len(tok) > 0 {
			tokens = append(tokens, string(tok))
			tok = tok[:0]
		}
	}

	for i, char := range runes {
		switch {
		case isSeparator(char, dotSeparates):
			flush()
		case unicode.IsLetter(char) || unicode.IsDigit(char):
			if len(tok) > 0 && boundaryBefore(runes, i) {
				flush()
			}
			tok = append(tok, char)
		default:
			// Punctuation disappears without ending the token.
		}
	}
	flush()

	return tokens
}

// isSeparator reports whether char splits words outright: any whitespace,
// underscore, hyphen, and the dot when the target style treats dots as
// separators.
func isSeparator(char rune, dotSeparates bool) bool {
	if dotSeparates && char == '.' {
		return true
	}
	return char == '_' || char == '-' || unicode.IsSpace(char)
}

// boundaryBefore reports whether a word boundary sits immediately before
// runes[i]. Two transitions count, both ASCII-only:
//
//   - camelCase: a lowercase letter or digit followed by an uppercase
//     letter ("fooBar", "mux2Router")
//   - end of acronym: a run of at least two uppercase letters followed by
//     an uppercase-lowercase pair, splitting before the pair
//     ("HTTPServer" -> "HTTP", "Server")
//
// A single capital before an uppercase-lowercase pair is not an acronym,
// so "AProvider" stays one word.
func boundaryBefore(runes []rune, i int) bool {
	if i == 0 {
		return false
	}
	prev, char := runes[i-1], runes[i]

	if (isLowerASCII(prev) || isDigitASCII(prev)) && isUpperASCII(char) {
		return true
	}

	return i >= 2 && i+1 < len(runes) &&
		isUpperASCII(char) && isLowerASCII(runes[i+1]) &&
		isUpperASCII(prev) && isUpperASCII(runes[i-2])
}

func isUpperASCII(char rune) bool { return char >= 'A' && char <= 'Z' }

func isLowerASCII(char rune) bool { return char >= 'a' && char <= 'z' }

func isDigitASCII(char rune) bool { return char >= '0' && char <= '9' }
