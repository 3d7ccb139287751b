package casing

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Style identifies an output naming convention for [Convert].
type Style int

const (
	// Kebab joins lowercased tokens with hyphens: "my-http-server".
	Kebab Style = iota
	// Camel joins tokens without a separator, lowercasing the first and
	// capitalizing the rest: "myHttpServer".
	Camel
	// Dot joins lowercased tokens with dots: "my.http.server". Dots in the
	// input separate words for this style only.
	Dot
	// Snake joins lowercased tokens with underscores: "my_http_server".
	Snake
	// ScreamingSnake joins uppercased tokens with underscores:
	// "MY_HTTP_SERVER".
	ScreamingSnake
	// Pascal joins capitalized tokens without a separator: "MyHttpServer".
	Pascal
	// Title joins title-cased tokens with spaces: "My Http Server".
	Title
)

// tokenCase is the per-token case rule applied while joining.
type tokenCase int

const (
	caseLower tokenCase = iota
	caseUpper
	caseCapital // first rune upper, remainder lower
	caseTitle   // Unicode title casing
)

// styleDef carries everything that distinguishes one style from another:
// the join separator, the case rule for the first and remaining tokens,
// and whether dots in the input count as separators.
type styleDef struct {
	name  string
	sep   string
	dot   bool
	first tokenCase
	rest  tokenCase
}

var styles = [...]styleDef{
	Kebab:          {name: "kebab", sep: "-"},
	Camel:          {name: "camel", rest: caseCapital},
	Dot:            {name: "dot", sep: ".", dot: true},
	Snake:          {name: "snake", sep: "_"},
	ScreamingSnake: {name: "screaming_snake", sep: "_", first: caseUpper, rest: caseUpper},
	Pascal:         {name: "pascal", first: caseCapital, rest: caseCapital},
	Title:          {name: "title", sep: " ", first: caseTitle, rest: caseTitle},
}

func (s Style) valid() bool {
	return s >= 0 && int(s) < len(styles)
}

// String returns the style's name as accepted by [ParseStyle].
func (s Style) String() string {
	if !s.valid() {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styles[s].name
}

// ParseStyle returns the Style named by s: "kebab", "camel", "dot",
// "snake", "screaming_snake", "pascal", or "title".
func ParseStyle(s string) (Style, error) {
	for i, def := range styles {
		if def.name == s {
			return Style(i), nil
		}
	}
	return 0, fmt.Errorf("casing: unknown style %q", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (s Style) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, fmt.Errorf("casing: unknown style %d", int(s))
	}
	return []byte(styles[s].name), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Style) UnmarshalText(text []byte) error {
	style, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = style
	return nil
}

// join assembles tokens into the style's output form.
func join(tokens []string, def styleDef) string {
	if len(tokens) == 0 {
		return ""
	}

	// The title caser is stateful, so build a fresh one per call rather
	// than sharing across goroutines.
	var titler cases.Caser
	if def.first == caseTitle || def.rest == caseTitle {
		titler = cases.Title(language.English)
	}

	var str strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			str.WriteString(def.sep)
		}

		rule := def.rest
		if i == 0 {
			rule = def.first
		}

		switch rule {
		case caseUpper:
			str.WriteString(strings.ToUpper(tok))
		case caseCapital:
			str.WriteString(capitalize(tok))
		case caseTitle:
			str.WriteString(titler.String(tok))
		default:
			str.WriteString(strings.ToLower(tok))
		}
	}

	return str.String()
}

// capitalize uppercases the first rune and lowercases the remainder.
func capitalize(tok string) string {
	first, size := utf8.DecodeRuneInString(tok)
	return string(unicode.ToUpper(first)) + strings.ToLower(tok[size:])
}

// isAcronym reports whether tok is entirely ASCII uppercase letters and
// digits, at least two characters long.
func isAcronym(tok string) bool {
	if len(tok) < 2 {
		return false
	}
	for _, char := range tok {
		if !isUpperASCII(char) && !isDigitASCII(char) {
			return false
		}
	}
	return true
}
