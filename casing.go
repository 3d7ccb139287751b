// Package casing converts identifier strings between naming conventions:
// kebab-case, camelCase, dot.case, snake_case, SCREAMING_SNAKE_CASE,
// PascalCase, and Title Case.
//
// Every conversion runs the same pipeline. The input is split into word
// tokens at separators (whitespace, underscores, hyphens, and dots for the
// dot style), at camelCase transitions, and after acronym runs. Remaining
// punctuation is dropped. The tokens are then re-joined with the target
// style's separator and case rule.
//
// Two input contracts exist side by side:
//
//   - Lenient conversions (ToKebab, ToCamelString, ToSnake, ...) accept
//     any value and return "" when it is not text.
//   - Strict conversions (ToCamel, ToDot, Convert) return a *TypeError
//     when the value is not text.
//
// A value is text when it is a string, []byte, []rune, or fmt.Stringer.
// Inputs that contain no word characters at all convert to "" under both
// contracts.
//
// All conversions are pure functions and safe for concurrent use.
package casing

import (
	"fmt"
	"reflect"
)

// ToKebab converts v to kebab-case: "myHTTPServer" becomes
// "my-http-server". Values that are not text convert to "".
func ToKebab(v any) string {
	return lenient(v, Kebab)
}

// ToCamel converts v to camelCase: "my_blog_post" becomes "myBlogPost".
// It returns a *TypeError when v is not text.
//
// By default every token is normalized, so "myHTTPServer" becomes
// "myHttpServer". Pass [PreserveAcronyms] to keep a leading acronym
// intact.
func ToCamel(v any, opts ...CamelOption) (string, error) {
	s, ok := textOf(v)
	if !ok {
		return "", &TypeError{Type: reflect.TypeOf(v)}
	}

	var cfg camelConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	tokens := tokenize(s, false)
	if cfg.preserveAcronyms && len(tokens) > 0 && isAcronym(tokens[0]) {
		// Keep the leading acronym and pascal-case the rest.
		return tokens[0] + join(tokens[1:], styles[Pascal]), nil
	}
	return join(tokens, styles[Camel]), nil
}

// ToCamelString is the lenient form of [ToCamel]: values that are not
// text convert to "", and acronyms are never preserved.
func ToCamelString(v any) string {
	return lenient(v, Camel)
}

// ToDot converts v to dot.case: "myHTTPServer" becomes "my.http.server".
// Dots in the input separate words for this style, so text already in
// dot.case passes through unchanged. It returns a *TypeError when v is
// not text.
func ToDot(v any) (string, error) {
	return strict(v, Dot)
}

// ToSnake converts v to snake_case: "myHTTPServer" becomes
// "my_http_server". Values that are not text convert to "".
func ToSnake(v any) string {
	return lenient(v, Snake)
}

// ToScreamingSnake converts v to SCREAMING_SNAKE_CASE: "myHTTPServer"
// becomes "MY_HTTP_SERVER". Values that are not text convert to "".
func ToScreamingSnake(v any) string {
	return lenient(v, ScreamingSnake)
}

// ToPascal converts v to PascalCase: "my_blog_post" becomes "MyBlogPost".
// Values that are not text convert to "".
func ToPascal(v any) string {
	return lenient(v, Pascal)
}

// ToTitle converts v to Title Case: "my_blog_post" becomes
// "My Blog Post". Values that are not text convert to "".
func ToTitle(v any) string {
	return lenient(v, Title)
}

// Convert renders v in the given style. It returns a *TypeError when v is
// not text, and an error when style is not one of the declared [Style]
// constants.
func Convert(v any, style Style) (string, error) {
	s, ok := textOf(v)
	if !ok {
		return "", &TypeError{Type: reflect.TypeOf(v)}
	}
	if !style.valid() {
		return "", fmt.Errorf("casing: unknown style %d", int(style))
	}
	return convert(s, style), nil
}

func lenient(v any, style Style) string {
	s, ok := textOf(v)
	if !ok {
		return ""
	}
	return convert(s, style)
}

func strict(v any, style Style) (string, error) {
	s, ok := textOf(v)
	if !ok {
		return "", &TypeError{Type: reflect.TypeOf(v)}
	}
	return convert(s, style), nil
}

// convert runs the split/join pipeline for text that already passed
// validation.
func convert(s string, style Style) string {
	def := styles[style]
	return join(tokenize(s, def.dot), def)
}

// textOf extracts the text from v. It reports false when v is none of
// string, []byte, []rune, or fmt.Stringer.
func textOf(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case []byte:
		return string(t), true
	case []rune:
		return string(t), true
	case fmt.Stringer:
		return t.String(), true
	default:
		return "", false
	}
}
