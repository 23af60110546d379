// Package text provides string combinators for use as pipe stages.
// Functions that need configuration (a separator) return the stage; the rest
// are stages themselves.
package text

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

func Split(separator string) func(string) []string {
	return func(source string) []string {
		return strings.Split(source, separator)
	}
}

// Reverse reverses the order of the runes in source.
func Reverse(source string) string {
	runes := []rune(source)
	slices.Reverse(runes)
	return string(runes)
}

// Join formats every element with fmt.Sprint and joins them with separator.
func Join[A any](separator string) func([]A) string {
	return func(source []A) string {
		parts := make([]string, len(source))
		for i, v := range source {
			parts[i] = fmt.Sprint(v)
		}
		return strings.Join(parts, separator)
	}
}

// Capitalize upper-cases the first rune and leaves the rest untouched.
func Capitalize(source string) string {
	first, size := utf8.DecodeRuneInString(source)
	if size == 0 {
		return source
	}
	return string(unicode.ToUpper(first)) + source[size:]
}

// Chars splits source into one string per rune.
func Chars(source string) []string {
	chars := make([]string, 0, utf8.RuneCountInString(source))
	for _, r := range source {
		chars = append(chars, string(r))
	}
	return chars
}

func CharCodes(source string) []rune {
	return []rune(source)
}

func FromCharCode(code rune) string {
	return string(code)
}

func FromCharCodes(codes []rune) string {
	return string(codes)
}

// CapitalizeEvery splits on separator, capitalizes each word and joins the
// words back with a single space.
func CapitalizeEvery(separator string) func(string) string {
	return func(source string) string {
		return capitalizeWords(strings.Split(source, separator))
	}
}

func CapitalizeEveryRegexp(separator *regexp.Regexp) func(string) string {
	return func(source string) string {
		return capitalizeWords(separator.Split(source, -1))
	}
}

func capitalizeWords(words []string) string {
	for i, w := range words {
		words[i] = Capitalize(w)
	}
	return strings.Join(words, " ")
}
