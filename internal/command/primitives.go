// Package command turns a line of chat text into a structured bot request
package command

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Parser consumes a prefix of input and returns the parsed value and the
// unconsumed rest. On failure ok is false and rest is the original input.
type Parser[T any] func(input string) (value T, rest string, ok bool)

// Pair holds the results of two sequenced parsers
type Pair[A, B any] struct {
	First  A
	Second B
}

// Maybe is the result of an optional parser
type Maybe[T any] struct {
	Value T
	Valid bool
}

// Literal matches expected at the head of input, ignoring ASCII case.
// The returned value is the text as it appeared in input.
func Literal(expected string) Parser[string] {
	return func(input string) (string, string, bool) {
		if len(input) < len(expected) {
			return "", input, false
		}
		for i := 0; i < len(expected); i++ {
			if lowerASCII(input[i]) != lowerASCII(expected[i]) {
				return "", input, false
			}
		}
		return input[:len(expected)], input[len(expected):], true
	}
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// Decimal matches digits with an optional single '.' and optional fraction
// digits. At least one leading digit is required; "24." is accepted.
func Decimal() Parser[float64] {
	return func(input string) (float64, string, bool) {
		i := 0
		for i < len(input) && isDigit(input[i]) {
			i++
		}
		if i == 0 {
			return 0, input, false
		}
		if i < len(input) && input[i] == '.' {
			i++
			for i < len(input) && isDigit(input[i]) {
				i++
			}
		}
		v, err := strconv.ParseFloat(input[:i], 64)
		if err != nil {
			// Out of range for float64
			return 0, input, false
		}
		return v, input[i:], true
	}
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// Space matches one or more whitespace runes.
func Space() Parser[struct{}] {
	return func(input string) (struct{}, string, bool) {
		i := 0
		for i < len(input) {
			r, size := utf8.DecodeRuneInString(input[i:])
			if !unicode.IsSpace(r) {
				break
			}
			i += size
		}
		if i == 0 {
			return struct{}{}, input, false
		}
		return struct{}{}, input[i:], true
	}
}

// Alt tries each parser in order and returns the first success.
func Alt[T any](options ...Parser[T]) Parser[T] {
	return func(input string) (T, string, bool) {
		for _, p := range options {
			if v, rest, ok := p(input); ok {
				return v, rest, true
			}
		}
		var zero T
		return zero, input, false
	}
}

// Map applies f to the value of a successful parse.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(input string) (U, string, bool) {
		v, rest, ok := p(input)
		if !ok {
			var zero U
			return zero, input, false
		}
		return f(v), rest, true
	}
}

// Value replaces the result of p with v.
func Value[T, U any](p Parser[T], v U) Parser[U] {
	return Map(p, func(T) U { return v })
}

// Opt always succeeds, consuming nothing when p fails.
func Opt[T any](p Parser[T]) Parser[Maybe[T]] {
	return func(input string) (Maybe[T], string, bool) {
		v, rest, ok := p(input)
		if !ok {
			return Maybe[T]{}, input, true
		}
		return Maybe[T]{Value: v, Valid: true}, rest, true
	}
}

// Preceded runs first then second and keeps the value of second.
func Preceded[A, B any](first Parser[A], second Parser[B]) Parser[B] {
	return func(input string) (B, string, bool) {
		_, rest, ok := first(input)
		if !ok {
			var zero B
			return zero, input, false
		}
		v, rest, ok := second(rest)
		if !ok {
			var zero B
			return zero, input, false
		}
		return v, rest, true
	}
}

// Sequence runs first then second and keeps both values.
func Sequence[A, B any](first Parser[A], second Parser[B]) Parser[Pair[A, B]] {
	return func(input string) (Pair[A, B], string, bool) {
		a, rest, ok := first(input)
		if !ok {
			return Pair[A, B]{}, input, false
		}
		b, rest, ok := second(rest)
		if !ok {
			return Pair[A, B]{}, input, false
		}
		return Pair[A, B]{First: a, Second: b}, rest, true
	}
}

// SeparatedPair runs first, sep and second in sequence and keeps the values
// of first and second.
func SeparatedPair[A, S, B any](first Parser[A], sep Parser[S], second Parser[B]) Parser[Pair[A, B]] {
	return func(input string) (Pair[A, B], string, bool) {
		a, rest, ok := first(input)
		if !ok {
			return Pair[A, B]{}, input, false
		}
		_, rest, ok = sep(rest)
		if !ok {
			return Pair[A, B]{}, input, false
		}
		b, rest, ok := second(rest)
		if !ok {
			return Pair[A, B]{}, input, false
		}
		return Pair[A, B]{First: a, Second: b}, rest, true
	}
}

// Complete succeeds only if p leaves nothing but whitespace behind.
func Complete[T any](p Parser[T]) Parser[T] {
	return func(input string) (T, string, bool) {
		v, rest, ok := p(input)
		if !ok || !isBlank(rest) {
			var zero T
			return zero, input, false
		}
		return v, "", true
	}
}

func isBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
