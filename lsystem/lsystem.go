// Package lsystem rewrites symbol strings with L-system rules and walks the
// result with a turtle.
//
// Inspired by github.com/bcongdon/generative-doodles/blob/master/2-27-19
package lsystem

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxLength caps the number of symbols an expansion may produce.
const MaxLength = 1 << 22

// DefaultRule is the classic bush used when nothing else is given.
const DefaultRule = "F[+F]F[-F]F"

var (
	// ErrTooLong is returned when an expansion would exceed MaxLength.
	ErrTooLong = errors.New("lsystem: sequence too long")
	// ErrBadRule is returned by ParseRule for rules it cannot read.
	ErrBadRule = errors.New("lsystem: bad rule")
)

// arrows separate the symbol from its replacement, e.g. "F→F[+F]".
var arrows = []string{"→", "->"}

// Rules maps a symbol to its replacement. Symbols without a rule are copied.
type Rules map[rune]string

// ParseRule reads "F→FF", "F->FF" or a bare "FF". A bare replacement,
// or one with nothing before the arrow, rewrites 'F'.
func ParseRule(rule string) (rune, string, error) {
	for _, arrow := range arrows {
		i := strings.Index(rule, arrow)
		if i < 0 {
			continue
		}
		lhs := strings.TrimSpace(rule[:i])
		rhs := strings.TrimSpace(rule[i+len(arrow):])
		switch utf8.RuneCountInString(lhs) {
		case 0:
			return 'F', rhs, nil
		case 1:
			r, _ := utf8.DecodeRuneInString(lhs)
			return r, rhs, nil
		}
		return 0, "", fmt.Errorf("%w: %q rewrites more than one symbol", ErrBadRule, rule)
	}
	return 'F', strings.TrimSpace(rule), nil
}

// StripArrow removes the first arrow glyph from a rule typed in the
// "F→..." form and keeps everything else, so "F→FF" becomes "FFF".
func StripArrow(rule string) string {
	for _, arrow := range arrows {
		if strings.Contains(rule, arrow) {
			return strings.Replace(rule, arrow, "", 1)
		}
	}
	return rule
}

// ParseRules reads one rule per entry, later entries win.
func ParseRules(rules []string) (Rules, error) {
	rs := make(Rules, len(rules))
	for _, rule := range rules {
		c, repl, err := ParseRule(rule)
		if err != nil {
			return nil, err
		}
		rs[c] = repl
	}
	return rs, nil
}

// Expand replaces every 'F' in axiom with rule, iterations times.
func Expand(axiom, rule string, iterations int) (string, error) {
	return Rules{'F': rule}.Expand(axiom, iterations)
}

// Expand applies the rules to every symbol of axiom at once, iterations times.
// Each pass only rewrites symbols present before the pass started.
func (rs Rules) Expand(axiom string, iterations int) (string, error) {
	if iterations < 0 {
		return "", fmt.Errorf("lsystem: negative iterations %d", iterations)
	}
	cur := axiom
	for d := 0; d < iterations; d++ {
		n, err := rs.nextLen(cur)
		if err != nil {
			return "", fmt.Errorf("pass %d: %w", d+1, err)
		}
		var next strings.Builder
		next.Grow(n)
		for i := 0; i < len(cur); {
			repl, size := rs.lookup(cur[i:])
			next.WriteString(repl)
			i += size
		}
		cur = next.String()
	}
	return cur, nil
}

// nextLen is the byte length of the next pass, checked against MaxLength
// before anything is allocated.
func (rs Rules) nextLen(cur string) (int, error) {
	n := 0
	for i := 0; i < len(cur); {
		repl, size := rs.lookup(cur[i:])
		n += len(repl)
		if n > MaxLength {
			return 0, ErrTooLong
		}
		i += size
	}
	return n, nil
}

// lookup returns what the first symbol of s becomes and how many bytes it
// takes. Symbols without a rule, and bytes that are not valid UTF-8, are
// kept as they are.
func (rs Rules) lookup(s string) (string, int) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size == 1 {
		return s[:1], 1
	}
	if repl, ok := rs[r]; ok {
		return repl, size
	}
	return s[:size], size
}

// Count returns how many times symbol occurs in seq.
func Count(seq string, symbol rune) int {
	return strings.Count(seq, string(symbol))
}
