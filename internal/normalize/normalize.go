package normalize

import "strings"

// Stop-character table. Asymmetric pairs are balance-tracked against their
// own kind only; symmetric delimiters run to the next occurrence of the same
// character with no nesting logic. Quote characters are deliberately
// non-balancing, so keep the two branches separate instead of generalizing
// to a full bracket matcher.
var closerOf = map[byte]byte{
	'(': ')',
	'{': '}',
	'[': ']',
}

func isSymmetric(c byte) bool { return c == '"' || c == '\'' }

// Normalize strips non-deterministic spans from an exception message.
// Only the text before the first top-level ':' participates; the free-form
// detail after it is discarded. A colon inside a stop span is not top-level.
func Normalize(message string) string {
	if i := topLevelColon(message); i >= 0 {
		message = message[:i]
	}
	return RemoveStopSpans(message)
}

// RemoveStopSpans removes every span delimited by a recognized stop
// character, preserving all text outside spans in original order.
func RemoveStopSpans(value string) string {
	if value == "" {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(value))
	for i := 0; i < len(value); {
		c := value[i]
		switch {
		case closerOf[c] != 0:
			i = skipBalanced(value, i)
		case isSymmetric(c):
			i = skipSymmetric(value, i)
		default:
			sb.WriteByte(c)
			i++
		}
	}
	return sb.String()
}

func topLevelColon(s string) int {
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == ':':
			return i
		case closerOf[c] != 0:
			i = skipBalanced(s, i)
		case isSymmetric(c):
			i = skipSymmetric(s, i)
		default:
			i++
		}
	}
	return -1
}

// skipBalanced consumes the span opened at value[start]. Nested occurrences
// of the same opening character increment the balance; the matching closer
// decrements it. Other bracket kinds inside the span are not cross-balanced.
// An unbalanced span consumes to end of input.
func skipBalanced(value string, start int) int {
	open := value[start]
	closer := closerOf[open]
	depth := 0
	for i := start; i < len(value); i++ {
		switch value[i] {
		case open:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return len(value)
}

// skipSymmetric consumes from the quote at value[start] to the next
// occurrence of the same character, or to end of input if unterminated.
func skipSymmetric(value string, start int) int {
	if j := strings.IndexByte(value[start+1:], value[start]); j >= 0 {
		return start + 1 + j + 1
	}
	return len(value)
}
