package command

import (
	"regexp"
	"strings"
	"unicode"
)

// clockPrefixRe matches a military or civilian clock time at the start of a
// timed remainder, followed by the message separator or the end of input.
var clockPrefixRe = regexp.MustCompile(`^(\d{4}(?:\d{2})?|\d{1,2}:\d{2}(?::\d{2})?(?:\s*[aApP][mM]?)?)\s*(?::|$)`)

// bareMessage takes the whole remainder as the message. A leading ':' is
// dropped so "start: x" and "start x" agree.
func bareMessage(rest string) string {
	rest = strings.TrimSpace(rest)
	rest = strings.TrimPrefix(rest, ":")
	return cleanMessage(rest)
}

// splitTimed separates "<time fragment>[: message]". A leading clock time
// ends at the first ':' after it, so "1730:1st draft" splits after "1730".
// Otherwise the separator is the first ':' not flanked by digits on both
// sides, so "yesterday 9:00: x" keeps "9:00" in the fragment.
func splitTimed(rest string) (fragment, message string) {
	rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
	if m := clockPrefixRe.FindStringSubmatchIndex(rest); m != nil {
		return rest[m[2]:m[3]], cleanMessage(rest[m[1]:])
	}

	for i := 0; i < len(rest); i++ {
		if rest[i] != ':' {
			continue
		}
		if i > 0 && i+1 < len(rest) && isDigit(rest[i-1]) && isDigit(rest[i+1]) {
			continue
		}
		return strings.TrimSpace(rest[:i]), cleanMessage(rest[i+1:])
	}
	return strings.TrimSpace(rest), ""
}

// cleanMessage keeps printable ASCII, turns other whitespace into spaces
// and trims the result.
func cleanMessage(s string) string {
	s = strings.Map(func(r rune) rune {
		if r >= ' ' && r <= '~' {
			return r
		}
		if unicode.IsSpace(r) {
			return ' '
		}
		return -1
	}, s)
	return strings.TrimSpace(s)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
