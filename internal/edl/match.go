package edl

import (
	"regexp"
	"strings"
)

// MatchLevel records which tier of literal matching resolved a search.
// Tiers are tried strictest-first; select_one and select_all surface the
// level a match resolved at in the trace so callers can see when a loose
// tier fired. A literal `narrow` uses the same tiers but does not record the
// level.
type MatchLevel int

const (
	// MatchExact is a byte-for-byte substring match.
	MatchExact MatchLevel = iota
	// MatchWhitespaceTolerant ignores differences in indentation and
	// trailing whitespace on each line of a multi-line needle.
	MatchWhitespaceTolerant
	// MatchElided treats a literal "..." in the needle as a wildcard
	// matching any run of characters (non-greedy). The text between the
	// "..." runs must match exactly, whitespace included.
	MatchElided
)

func (m MatchLevel) String() string {
	switch m {
	case MatchExact:
		return "exact"
	case MatchWhitespaceTolerant:
		return "whitespace-tolerant"
	case MatchElided:
		return "elided"
	default:
		return "unknown"
	}
}

// byteSpan is a [Start, End) byte-offset pair into a document's text.
type byteSpan struct {
	Start, End int
}

// literalMatches finds every occurrence of needle within haystack,
// attempting successively looser tiers until at least one match is found.
// Matches are non-overlapping and left-to-right, first-match-wins.
func literalMatches(haystack, needle string) ([]byteSpan, MatchLevel) {
	if needle == "" {
		return nil, MatchExact
	}

	if spans := exactMatches(haystack, needle); len(spans) > 0 {
		return spans, MatchExact
	}

	if re, ok := whitespaceTolerantPattern(needle); ok {
		if spans := regexMatches(haystack, re); len(spans) > 0 {
			return spans, MatchWhitespaceTolerant
		}
	}

	if re, ok := elidedPattern(needle); ok {
		if spans := regexMatches(haystack, re); len(spans) > 0 {
			return spans, MatchElided
		}
	}

	return nil, MatchExact
}

func exactMatches(haystack, needle string) []byteSpan {
	var spans []byteSpan
	pos := 0
	for {
		idx := strings.Index(haystack[pos:], needle)
		if idx < 0 {
			break
		}
		start := pos + idx
		end := start + len(needle)
		spans = append(spans, byteSpan{start, end})
		pos = end
		if pos > len(haystack) {
			break
		}
	}
	return spans
}

func regexMatches(haystack string, re *regexp.Regexp) []byteSpan {
	locs := re.FindAllStringIndex(haystack, -1)
	spans := make([]byteSpan, 0, len(locs))
	for _, l := range locs {
		spans = append(spans, byteSpan{l[0], l[1]})
	}
	return spans
}

// whitespaceTolerantPattern builds a regex that matches needle allowing
// arbitrary leading/trailing whitespace on each of its lines and arbitrary
// inter-line whitespace, while keeping interior content literal.
func whitespaceTolerantPattern(needle string) (*regexp.Regexp, bool) {
	if strings.Contains(needle, "...") {
		return nil, false // handled by elidedPattern instead
	}
	lines := strings.Split(needle, "\n")
	parts := make([]string, len(lines))
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		fields := strings.Fields(trimmed)
		for j, f := range fields {
			fields[j] = regexp.QuoteMeta(f)
		}
		parts[i] = strings.Join(fields, `[ \t]+`)
	}
	pattern := `[ \t]*` + strings.Join(parts, `[ \t]*\n[ \t]*`) + `[ \t]*`
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, false
	}
	return re, true
}

// elidedPattern builds a regex from needle, translating literal "..." runs
// into a non-greedy wildcard, for the "elided" matching tier.
func elidedPattern(needle string) (*regexp.Regexp, bool) {
	segments := strings.Split(needle, "...")
	for i, s := range segments {
		segments[i] = regexp.QuoteMeta(s)
	}
	pattern := strings.Join(segments, `[\s\S]*?`)
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, false
	}
	return re, true
}

// compileNarrowRegex compiles a `/REGEX/` operand with multiline mode
// forced on, so ^ and $ match line boundaries.
func compileNarrowRegex(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile(`(?m)` + pattern)
}
