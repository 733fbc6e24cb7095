package lexer

import "strings"

// StripWhitespace removes every whitespace character from s
func StripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// ApplyCuts removes every cut segment from s. A segment starts at '%' and
// runs up to, but not including, the first ']' that closes the branch
// containing the cut, or to the end of s. Segments are found against the
// original bracket structure and deleted in a single pass.
func ApplyCuts(s string) string {
	if strings.IndexByte(s, '%') < 0 {
		return s
	}

	type span struct{ start, end int }
	var cuts []span

	searching := false
	balance := 0
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !searching {
			if c == '%' {
				searching = true
				start = i
			}
			continue
		}
		switch c {
		case '[':
			balance++
		case ']':
			balance--
		}
		if balance < 0 {
			cuts = append(cuts, span{start, i})
			searching = false
			balance = 0
		}
	}
	if searching {
		cuts = append(cuts, span{start, len(s)})
	}

	var b strings.Builder
	b.Grow(len(s))
	prev := 0
	for _, c := range cuts {
		b.WriteString(s[prev:c.start])
		prev = c.end
	}
	b.WriteString(s[prev:])
	return b.String()
}

// Prepare strips whitespace and applies cuts, producing lexer input
func Prepare(lstring string) string {
	return ApplyCuts(StripWhitespace(lstring))
}
