package pattern

import "strings"

// Match reports whether address matches pattern under the OSC address
// pattern language: '?' matches any single non-'/' character, '*'
// matches a run of zero or more non-'/' characters, '[abc]'/'[a-z]'
// (optionally negated with a leading '!') matches one character from
// a class, and '{foo,bar}' matches any one of a set of literal
// alternatives. A literal '/' in pattern matches only '/' in address;
// no wildcard ever crosses a '/' boundary.
func Match(pattern, address string) bool {
	return matchFrom(pattern, address)
}

func matchFrom(p, a string) bool {
	for len(p) > 0 {
		switch p[0] {
		case '*':
			rest := p[1:]
			limit := 0
			for limit < len(a) && a[limit] != '/' {
				limit++
			}
			for k := 0; k <= limit; k++ {
				if matchFrom(rest, a[k:]) {
					return true
				}
			}
			return false

		case '?':
			if len(a) == 0 || a[0] == '/' {
				return false
			}
			p, a = p[1:], a[1:]

		case '[':
			end := strings.IndexByte(p, ']')
			if end < 0 {
				if len(a) == 0 || a[0] != '[' {
					return false
				}
				p, a = p[1:], a[1:]
				continue
			}
			if len(a) == 0 || a[0] == '/' || !matchClass(p[1:end], a[0]) {
				return false
			}
			p, a = p[end+1:], a[1:]

		case '{':
			end := strings.IndexByte(p, '}')
			if end < 0 {
				if len(a) == 0 || a[0] != '{' {
					return false
				}
				p, a = p[1:], a[1:]
				continue
			}
			restP := p[end+1:]
			alts := p[1:end]
			for {
				i := strings.IndexByte(alts, ',')
				alt := alts
				if i >= 0 {
					alt = alts[:i]
				}
				if strings.HasPrefix(a, alt) && matchFrom(restP, a[len(alt):]) {
					return true
				}
				if i < 0 {
					return false
				}
				alts = alts[i+1:]
			}

		default:
			if len(a) == 0 || a[0] != p[0] {
				return false
			}
			p, a = p[1:], a[1:]
		}
	}
	return len(a) == 0
}

// matchClass reports whether c is a member of the bracket class
// (contents of '[...]' without the brackets), honoring a leading '!'
// negation and 'a-z'-style ranges.
func matchClass(class string, c byte) bool {
	negate := false
	if len(class) > 0 && class[0] == '!' {
		negate = true
		class = class[1:]
	}
	matched := false
	for i := 0; i < len(class); {
		if i+2 < len(class) && class[i+1] == '-' {
			lo, hi := class[i], class[i+2]
			if lo <= c && c <= hi {
				matched = true
			}
			i += 3
			continue
		}
		if class[i] == c {
			matched = true
		}
		i++
	}
	return matched != negate
}
