package ignore

import (
	"errors"
	"regexp"
	"strings"
)

var errUnterminatedClass = errors.New("unterminated character class")

// parseLine turns one ignore line into an anchored regular expression. It
// returns a nil regexp for blank lines and comments.
func parseLine(line string) (*regexp.Regexp, bool, error) {
	trimmed := trimTrailingSpaces(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, false, nil
	}

	negate := false
	if strings.HasPrefix(trimmed, "!") {
		negate = true
		trimmed = trimmed[1:]
	}
	if strings.HasPrefix(trimmed, `\#`) || strings.HasPrefix(trimmed, `\!`) {
		trimmed = trimmed[1:]
	}

	dirOnly := strings.HasSuffix(trimmed, "/")
	trimmed = strings.TrimRight(trimmed, "/")
	if trimmed == "" {
		return nil, false, nil
	}

	// A slash anywhere but the end ties the pattern to the root.
	anchored := strings.Contains(trimmed, "/")
	trimmed = strings.TrimPrefix(trimmed, "/")

	body, err := globToRegex(trimmed)
	if err != nil {
		return nil, false, err
	}

	var b strings.Builder
	b.WriteString("^")
	if !anchored {
		b.WriteString("(?:.*/)?")
	}
	b.WriteString(body)
	if dirOnly {
		b.WriteString("/.*$")
	} else {
		b.WriteString("(?:/.*)?$")
	}

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, false, err
	}
	return re, negate, nil
}

// trimTrailingSpaces drops a carriage return and trailing spaces that are not
// escaped with a backslash. Leading whitespace is part of the pattern.
func trimTrailingSpaces(line string) string {
	line = strings.TrimSuffix(line, "\r")
	for strings.HasSuffix(line, " ") {
		backslashes := 0
		for i := len(line) - 2; i >= 0 && line[i] == '\\'; i-- {
			backslashes++
		}
		if backslashes%2 == 1 {
			break
		}
		line = line[:len(line)-1]
	}
	return line
}

// globToRegex translates glob syntax (*, ?, **, [...]) into a regular
// expression fragment. Everything else is matched literally.
func globToRegex(glob string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(glob); i++ {
		ch := glob[i]
		switch ch {
		case '*':
			if i+1 < len(glob) && glob[i+1] == '*' {
				atStart := i == 0 || glob[i-1] == '/'
				i++
				if atStart && i+1 < len(glob) && glob[i+1] == '/' {
					// "**/" matches zero or more directories.
					i++
					b.WriteString("(?:.*/)?")
					continue
				}
				b.WriteString(".*")
				continue
			}
			b.WriteString("[^/]*")
		case '?':
			b.WriteString("[^/]")
		case '[':
			end := strings.IndexByte(glob[i+1:], ']')
			if end < 0 {
				return "", errUnterminatedClass
			}
			class := glob[i+1 : i+1+end]
			if strings.HasPrefix(class, "!") {
				class = "^" + class[1:]
			}
			b.WriteString("[" + strings.ReplaceAll(class, `\`, `\\`) + "]")
			i += end + 1
		case '\\':
			if i+1 < len(glob) {
				i++
				b.WriteString(regexp.QuoteMeta(string(glob[i])))
			}
		default:
			b.WriteString(regexp.QuoteMeta(string(ch)))
		}
	}
	return b.String(), nil
}
