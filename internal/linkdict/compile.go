package linkdict

import (
	"bufio"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

// entryPattern splits one logical entry into key, flags, and replacement.
// The separator is one or more dashes, optional flag letters, then the
// literal arrow, per spec.md §4.2's "KEY <sep>-FLAGS-> REPLACEMENT" grammar.
var entryPattern = regexp.MustCompile(`^(.*?)\s*(-+)([a-zA-Z]*)->\s*(.*)$`)

var globMetachar = regexp.MustCompile(`[.+^$()\[\]{}|\\]`)

// Dictionary is a compiled, read-only set of rules in declaration order,
// safely shared across converter instances (spec.md §5); each instance
// drives its own Memo.
type Dictionary struct {
	rules []*Rule
}

// Rules returns the compiled rules in declaration order.
func (d *Dictionary) Rules() []*Rule { return d.rules }

// Len returns the number of compiled rules, the size a Memo for this
// dictionary must be allocated with.
func (d *Dictionary) Len() int { return len(d.rules) }

// Compile parses dictionary source text into a Dictionary. It returns
// ErrDoubleArrow, ErrMissingArrow, ErrEmptyKey, ErrBadPattern,
// ErrUnknownFlag, or ErrEvalUnsupported on malformed input, each wrapped
// with the offending line number. A read error from the underlying scanner
// is returned as is, without a line number.
func Compile(source string) (*Dictionary, error) {
	seen := make(map[string]bool)
	var rules []*Rule

	scanner := bufio.NewScanner(strings.NewReader(source))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if strings.HasSuffix(trimmed, ":") && !strings.HasSuffix(trimmed, `\:`) {
			continue
		}

		if strings.Count(trimmed, "->") > 1 {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrDoubleArrow)
		}

		rule, err := parseEntry(trimmed, len(rules))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		if seen[rule.Key] {
			slog.Debug("linkdict: dropping duplicate key", "key", rule.Key, "line", lineNo)
			continue
		}
		seen[rule.Key] = true
		rules = append(rules, rule)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &Dictionary{rules: rules}, nil
}

// parseEntry parses one non-comment, non-blank logical line into a Rule
// occupying declaration-order position pos.
func parseEntry(line string, pos int) (*Rule, error) {
	match := entryPattern.FindStringSubmatch(line)
	if match == nil {
		return nil, ErrMissingArrow
	}

	key := strings.TrimSpace(match[1])
	flagChars := match[3]
	replacement := match[4]

	if key == "" {
		return nil, ErrEmptyKey
	}

	flags, err := parseFlags(flagChars)
	if err != nil {
		return nil, err
	}
	if flags.Eval {
		return nil, ErrEvalUnsupported
	}

	pattern, err := compileKey(key, flags)
	if err != nil {
		return nil, err
	}

	return &Rule{
		Key:         key,
		Replacement: replacement,
		Flags:       flags,
		regex:       pattern,
		pos:         pos,
	}, nil
}

func parseFlags(chars string) (Flags, error) {
	var f Flags
	for _, c := range chars {
		switch c {
		case 'i':
			f.NoCase = true
		case 'h':
			f.HTML = true
		case 'e':
			f.Eval = true
		case 'o':
			f.Once = true
		case 's':
			f.SectOnce = true
		default:
			return Flags{}, ErrUnknownFlag
		}
	}
	return f, nil
}

// compileKey translates one of spec.md §4.2's three key forms into a
// compiled regular expression: "/regex/" or "|regex|" (literal regex, with
// the closing delimiter optional), `"literal"` (metacharacters escaped,
// wrapped in word boundaries), or bare glob text (? -> ., * -> .*, other
// non-word characters escaped, wrapped in word boundaries).
func compileKey(key string, flags Flags) (*regexp.Regexp, error) {
	var body string

	switch {
	case len(key) >= 1 && (key[0] == '/' || key[0] == '|'):
		delim := key[0]
		body = strings.TrimPrefix(key, string(delim))
		body = strings.TrimSuffix(body, string(delim))
	case len(key) >= 2 && key[0] == '"' && key[len(key)-1] == '"':
		body = `\b` + regexp.QuoteMeta(key[1:len(key)-1]) + `\b`
	default:
		body = `\b` + globToRegexp(key) + `\b`
	}

	if flags.NoCase {
		body = "(?i)" + body
	}

	compiled, err := regexp.Compile(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPattern, err)
	}
	return compiled, nil
}

// globToRegexp escapes regex metacharacters in s while translating the glob
// wildcards ? and * to their regex equivalents.
func globToRegexp(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '?':
			b.WriteString(".")
		case '*':
			b.WriteString(".*")
		default:
			if globMetachar.MatchString(string(r)) {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}
