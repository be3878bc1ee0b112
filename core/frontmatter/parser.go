// ABOUTME: Frontmatter parser splits a leading delimited metadata block from a Markdown body
// ABOUTME: Produces tagged values (string, list, bool) with no schema validation

package frontmatter

import "strings"

// Kind identifies the shape of a frontmatter value.
type Kind int

const (
	// KindString is a plain string value.
	KindString Kind = iota

	// KindList is a comma-separated list written as [a, b, c].
	KindList
)

// Value is a tagged frontmatter value. The parser never coerces types:
// booleans and numbers are stored as strings and interpreted by accessors.
type Value struct {
	Kind Kind
	Str  string
	List []string
}

// String returns the value as a plain string. List values return the
// elements joined with ", ", matching how a raw read would look.
func (v Value) String() string {
	if v.Kind == KindList {
		return strings.Join(v.List, ", ")
	}
	return v.Str
}

// Bool interprets the value as a boolean. Only the literal string "false"
// yields false; anything else (including absence) is true, matching the
// published-unless-explicitly-unpublished rule.
func (v Value) Bool() bool {
	return v.Str != "false"
}

// Fields is a parsed frontmatter mapping. Unknown keys pass through
// unchanged; duplicate keys resolve last-wins.
type Fields map[string]Value

// Get returns the string form of a field, or fallback if absent.
func (f Fields) Get(key, fallback string) string {
	if v, ok := f[key]; ok {
		return v.String()
	}
	return fallback
}

// GetList returns a list field, or nil if absent. A string field is
// returned as a single-element list.
func (f Fields) GetList(key string) []string {
	v, ok := f[key]
	if !ok {
		return nil
	}
	if v.Kind == KindList {
		return v.List
	}
	return []string{v.Str}
}

// GetBool returns a boolean field, or fallback if absent.
func (f Fields) GetBool(key string, fallback bool) bool {
	if v, ok := f[key]; ok {
		return v.Bool()
	}
	return fallback
}

const delimiter = "---"

// Parse splits raw content into frontmatter fields and body.
//
// The block must appear at the very start of the input: a line that is
// exactly "---", key: value lines, then another "---" line. If the
// pattern is absent the whole input is the body and the fields map is
// empty. Parse never fails; malformed lines inside the block are
// silently skipped.
func Parse(raw string) (Fields, string) {
	fields := Fields{}

	rest, ok := strings.CutPrefix(raw, delimiter+"\n")
	if !ok {
		// Tolerate trailing whitespace on the opening delimiter line.
		line, after, found := strings.Cut(raw, "\n")
		if !found || strings.TrimRight(line, " \t") != delimiter {
			return fields, raw
		}
		rest = after
	}

	block, body, ok := cutClosingDelimiter(rest)
	if !ok {
		return fields, raw
	}

	for _, line := range strings.Split(block, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" || strings.ContainsAny(key, " \t") {
			continue
		}
		fields[key] = parseValue(value)
	}

	return fields, body
}

// cutClosingDelimiter finds the first line that is exactly "---" and
// splits the text around it.
func cutClosingDelimiter(s string) (block, body string, ok bool) {
	offset := 0
	for {
		idx := strings.Index(s[offset:], delimiter)
		if idx < 0 {
			return "", "", false
		}
		idx += offset

		lineStart := idx == 0 || s[idx-1] == '\n'
		lineEnd := idx + len(delimiter)
		// The delimiter must occupy a whole line (trailing spaces allowed).
		rest := s[lineEnd:]
		trimmed := strings.TrimLeft(rest, " \t")
		if lineStart && (trimmed == "" || strings.HasPrefix(trimmed, "\n")) {
			body = strings.TrimPrefix(trimmed, "\n")
			block = strings.TrimSuffix(s[:idx], "\n")
			return block, body, true
		}
		offset = lineEnd
	}
}

// parseValue applies the value transformation rules in order: one layer
// of matching quotes, then [..] list syntax, then raw string.
func parseValue(value string) Value {
	if unquoted, ok := stripQuotes(value); ok {
		return Value{Kind: KindString, Str: unquoted}
	}

	if strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]") && len(value) >= 2 {
		inner := value[1 : len(value)-1]
		if strings.TrimSpace(inner) == "" {
			return Value{Kind: KindList, List: []string{}}
		}
		parts := strings.Split(inner, ",")
		list := make([]string, 0, len(parts))
		for _, part := range parts {
			part = strings.TrimSpace(part)
			if unquoted, ok := stripQuotes(part); ok {
				part = unquoted
			}
			list = append(list, part)
		}
		return Value{Kind: KindList, List: list}
	}

	return Value{Kind: KindString, Str: value}
}

// stripQuotes removes exactly one layer of matching single or double quotes.
func stripQuotes(s string) (string, bool) {
	if len(s) < 2 {
		return s, false
	}
	if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1], true
	}
	return s, false
}
