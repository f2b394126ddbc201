// Package casing converts the keys of decoded JSON trees between snake_case
// and lowerCamelCase.
package casing

import (
	"maps"
	"regexp"
	"slices"
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
)

// Converter maps a single key or token to its converted form.
type Converter func(string) string

var (
	CamelConverter Converter = toLowerCamel
	SnakeConverter Converter = toSnake
)

var (
	snakeKey = regexp.MustCompile(`^[a-z0-9]+(_[a-z0-9]+)*$`)
	camelKey = regexp.MustCompile(`^[a-z][a-z0-9]*([A-Z][a-z0-9]*)*$`)
)

// toLowerCamel keeps keys that are already lowerCamelCase, so a digit stays
// attached to the word before it (street2, plus4Code).
func toLowerCamel(s string) string {
	if camelKey.MatchString(s) {
		return s
	}
	return strcase.ToLowerCamel(s)
}

// toSnake keeps keys that are already snake_case. Otherwise words break
// before upper case letters and before a digit run that ends the key:
// plus4Code -> plus4_code, deliveryLine1 -> delivery_line_1.
func toSnake(s string) string {
	if snakeKey.MatchString(s) {
		return s
	}

	runes := []rune(strings.TrimSpace(s))
	var b strings.Builder
	sep := func() {
		if b.Len() > 0 && !strings.HasSuffix(b.String(), "_") {
			b.WriteByte('_')
		}
	}
	for i, r := range runes {
		switch {
		case unicode.IsUpper(r):
			if i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]) ||
				(unicode.IsUpper(runes[i-1]) && i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				sep()
			}
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsDigit(r):
			if i > 0 && unicode.IsLetter(runes[i-1]) && allDigits(runes[i:]) {
				sep()
			}
			b.WriteRune(r)
		case unicode.IsLetter(r):
			b.WriteRune(r)
		default:
			sep()
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}

func allDigits(rs []rune) bool {
	for _, r := range rs {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ToCamel converts every key in v to lowerCamelCase.
func ToCamel(v any) any {
	return Transform(v, CamelConverter)
}

// ToSnake converts every key in v to snake_case.
func ToSnake(v any) any {
	return Transform(v, SnakeConverter)
}

// Transform returns a converted copy of v. Strings reached directly, as the
// root or as a sequence element, are converted as tokens. Mapping keys are
// converted and mapping values are only recursed into when they are
// containers; scalar values, strings included, are copied as is.
// When two keys collide after conversion the lexically last source key wins.
func Transform(v any, convert Converter) any {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		return convert(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = Transform(item, convert)
		}
		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = Transform(item, convert)
		}
		return out
	case []string:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = convert(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for _, k := range slices.Sorted(maps.Keys(t)) {
			out[convert(k)] = transformValue(t[k], convert)
		}
		return out
	case map[string]string:
		out := make(map[string]any, len(t))
		for _, k := range slices.Sorted(maps.Keys(t)) {
			out[convert(k)] = t[k]
		}
		return out
	default:
		return v
	}
}

// Map converts the keys of m, always returning a mapping.
func Map(m map[string]any, convert Converter) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return Transform(m, convert).(map[string]any)
}

func transformValue(v any, convert Converter) any {
	switch v.(type) {
	case []any, []map[string]any, []string, map[string]any, map[string]string:
		return Transform(v, convert)
	default:
		return v
	}
}
