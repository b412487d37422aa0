package textnorm

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Flatten converts any JSON-compatible value into a single space-joined
// string. Strings pass through, numbers and booleans are stringified,
// sequences are flattened element by element, and mapping values are
// flattened in sorted-key order (Go maps carry no insertion order, and
// encoding/json serializes map keys sorted, so flatten order and the
// serialized form always agree). Anything else becomes the empty string.
func Flatten(value interface{}) string {
	parts := collect(value, nil)
	return strings.Join(parts, " ")
}

func collect(value interface{}, parts []string) []string {
	switch v := value.(type) {
	case nil:
		return parts
	case string:
		if v != "" {
			parts = append(parts, v)
		}
		return parts
	case bool:
		return append(parts, strconv.FormatBool(v))
	case float64:
		return append(parts, strconv.FormatFloat(v, 'f', -1, 64))
	case float32:
		return append(parts, strconv.FormatFloat(float64(v), 'f', -1, 32))
	case int:
		return append(parts, strconv.Itoa(v))
	case int64:
		return append(parts, strconv.FormatInt(v, 10))
	case json.Number:
		return append(parts, v.String())
	case []interface{}:
		for _, elem := range v {
			parts = collect(elem, parts)
		}
		return parts
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			parts = collect(v[key], parts)
		}
		return parts
	default:
		return parts
	}
}

// TaskText returns the task input as text. String tasks pass through
// unchanged; anything else is serialized so that identical logical content
// always yields an identical, fingerprintable representation.
func TaskText(task interface{}) string {
	if s, ok := task.(string); ok {
		return s
	}
	return Serialize(task)
}

// Serialize renders a JSON-compatible value as its canonical JSON string.
// encoding/json sorts map keys, so the output is stable for identical
// logical content. Unserializable values degrade to the empty string.
func Serialize(value interface{}) string {
	if value == nil {
		return "null"
	}
	data, err := json.Marshal(value)
	if err != nil {
		return ""
	}
	return string(data)
}

// WordCount counts whitespace-delimited non-empty tokens.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// UniqueWordRatio returns distinct lowercased tokens over total tokens,
// or 0 for empty text.
func UniqueWordRatio(text string) float64 {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return 0
	}
	seen := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		seen[strings.ToLower(token)] = struct{}{}
	}
	return float64(len(seen)) / float64(len(tokens))
}

// Keywords extracts lowercased alphanumeric words longer than minLen runes.
// Punctuation is treated as a separator so "rates," and "rates" extract to
// the same keyword.
func Keywords(text string, minLen int) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
	out := make([]string, 0, len(words))
	for _, word := range words {
		word = strings.Trim(word, "'")
		if utf8.RuneCountInString(word) > minLen {
			out = append(out, word)
		}
	}
	return out
}

// KeywordSet is Keywords deduplicated into a membership set.
func KeywordSet(text string, minLen int) map[string]struct{} {
	set := make(map[string]struct{})
	for _, word := range Keywords(text, minLen) {
		set[word] = struct{}{}
	}
	return set
}

// UppercaseFraction returns the share of characters that are uppercase
// letters, over all characters in the text.
func UppercaseFraction(text string) float64 {
	total := 0
	upper := 0
	for _, r := range text {
		total++
		if unicode.IsUpper(r) {
			upper++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(upper) / float64(total)
}
