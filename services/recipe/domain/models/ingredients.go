package models

import "strings"

// NormalizeIngredientList trims every entry and drops entries that are empty
// after trimming. Relative order is preserved and duplicates are kept —
// within one recipe the same ingredient can appear in several steps.
func NormalizeIngredientList(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, ing := range raw {
		if trimmed := strings.TrimSpace(ing); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// NormalizeIngredientLines splits a free-text blob on line breaks and
// normalizes the resulting entries.
func NormalizeIngredientLines(raw string) []string {
	return NormalizeIngredientList(strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n"))
}

// NormalizeIngredients accepts the ingredient shapes seen in stored documents
// and external records — a newline-delimited string, a []string, or a decoded
// JSON []any — and converts them to a canonical ordered list. Unrecognized
// input coerces to an empty list; this function never fails.
func NormalizeIngredients(raw any) []string {
	switch v := raw.(type) {
	case string:
		return NormalizeIngredientLines(v)
	case []string:
		return NormalizeIngredientList(v)
	case []any:
		entries := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				entries = append(entries, s)
			}
		}
		return NormalizeIngredientList(entries)
	default:
		return []string{}
	}
}
