package domain

import (
	"fmt"
	"strings"

	"github.com/fatih/camelcase"
	"github.com/tidwall/gjson"
)

var (
	recordKeys      = []string{FieldContents, FieldSystemInstruction}
	contentItemKeys = []string{FieldRole, FieldParts}
)

// KeyHints scans a line for keys that look like misspellings of canonical
// field names: "system_instruction" instead of "systemInstruction", "Role"
// instead of "role". Hints are informational only and are skipped entirely
// for lines that are not valid JSON objects.
func KeyHints(line int, text string) []Hint {
	if strings.TrimSpace(text) == "" || !gjson.Valid(text) {
		return nil
	}
	record := gjson.Parse(text)
	if !record.IsObject() {
		return nil
	}

	var hints []Hint
	record.ForEach(func(key, _ gjson.Result) bool {
		if want, ok := nearMiss(key.String(), recordKeys); ok {
			hints = append(hints, Hint{
				Line:    line,
				Message: fmt.Sprintf("unknown key '%s' (did you mean '%s'?)", key.String(), want),
			})
		}
		return true
	})

	contents := record.Get(FieldContents)
	if contents.IsArray() {
		for i, item := range contents.Array() {
			if !item.IsObject() {
				continue
			}
			item.ForEach(func(key, _ gjson.Result) bool {
				if want, ok := nearMiss(key.String(), contentItemKeys); ok {
					hints = append(hints, Hint{
						Line:    line,
						Message: fmt.Sprintf("contents[%d] unknown key '%s' (did you mean '%s'?)", i, key.String(), want),
					})
				}
				return true
			})
		}
	}

	return hints
}

// nearMiss returns the canonical key that k normalizes to. A key that is
// already canonical is never a near miss.
func nearMiss(k string, canonical []string) (string, bool) {
	for _, c := range canonical {
		if k == c {
			return "", false
		}
	}
	nk := normalizeKey(k)
	for _, c := range canonical {
		if nk == normalizeKey(c) {
			return c, true
		}
	}
	return "", false
}

// normalizeKey collapses word boundaries: camel-case humps plus '_' and '-'
// separators all reduce to one lowercase comparable form.
func normalizeKey(k string) string {
	var words []string
	for _, chunk := range strings.FieldsFunc(k, func(r rune) bool { return r == '_' || r == '-' }) {
		words = append(words, camelcase.Split(chunk)...)
	}
	return strings.ToLower(strings.Join(words, ""))
}
