package domain

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// ValidateLine checks one physical line of a JSONL training file against the
// expected record shape and returns every defect found, in discovery order.
// A blank or whitespace-only line returns nil and must not be counted as a
// checked line by the caller. A line that is not valid JSON yields exactly
// one syntax defect and no structural checks.
//
// line is the 1-based physical line number and is embedded in every defect.
func ValidateLine(line int, text string) []Defect {
	if line < 1 {
		panic(fmt.Sprintf("domain: line number must be >= 1, got %d", line))
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if !gjson.Valid(text) {
		return []Defect{{Line: line, Message: "Invalid JSON syntax"}}
	}

	var defects []Defect
	add := func(format string, args ...any) {
		defects = append(defects, Defect{Line: line, Message: fmt.Sprintf(format, args...)})
	}

	record := gjson.Parse(text)

	contents := record.Get(FieldContents)
	switch {
	case isMissing(contents):
		add("Missing required field 'contents'")
	case !contents.IsArray():
		add("'contents' must be an array")
	default:
		items := contents.Array()
		if len(items) == 0 {
			add("'contents' array is empty")
		}
		// Two passes: every role/parts defect is reported before any
		// parts-shape defect, regardless of which items carry them.
		for i, item := range items {
			if isMissing(item.Get(FieldRole)) || isMissing(item.Get(FieldParts)) {
				add("contents[%d] missing 'role' or 'parts'", i)
			}
		}
		for i, item := range items {
			parts := item.Get(FieldParts)
			if isMissing(parts) {
				continue
			}
			if !parts.IsArray() {
				add("contents[%d].parts must be an array", i)
				continue
			}
			for j, part := range parts.Array() {
				if isMissing(part.Get(FieldText)) {
					add("contents[%d].parts[%d] missing 'text' field", i, j)
				}
			}
		}
	}

	si := record.Get(FieldSystemInstruction)
	if !isMissing(si) {
		if isMissing(si.Get(FieldRole)) {
			add("'systemInstruction' missing 'role' field")
		}
		siParts := si.Get(FieldParts)
		switch {
		case isMissing(siParts):
			add("'systemInstruction' missing 'parts' field")
		case !siParts.IsArray():
			add("'systemInstruction.parts' must be an array")
		}
		// systemInstruction parts entries are not text-checked, unlike
		// contents[].parts above.
	}

	return defects
}

// isMissing treats an absent key and an explicit JSON null the same way.
func isMissing(v gjson.Result) bool {
	return !v.Exists() || v.Type == gjson.Null
}

const engineProbe = `{"contents":[{"role":"user","parts":[{"text":"ok"}]}]}`

// CheckJSONEngine runs a round-trip through the JSON query engine. It must
// pass before any file I/O is attempted; a failure aborts the whole run.
func CheckJSONEngine() error {
	if !gjson.Valid(engineProbe) || gjson.Valid(`{"contents":`) {
		return ErrJSONEngineUnavailable
	}
	if gjson.Parse(engineProbe).Get("contents.0.parts.0.text").String() != "ok" {
		return ErrJSONEngineUnavailable
	}
	return nil
}
