package domain

// Canonical field names of a fine-tuning record. One JSONL line holds one
// record: a conversation (`contents`) plus an optional `systemInstruction`.
const (
	FieldContents          = "contents"
	FieldSystemInstruction = "systemInstruction"
	FieldRole              = "role"
	FieldParts             = "parts"
	FieldText              = "text"
)

// FieldSpec describes one expected field of the record shape. The MCP schema
// resource serves the full list so assistants can explain failures.
type FieldSpec struct {
	Path     string `json:"path"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
	Notes    string `json:"notes,omitempty"`
}

// ExpectedSchema returns the record shape the validator enforces.
func ExpectedSchema() []FieldSpec {
	return []FieldSpec{
		{Path: "contents", Type: "array", Required: true, Notes: "must be non-empty"},
		{Path: "contents[].role", Type: "string", Required: true},
		{Path: "contents[].parts", Type: "array", Required: true},
		{Path: "contents[].parts[].text", Type: "string", Required: true},
		{Path: "systemInstruction", Type: "object", Required: false},
		{Path: "systemInstruction.role", Type: "string", Required: true, Notes: "required when systemInstruction is present"},
		{Path: "systemInstruction.parts", Type: "array", Required: true, Notes: "required when systemInstruction is present; entries are not text-checked"},
	}
}
