package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tunelint/tunelint/internal/domain"
)

func TestKeyHints_SnakeCaseTopLevelKey(t *testing.T) {
	hints := domain.KeyHints(3, `{"system_instruction":{"role":"system"},"contents":[]}`)
	require.Len(t, hints, 1)
	assert.Equal(t, "Line 3: unknown key 'system_instruction' (did you mean 'systemInstruction'?)", hints[0].String())
}

func TestKeyHints_CaseVariants(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"SystemInstruction", "systemInstruction"},
		{"system-instruction", "systemInstruction"},
		{"Contents", "contents"},
		{"CONTENTS", "contents"},
	}
	for _, tt := range tests {
		hints := domain.KeyHints(1, `{"`+tt.key+`":[]}`)
		require.Len(t, hints, 1, "key %q", tt.key)
		assert.Contains(t, hints[0].Message, "'"+tt.want+"'")
	}
}

func TestKeyHints_ContentItemKeys(t *testing.T) {
	hints := domain.KeyHints(2, `{"contents":[{"Role":"user","parts":[]},{"role":"model","Parts":[]}]}`)
	require.Len(t, hints, 2)
	assert.Equal(t, "Line 2: contents[0] unknown key 'Role' (did you mean 'role'?)", hints[0].String())
	assert.Equal(t, "Line 2: contents[1] unknown key 'Parts' (did you mean 'parts'?)", hints[1].String())
}

func TestKeyHints_NoHintsForCanonicalOrUnrelatedKeys(t *testing.T) {
	assert.Empty(t, domain.KeyHints(1, `{"contents":[{"role":"user","parts":[]}],"systemInstruction":{}}`))
	assert.Empty(t, domain.KeyHints(1, `{"foo":1,"contents":[]}`))
}

func TestKeyHints_SkipsNonObjectAndInvalidLines(t *testing.T) {
	assert.Nil(t, domain.KeyHints(1, `[1,2,3]`))
	assert.Nil(t, domain.KeyHints(1, `"just a string"`))
	assert.Nil(t, domain.KeyHints(1, `not json`))
	assert.Nil(t, domain.KeyHints(1, ``))
}
