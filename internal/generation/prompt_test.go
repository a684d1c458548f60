package generation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	text := "The mitochondria is the powerhouse of the cell."
	prompt := BuildPrompt(text, 5)

	assert.Contains(t, prompt, "generate 5 flashcards")
	assert.Contains(t, prompt, `"question" and "answer" keys`)
	// The source text is embedded verbatim at the end.
	assert.True(t, strings.HasSuffix(prompt, "Text: "+text))
}

func TestBuildPromptDoesNotModifyText(t *testing.T) {
	t.Parallel()

	// Text with characters that would change under escaping or trimming
	// must pass through untouched.
	text := "  \"quotes\" & <tags> and\nnewlines\t  "
	prompt := BuildPrompt(text, 1)

	assert.Contains(t, prompt, text)
}

func TestBuildPromptDeterministic(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("some passage ", 20)
	assert.Equal(t, BuildPrompt(text, 7), BuildPrompt(text, 7))
}

func TestResponseJSONSchema(t *testing.T) {
	t.Parallel()

	schema := ResponseJSONSchema()
	assert.Equal(t, "array", schema["type"])

	items, ok := schema["items"].(map[string]any)
	require.True(t, ok, "items must be an object schema")
	assert.Equal(t, "object", items["type"])

	props, ok := items["properties"].(map[string]any)
	require.True(t, ok, "items must declare properties")
	assert.Contains(t, props, "question")
	assert.Contains(t, props, "answer")

	assert.ElementsMatch(t, []string{"question", "answer"}, items["required"])
}
