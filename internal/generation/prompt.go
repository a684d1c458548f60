package generation

import "fmt"

// promptFormat is the instruction sent to the upstream model. The example
// pins the expected output shape; the caller-supplied text is appended
// verbatim, with no truncation or escaping.
const promptFormat = `Given the following text, generate %d flashcards with a question and answer.
The output should be a JSON array of objects, where each object has "question" and "answer" keys.
Example:
[
  {
    "question": "What is the capital of France?",
    "answer": "Paris"
  },
  {
    "question": "What is the highest mountain in the world?",
    "answer": "Mount Everest"
  }
]
Text: %s`

// BuildPrompt formats the generation instruction for the upstream model.
// It is a pure formatting step: no validation, and the source text is
// embedded unmodified.
func BuildPrompt(text string, count int) string {
	return fmt.Sprintf(promptFormat, count, text)
}

// ResponseJSONSchema returns the structured-output schema passed alongside
// the prompt to constrain the model's output: a JSON array of objects, each
// requiring "question" and "answer" string fields.
func ResponseJSONSchema() map[string]any {
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{"type": "string"},
				"answer":   map[string]any{"type": "string"},
			},
			"required": []string{"question", "answer"},
		},
	}
}
