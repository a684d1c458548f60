package gemini

// Wire types for the generateContent REST endpoint. Only the fields this
// client reads or writes are declared.

// generateContentRequest is the request body for models/{model}:generateContent.
type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

// generationConfig constrains the model's output format.
type generationConfig struct {
	ResponseMIMEType   string `json:"responseMimeType,omitempty"`
	ResponseJSONSchema any    `json:"responseJsonSchema,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// generateContentResponse mirrors the upstream response shape the gateway
// validates: candidates -> content -> parts -> text.
type generateContentResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content *content `json:"content"`
}
