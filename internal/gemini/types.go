package gemini

// Part is one piece of content. Only text parts are used here.
type Part struct {
	Text string `json:"text"`
}

// Content is a list of parts, optionally attributed to a role.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// GenerationConfig controls the model's output format.
type GenerationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

// GenerateContentRequest is the body of a generateContent call.
type GenerateContentRequest struct {
	Contents          []Content         `json:"contents"`
	SystemInstruction *Content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
}

// Candidate is one generated answer.
type Candidate struct {
	Content      *Content `json:"content"`
	FinishReason string   `json:"finishReason,omitempty"`
}

// UsageMetadata reports token accounting for a call.
type UsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

// GenerateContentResponse is the envelope returned by generateContent.
type GenerateContentResponse struct {
	Candidates    []Candidate    `json:"candidates"`
	UsageMetadata *UsageMetadata `json:"usageMetadata,omitempty"`
	ModelVersion  string         `json:"modelVersion,omitempty"`
}

// NewJSONRequest builds a single-turn request asking for a JSON answer.
func NewJSONRequest(system, user string) *GenerateContentRequest {
	return &GenerateContentRequest{
		Contents: []Content{
			{Parts: []Part{{Text: user}}},
		},
		SystemInstruction: &Content{
			Parts: []Part{{Text: system}},
		},
		GenerationConfig: &GenerationConfig{
			ResponseMimeType: "application/json",
		},
	}
}

// Text returns the text of the first part of the first candidate.
func (r *GenerateContentResponse) Text() (string, error) {
	if len(r.Candidates) == 0 {
		return "", ErrNoCandidates
	}
	content := r.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", ErrEmptyContent
	}
	return content.Parts[0].Text, nil
}
