package blueprint

import "fmt"

// Blueprint is the structured concept the model is asked to return for an
// app idea. The backend relays the model's JSON as-is; this type documents
// the expected shape and is what clients decode into.
type Blueprint struct {
	Title        string   `json:"title"`
	Tagline      string   `json:"tagline"`
	Features     []string `json:"features"`
	TechStack    []string `json:"techStack"`
	Monetization string   `json:"monetization"`
}

// SystemPrompt instructs the model to act as a CTO and answer with the
// Blueprint JSON structure.
const SystemPrompt = `You are an expert CTO for a software agency.
User will provide an app idea. You must generate a technical blueprint JSON.
Structure:
{
    "title": "Creative App Name",
    "tagline": "Short punchy pitch",
    "features": ["Feature 1", "Feature 2", "Feature 3", "Feature 4"],
    "techStack": ["Framework", "Language", "Database", "Service"],
    "monetization": "One sentence business model"
}`

// UserPrompt embeds the caller's idea verbatim.
func UserPrompt(idea string) string {
	return fmt.Sprintf("Create a blueprint for this idea: %s", idea)
}
