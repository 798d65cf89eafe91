// Package gemini is a small client for the Gemini generateContent API.
//
// A call makes exactly one HTTP attempt. Failures come back as one of three
// typed errors so callers can map them without string matching:
//   - *StatusError: the API answered with a non-2xx status
//   - *TransportError: no usable response (network, timeout, open breaker)
//   - *DecodeError: a 2xx body that could not be decoded, tagged with the
//     stage that failed (envelope or generated content)
//
// The API key travels as the "key" query parameter and is redacted from
// transport error messages.
//
// Example Usage:
//
//	client := gemini.NewClient(gemini.Options{BaseURL: cfg.BaseURL, Model: cfg.Model})
//	value, err := client.GenerateJSON(ctx, cfg.APIKey, systemPrompt, userPrompt)
package gemini
