// Package blueprint defines the app blueprint the backend generates and the
// prompts used to ask the model for one.
//
// A blueprint has a title, a tagline, four features, a four-item tech stack
// and a one-sentence monetization model.
//
// Example:
//
//	system := blueprint.SystemPrompt
//	user := blueprint.UserPrompt("a social network for gardeners")
package blueprint
