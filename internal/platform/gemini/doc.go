// Package gemini implements the generation.CardGenerator interface against
// Google's Gemini generateContent REST API. The client issues exactly one
// outbound request per generation, classifies upstream failures with the
// generation package's sentinel errors, and strictly validates the
// candidates/content/parts response structure before handing cards back.
package gemini
