// Package gemini implements the [ai.Provider] interface on top of Google's
// Gemini generateContent API. Request and response conversion between the
// generic ai types and the Gemini wire format lives in conversion.go; the
// wire types themselves are in models.go.
package gemini
