// Package webpage fetches web pages and converts their HTML to Markdown so
// callers can pull sentences out of online text and feed them to the
// analyzer. It uses the standard library HTTP client and the
// html-to-markdown library for conversion.
package webpage
