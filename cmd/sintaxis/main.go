// Command sintaxis analyzes a sentence from the command line and prints the
// resulting syntactic tree as indented JSON.
//
// Usage:
//
//	sintaxis "The quick brown fox jumps over the lazy dog."
//
// The Gemini API key is read from GEMINI_API_KEY (a .env file in the working
// directory is loaded when present).
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/leofalp/sintaxis/core/analyzer"
	"github.com/leofalp/sintaxis/internal/utils"
	"github.com/leofalp/sintaxis/providers/ai/gemini"
)

func main() {
	// Best-effort: absence of a .env file is not an error.
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: sintaxis <sentence>")
		os.Exit(2)
	}
	sentence := strings.Join(os.Args[1:], " ")

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	a := analyzer.New(gemini.New(), analyzer.WithLogger(logger))
	if !a.IsConfigured() {
		fmt.Fprintln(os.Stderr, "GEMINI_API_KEY is not set")
		os.Exit(1)
	}

	analysis, err := a.Analyze(context.Background(), sentence)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if analysis == nil {
		fmt.Fprintln(os.Stderr, "analysis unavailable: the model returned no usable result")
		os.Exit(1)
	}

	fmt.Println(utils.JSONToString(analysis, true))
}
