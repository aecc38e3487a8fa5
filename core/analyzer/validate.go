package analyzer

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// fenceRE matches a payload that consists of exactly one fenced code block:
// an opening fence with an optional language tag, the body, and a closing
// fence, with nothing before or after. The tag matches case-insensitively and
// an optional trailing newline before the closing fence is tolerated.
var fenceRE = regexp.MustCompile("(?is)^```[a-z0-9]*[ \t]*\r?\n?(.*?)\r?\n?```$")

// DecodeAnalysis turns an untrusted text blob into a validated
// *SentenceAnalysis, or a descriptive error explaining the rejection. It
// never panics on malformed input.
//
// The pipeline: trim surrounding whitespace, strip a single fenced code block
// if the payload is wrapped in one, parse as JSON (with a jsonrepair pass
// when strict parsing fails), then structurally validate the parsed value
// with a recursive descent over the tree. Validation is all-or-nothing: a
// single invalid node anywhere rejects the whole result.
func DecodeAnalysis(raw string) (*SentenceAnalysis, error) {
	text := stripFence(strings.TrimSpace(raw))

	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		// Models occasionally emit almost-JSON (single quotes, trailing
		// commas). Attempt a repair pass before rejecting.
		repaired, repairErr := jsonrepair.JSONRepair(text)
		if repairErr != nil {
			return nil, fmt.Errorf("response is not valid JSON: %w (repair also failed: %v)", err, repairErr)
		}
		if err := json.Unmarshal([]byte(repaired), &parsed); err != nil {
			return nil, fmt.Errorf("response is not valid JSON after repair: %w", err)
		}
	}

	return decodeRoot(parsed)
}

// stripFence removes a surrounding fenced code block, returning the inner
// body. Input that is not wrapped in a single whole-payload fence is
// returned unchanged.
func stripFence(text string) string {
	if match := fenceRE.FindStringSubmatch(text); match != nil {
		return match[1]
	}
	return text
}

// decodeRoot validates the root object: string fullSentence, string
// classification, and an array structure whose elements recurse through
// decodeElement.
func decodeRoot(v any) (*SentenceAnalysis, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("root is %s, expected an object", jsonTypeName(v))
	}

	full, ok := obj["fullSentence"].(string)
	if !ok {
		return nil, fmt.Errorf("root: %q is missing or not a string", "fullSentence")
	}

	classification, ok := obj["classification"].(string)
	if !ok {
		return nil, fmt.Errorf("root: %q is missing or not a string", "classification")
	}

	rawStructure, ok := obj["structure"].([]any)
	if !ok {
		return nil, fmt.Errorf("root: %q is missing or not an array", "structure")
	}

	structure, err := decodeElements(rawStructure, "structure")
	if err != nil {
		return nil, err
	}

	return &SentenceAnalysis{
		FullSentence:   full,
		Classification: classification,
		Structure:      structure,
	}, nil
}

// decodeElements validates every element of an ordered node sequence. path
// locates the sequence in the tree for error messages.
func decodeElements(items []any, path string) ([]SyntacticElement, error) {
	elements := make([]SyntacticElement, 0, len(items))
	for i, item := range items {
		element, err := decodeElement(item, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		elements = append(elements, element)
	}
	return elements, nil
}

// decodeElement validates a single node: string text, string label, and an
// optional children array that recurses under the same rule.
func decodeElement(v any, path string) (SyntacticElement, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return SyntacticElement{}, fmt.Errorf("%s: node is %s, expected an object", path, jsonTypeName(v))
	}

	text, ok := obj["text"].(string)
	if !ok {
		return SyntacticElement{}, fmt.Errorf("%s: %q is missing or not a string", path, "text")
	}

	label, ok := obj["label"].(string)
	if !ok {
		return SyntacticElement{}, fmt.Errorf("%s: %q is missing or not a string", path, "label")
	}

	element := SyntacticElement{Text: text, Label: label}

	// A present children key must be an array; anything else (including
	// null or a single object) invalidates the whole tree.
	if rawChildren, present := obj["children"]; present {
		items, ok := rawChildren.([]any)
		if !ok {
			return SyntacticElement{}, fmt.Errorf("%s: %q is %s, expected an array", path, "children", jsonTypeName(rawChildren))
		}

		children, err := decodeElements(items, path+".children")
		if err != nil {
			return SyntacticElement{}, err
		}
		element.Children = children
	}

	return element, nil
}

// jsonTypeName names the JSON type of a decoded value for error messages.
func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "a boolean"
	case float64:
		return "a number"
	case string:
		return "a string"
	case []any:
		return "an array"
	case map[string]any:
		return "an object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
