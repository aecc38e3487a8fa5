package analyzer

import (
	"fmt"

	"github.com/leofalp/sintaxis/providers/ai"
)

// systemPrompt fixes the model's role and output discipline. The full target
// schema lives in the per-request instruction so the two travel together.
const systemPrompt = "You are a precise grammar engine that performs syntactic analysis of sentences. " +
	"You always answer with a single JSON object and nothing else: no prose, no explanation."

// analysisInstruction is the fixed instruction template. It fully encodes the
// target schema and labeling convention, so the model can be treated as
// returning schema-conformant text. The reply is still validated before use.
const analysisInstruction = `Perform a complete syntactic analysis of the sentence below.

Reply with a single JSON object with exactly this shape:
{
  "fullSentence": "<the sentence, verbatim>",
  "classification": "<overall grammatical classification, e.g. 'simple declarative'>",
  "structure": [
    {
      "text": "<verbatim substring this constituent covers>",
      "label": "<grammatical tag, e.g. 'subject', 'predicate', 'noun phrase', 'verb', 'direct object'>",
      "children": [ <sub-constituents with the same shape, in order; omit for terminal nodes> ]
    }
  ]
}

Rules:
- "structure" lists the top-level constituents in left-to-right sentence order.
- Every node must carry "text" and "label" as strings.
- "children", when present, must be an array, ordered left to right.
- Do not add fields beyond the ones shown.

Sentence: %s`

// buildRequest assembles the deterministic chat request for one sentence.
// Temperature is pinned to keep the request fully deterministic on our side;
// the JSON response-format hint asks the provider to skip prose framing.
func buildRequest(sentence string) ai.ChatRequest {
	return ai.ChatRequest{
		Messages: []ai.Message{
			{Role: ai.RoleUser, Content: fmt.Sprintf(analysisInstruction, sentence)},
		},
		SystemPrompt:   systemPrompt,
		ResponseFormat: &ai.ResponseFormat{Type: "json_object"},
		GenerationConfig: &ai.GenerationConfig{
			Temperature: 0.1,
		},
	}
}
