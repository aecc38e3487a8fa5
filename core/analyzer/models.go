package analyzer

// SentenceAnalysis is the validated result of one analysis call. It is built
// fresh from the provider's response each time; the package keeps no state
// across calls.
type SentenceAnalysis struct {
	// FullSentence echoes the analyzed input sentence.
	FullSentence string `json:"fullSentence"`

	// Classification is a free-text grammatical classification label for the
	// sentence as a whole (e.g. "simple declarative").
	Classification string `json:"classification"`

	// Structure holds the top-level constituents in left-to-right sentence
	// order. Order is semantically meaningful.
	Structure []SyntacticElement `json:"structure"`
}

// SyntacticElement is one node of the syntactic tree.
type SyntacticElement struct {
	// Text is the verbatim substring of the sentence this node covers.
	Text string `json:"text"`

	// Label is the grammatical tag for the node. It is free-form, defined by
	// the tagging convention encoded in the prompt, and not validated beyond
	// being a string.
	Label string `json:"label"`

	// Children holds the node's sub-constituents in order. Empty for
	// terminal nodes.
	Children []SyntacticElement `json:"children,omitempty"`
}
