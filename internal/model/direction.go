package model

// Direction indicates which way a translation request runs.
type Direction string

const (
	// TextToMorse encodes plain text into morse patterns
	TextToMorse Direction = "TextToMorse"

	// MorseToText decodes morse patterns into plain text
	MorseToText Direction = "MorseToText"
)

// String returns the string representation of Direction
func (d Direction) String() string {
	return string(d)
}

// TranslationResult is the outcome of a single translation request.
// A request is ephemeral: built from the current field values, translated,
// and discarded after the output is written back to the UI.
type TranslationResult struct {
	Direction Direction
	Output    string
	Unknown   int    // morse symbol groups that matched no table entry
	Groups    int    // total symbol groups examined during decode
	Warning   string // non-fatal advisory for the user, empty if none
}

// Meaningless reports whether the decode produced mostly unrecognized
// groups. Heuristic only; the translation itself still succeeded.
func (tr TranslationResult) Meaningless() bool {
	return tr.Groups > 0 && tr.Unknown*2 >= tr.Groups
}
