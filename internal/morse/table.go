package morse

import "fmt"

// Separators used in rendered morse strings.
// These should stay stable across the UI, audio synthesis and docs.
const (
	// SymbolSeparator sits between the patterns of adjacent characters
	SymbolSeparator = " "

	// WordSeparator sits between words, a slash with a space on either side
	WordSeparator = " / "

	// UnknownPlaceholder substitutes a symbol group that matches no table
	// entry during decode. Not itself a table character.
	UnknownPlaceholder = "#"
)

// encodeTable is the canonical character→pattern mapping (ITU morse code
// plus common punctuation). Keys are uppercase; lookups go through
// PatternFor which normalizes case.
var encodeTable = map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".", 'F': "..-.",
	'G': "--.", 'H': "....", 'I': "..", 'J': ".---", 'K': "-.-", 'L': ".-..",
	'M': "--", 'N': "-.", 'O': "---", 'P': ".--.", 'Q': "--.-", 'R': ".-.",
	'S': "...", 'T': "-", 'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-",
	'Y': "-.--", 'Z': "--..",
	'0': "-----", '1': ".----", '2': "..---", '3': "...--", '4': "....-",
	'5': ".....", '6': "-....", '7': "--...", '8': "---..", '9': "----.",
	'.': ".-.-.-", ',': "--..--", '\'': ".----.", '"': ".-..-.",
	'_': "..--.-", ':': "---...", ';': "-.-.-.", '?': "..--..",
	'!': "-.-.--", '-': "-....-", '+': ".-.-.", '/': "-..-.",
	'(': "-.--.", ')': "-.--.-", '=': "-...-", '@': ".--.-.",
	'$': "...-..-", '&': ".-...",
}

// decodeTable is the inverse mapping, built once at startup.
var decodeTable = buildDecodeTable()

func buildDecodeTable() map[string]rune {
	inverse := make(map[string]rune, len(encodeTable))
	for char, pattern := range encodeTable {
		if prev, exists := inverse[pattern]; exists {
			panic(fmt.Sprintf("morse: pattern %q assigned to both %q and %q", pattern, prev, char))
		}
		inverse[pattern] = char
	}
	return inverse
}

// PatternFor returns the morse pattern for a character, case-insensitively.
func PatternFor(char rune) (string, bool) {
	pattern, ok := encodeTable[upperRune(char)]
	return pattern, ok
}

// CharFor returns the character a morse pattern decodes to.
func CharFor(pattern string) (rune, bool) {
	char, ok := decodeTable[pattern]
	return char, ok
}

// Supported reports whether a character has a morse pattern. A space is
// not a table entry but is always accepted as a word boundary.
func Supported(char rune) bool {
	_, ok := encodeTable[upperRune(char)]
	return ok
}

// SupportedChars returns every character in the table, for tests and
// documentation. The slice is a fresh copy on each call.
func SupportedChars() []rune {
	chars := make([]rune, 0, len(encodeTable))
	for char := range encodeTable {
		chars = append(chars, char)
	}
	return chars
}

func upperRune(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
