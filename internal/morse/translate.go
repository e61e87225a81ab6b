package morse

import (
	"strings"

	"github.com/morsekit/morse-translator/internal/model"
)

// ToMorse encodes plain text into morse patterns. Input is normalized and
// case-folded internally; characters without a table entry are skipped, so
// callers that need to warn about them run Sanitize first. Character
// patterns are joined with single spaces, words with the word separator.
func ToMorse(text string) (model.TranslationResult, error) {
	result := model.TranslationResult{Direction: model.TextToMorse}

	clean := CollapseWhitespace(Normalize(text))
	if clean == "" {
		return result, ErrEmptyInput
	}

	words := strings.Fields(clean)
	encoded := make([]string, 0, len(words))
	for _, word := range words {
		var patterns []string
		for _, char := range word {
			if pattern, ok := PatternFor(char); ok {
				patterns = append(patterns, pattern)
			}
		}
		if len(patterns) > 0 {
			encoded = append(encoded, strings.Join(patterns, SymbolSeparator))
		}
	}

	result.Output = strings.Join(encoded, WordSeparator)
	if result.Output == "" {
		return result, ErrEmptyInput
	}
	return result, nil
}

// ToText decodes a morse string into plain text. Words are split on the
// word separator, then on single spaces into symbol groups. A group that
// matches no table entry becomes the placeholder marker instead of failing
// the whole translation, so partial results remain visible; the result
// carries a warning when most groups were unrecognized.
func ToText(morseText string) (model.TranslationResult, error) {
	result := model.TranslationResult{Direction: model.MorseToText}

	clean := CollapseWhitespace(strings.TrimSpace(morseText))
	if clean == "" {
		return result, ErrEmptyInput
	}

	var decoded []string
	for _, word := range strings.Split(clean, WordSeparator) {
		var b strings.Builder
		for _, group := range strings.Fields(word) {
			if group == "/" {
				// A bare slash with uneven spacing still separates words.
				if b.Len() > 0 {
					decoded = append(decoded, b.String())
					b.Reset()
				}
				continue
			}
			result.Groups++
			if char, ok := CharFor(group); ok {
				b.WriteRune(char)
			} else {
				result.Unknown++
				b.WriteString(UnknownPlaceholder)
			}
		}
		if b.Len() > 0 {
			decoded = append(decoded, b.String())
		}
	}

	result.Output = strings.Join(decoded, " ")
	if result.Output == "" {
		return result, ErrEmptyInput
	}
	if result.Meaningless() {
		result.Warning = "decoded text is mostly unrecognized symbols"
	}
	return result, nil
}
