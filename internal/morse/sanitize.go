package morse

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/morsekit/morse-translator/internal/model"
)

// ErrEmptyInput is returned when nothing translatable remains after
// sanitization.
var ErrEmptyInput = errors.New("nothing to translate")

// whitespaceRuns matches two or more consecutive whitespace characters.
var whitespaceRuns = regexp.MustCompile(`\s{2,}`)

// asciiFold decomposes accented characters and strips the combining marks,
// so diacritical letters land on their closest ASCII base letter.
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldExceptions covers letters with no Unicode decomposition that the
// fold chain leaves untouched.
var foldExceptions = strings.NewReplacer(
	"Ł", "L", "ł", "l",
	"Ø", "O", "ø", "o",
	"Đ", "D", "đ", "d",
	"ß", "ss",
	"Æ", "AE", "æ", "ae",
)

// Normalize folds diacritics to ASCII, uppercases the result and trims
// surrounding whitespace.
func Normalize(text string) string {
	folded, _, err := transform.String(asciiFold, foldExceptions.Replace(text))
	if err != nil {
		// Fold failure leaves the input as-is; unsupported runes are
		// reported by Sanitize instead.
		folded = text
	}
	return strings.ToUpper(strings.TrimSpace(folded))
}

// CollapseWhitespace replaces every run of whitespace with a single space.
func CollapseWhitespace(text string) string {
	return whitespaceRuns.ReplaceAllString(text, " ")
}

// Sanitize normalizes user input for the given direction and reports which
// characters cannot be translated. Unsupported characters are reported, not
// dropped, so the caller decides whether to strip them or abort.
//
// For MorseToText the unsupported set contains anything outside dots,
// dashes, slashes and spaces.
func Sanitize(text string, dir model.Direction) (string, []rune, error) {
	var clean string
	switch dir {
	case model.MorseToText:
		clean = CollapseWhitespace(strings.TrimSpace(text))
	default:
		clean = CollapseWhitespace(Normalize(text))
	}

	if clean == "" {
		return "", nil, ErrEmptyInput
	}

	var unsupported []rune
	seen := make(map[rune]bool)
	for _, r := range clean {
		if r == ' ' || seen[r] {
			continue
		}
		if !supportedFor(r, dir) {
			seen[r] = true
			unsupported = append(unsupported, r)
		}
	}

	return clean, unsupported, nil
}

// StripUnsupported removes every character the direction cannot translate,
// then collapses any whitespace runs the removal opened up. Used after the
// user confirms strip-and-continue.
func StripUnsupported(text string, dir model.Direction) string {
	var b strings.Builder
	for _, r := range text {
		if r == ' ' || supportedFor(r, dir) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(CollapseWhitespace(b.String()))
}

func supportedFor(r rune, dir model.Direction) bool {
	if dir == model.MorseToText {
		return r == '.' || r == '-' || r == '/' || r == ' '
	}
	return Supported(r)
}
