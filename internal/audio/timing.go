package audio

import (
	"strings"
	"time"
)

// Standard CW element lengths in timing units. One unit is the duration of
// a dit; the PARIS convention makes a unit 1.2/WPM seconds.
const (
	ditUnits        = 1
	dahUnits        = 3
	elementGapUnits = 1
	letterGapUnits  = 3
	wordGapUnits    = 7
)

// element is one keying step of the schedule: tone or silence, measured in
// timing units.
type element struct {
	tone  bool
	units int
}

// UnitDuration returns the length of one timing unit for a keying speed.
func UnitDuration(wpm int) time.Duration {
	if wpm <= 0 {
		wpm = DefaultWPM
	}
	return 1200 * time.Millisecond / time.Duration(wpm)
}

// schedule expands a rendered morse string (single spaces between letters,
// " / " between words) into a keying schedule.
func schedule(pattern string) []element {
	var elements []element

	words := strings.Split(pattern, " / ")
	for wi, word := range words {
		letters := strings.Fields(word)
		for li, letter := range letters {
			for ei, symbol := range letter {
				switch symbol {
				case '.':
					elements = append(elements, element{tone: true, units: ditUnits})
				case '-':
					elements = append(elements, element{tone: true, units: dahUnits})
				default:
					continue
				}
				if ei < len(letter)-1 {
					elements = append(elements, element{units: elementGapUnits})
				}
			}
			if li < len(letters)-1 {
				elements = append(elements, element{units: letterGapUnits})
			}
		}
		if wi < len(words)-1 {
			elements = append(elements, element{units: wordGapUnits})
		}
	}

	return elements
}

// totalUnits sums the schedule length, for duration estimates.
func totalUnits(elements []element) int {
	total := 0
	for _, el := range elements {
		total += el.units
	}
	return total
}
