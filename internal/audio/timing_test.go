package audio

import (
	"testing"
	"time"
)

func TestUnitDuration(t *testing.T) {
	tests := []struct {
		wpm      int
		expected time.Duration
	}{
		{20, 60 * time.Millisecond},
		{12, 100 * time.Millisecond},
		{0, UnitDuration(DefaultWPM)}, // falls back to default speed
	}

	for _, test := range tests {
		result := UnitDuration(test.wpm)
		if result != test.expected {
			t.Errorf("UnitDuration(%d) = %v, expected %v", test.wpm, result, test.expected)
		}
	}
}

func TestSchedule_SingleDit(t *testing.T) {
	elements := schedule(".")
	if len(elements) != 1 {
		t.Fatalf("Expected 1 element, got %d", len(elements))
	}
	if !elements[0].tone || elements[0].units != ditUnits {
		t.Errorf("Expected a 1-unit tone, got %+v", elements[0])
	}
}

func TestSchedule_SOS(t *testing.T) {
	// S=5 units, letter gap 3, O=11 units, letter gap 3, S=5 units
	elements := schedule("... --- ...")
	if totalUnits(elements) != 27 {
		t.Errorf("Expected 27 units for SOS, got %d", totalUnits(elements))
	}
}

func TestSchedule_WordGap(t *testing.T) {
	// E E in two words: 1 + 7 + 1 units
	elements := schedule(". / .")
	if totalUnits(elements) != 9 {
		t.Errorf("Expected 9 units, got %d", totalUnits(elements))
	}

	var gaps int
	for _, el := range elements {
		if !el.tone && el.units == wordGapUnits {
			gaps++
		}
	}
	if gaps != 1 {
		t.Errorf("Expected exactly one word gap, got %d", gaps)
	}
}

func TestSchedule_Empty(t *testing.T) {
	if elements := schedule(""); len(elements) != 0 {
		t.Errorf("Expected no elements for empty pattern, got %d", len(elements))
	}
}
