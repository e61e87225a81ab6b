package ui

// Package ui builds the single-window translator form and wires its widget
// callbacks to the morse and audio services. Callbacks read current field
// values, delegate to the pure translation APIs, and write results back;
// no conversion logic lives in this package.
