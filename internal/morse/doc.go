package morse

// Package morse implements the character↔pattern symbol table and the pure
// translation and sanitization functions. It has no UI or audio
// dependencies so the conversion logic stays testable in isolation.
