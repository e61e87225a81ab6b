package model

// Package model defines domain data structures used across the app:
// translation directions and results, audio generation jobs, and status
// enums. Structures are designed for direct use in the UI and explicit
// state transitions.
