package platform

// Package platform contains filesystem helpers: output directory creation,
// collision-free sequential file naming, and an fsnotify watcher over the
// output directory.
