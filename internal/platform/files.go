package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// maxSequence bounds the naming loop so a pathological directory cannot
// spin forever.
const maxSequence = 100000

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	info, err := os.Stat(dirPath)
	if os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s exists and is not a directory", dirPath)
	}
	return nil
}

// NextSequencePath returns the first unused path of the form base.ext,
// base_1.ext, base_2.ext, ... inside dir, so earlier output files are never
// overwritten.
func NextSequencePath(dir, base, ext string) (string, error) {
	path := filepath.Join(dir, base+ext)
	for counter := 1; ; counter++ {
		_, err := os.Stat(path)
		if os.IsNotExist(err) {
			return path, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if counter > maxSequence {
			return "", fmt.Errorf("no free sequence name for %s%s in %s", base, ext, dir)
		}
		path = filepath.Join(dir, fmt.Sprintf("%s_%d%s", base, counter, ext))
	}
}

// GetHomeOutputDir returns the default output directory under the user's
// home directory.
func GetHomeOutputDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, "MorseAudio"), nil
}
