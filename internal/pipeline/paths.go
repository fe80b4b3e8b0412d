package pipeline

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const correctedSuffix = "_corrected"

// IsPNG reports whether name has a .png extension, ignoring case.
func IsPNG(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".png")
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// stem drops the extension. Leading dots do not start one, so ".png" is its
// own stem.
func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(strings.TrimLeft(name, ".")))
}

// OutputPath picks where the corrected copy of inputPath goes.
//
// With an output folder the file keeps its name there, falling back to
// <stem>0.png, <stem>1.png, ... when taken. Without one the copy sits next to
// the input as <stem>_corrected.png, then <stem>_corrected0.png, and so on.
// Existing files are never chosen.
func OutputPath(inputPath, outputFolder string) string {
	name := filepath.Base(inputPath)
	base := stem(name)

	var dir, first, prefix string
	if outputFolder != "" {
		dir = outputFolder
		first = name
		prefix = base
	} else {
		dir = filepath.Dir(inputPath)
		first = base + correctedSuffix + ".png"
		prefix = base + correctedSuffix
	}

	candidate := filepath.Join(dir, first)
	for n := 0; exists(candidate); n++ {
		candidate = filepath.Join(dir, prefix+strconv.Itoa(n)+".png")
	}
	return candidate
}
