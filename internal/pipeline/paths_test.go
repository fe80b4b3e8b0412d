package pipeline

import (
	"path/filepath"
	"testing"
)

func TestIsPNG(t *testing.T) {
	tests := map[string]bool{
		"a.png":     true,
		"B.PNG":     true,
		"c.Png":     true,
		"d.png.bak": false,
		"e.jpg":     false,
		"png":       false,
	}
	for name, want := range tests {
		if got := IsPNG(name); got != want {
			t.Errorf("IsPNG(%q) = %v, expected %v", name, got, want)
		}
	}
}

func TestOutputPath_Corrected(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "img.png")

	if got, want := OutputPath(input, ""), filepath.Join(dir, "img_corrected.png"); got != want {
		t.Errorf("OutputPath = %q, expected %q", got, want)
	}

	writeFile(t, filepath.Join(dir, "img_corrected.png"), "x")
	if got, want := OutputPath(input, ""), filepath.Join(dir, "img_corrected0.png"); got != want {
		t.Errorf("OutputPath = %q, expected %q", got, want)
	}

	writeFile(t, filepath.Join(dir, "img_corrected0.png"), "x")
	writeFile(t, filepath.Join(dir, "img_corrected1.png"), "x")
	if got, want := OutputPath(input, ""), filepath.Join(dir, "img_corrected2.png"); got != want {
		t.Errorf("OutputPath = %q, expected %q", got, want)
	}
}

func TestOutputPath_UppercaseExtension(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "Photo.PNG")
	if got, want := OutputPath(input, ""), filepath.Join(dir, "Photo_corrected.png"); got != want {
		t.Errorf("OutputPath = %q, expected %q", got, want)
	}
}

func TestOutputPath_OutputFolder(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	input := filepath.Join(src, "img.png")

	if got, want := OutputPath(input, out), filepath.Join(out, "img.png"); got != want {
		t.Errorf("OutputPath = %q, expected %q", got, want)
	}

	writeFile(t, filepath.Join(out, "img.png"), "x")
	if got, want := OutputPath(input, out), filepath.Join(out, "img0.png"); got != want {
		t.Errorf("OutputPath = %q, expected %q", got, want)
	}

	writeFile(t, filepath.Join(out, "img0.png"), "x")
	if got, want := OutputPath(input, out), filepath.Join(out, "img1.png"); got != want {
		t.Errorf("OutputPath = %q, expected %q", got, want)
	}
}

func TestOutputPath_DotfileName(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, ".png")
	if got, want := OutputPath(input, ""), filepath.Join(dir, ".png_corrected.png"); got != want {
		t.Errorf("OutputPath = %q, expected %q", got, want)
	}
	if got, want := stem(".hidden.png"), ".hidden"; got != want {
		t.Errorf("stem = %q, expected %q", got, want)
	}
}
