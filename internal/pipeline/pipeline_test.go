package pipeline

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/timothywong731/depthmap2mesh/pkg/heightfield"
	"github.com/timothywong731/depthmap2mesh/pkg/relief"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encoding %s: %v", path, err)
	}
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "depth.png")
	output := filepath.Join(dir, "relief.stl")

	img := image.NewGray(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(64 * y)})
		}
	}
	writePNG(t, input, img)

	err := Run(Options{
		Input:         input,
		Output:        output,
		Width:         10,
		Depth:         5,
		BaseThickness: 1,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// 4x4 grid: 18 top + 18 bottom + 24 wall triangles.
	const wantTriangles = 60
	info, err := os.Stat(output)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if want := int64(84 + 50*wantTriangles); info.Size() != want {
		t.Errorf("STL size = %d, want %d", info.Size(), want)
	}
}

func TestRunWithResampling(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "depth.png")
	output := filepath.Join(dir, "relief.stl")

	writePNG(t, input, image.NewGray(image.Rect(0, 0, 8, 6)))

	err := Run(Options{
		Input:         input,
		Output:        output,
		Width:         10,
		Depth:         5,
		BaseThickness: 1,
		Resolution:    heightfield.Resolution{Width: 4},
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// Resampled to 4x3: 12 top + 12 bottom + 20 wall triangles.
	const wantTriangles = 44
	info, err := os.Stat(output)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if want := int64(84 + 50*wantTriangles); info.Size() != want {
		t.Errorf("STL size = %d, want %d", info.Size(), want)
	}
}

func TestRunTinyImage(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "depth.png")
	output := filepath.Join(dir, "relief.stl")

	writePNG(t, input, image.NewGray(image.Rect(0, 0, 1, 1)))

	err := Run(Options{
		Input:         input,
		Output:        output,
		Width:         10,
		Depth:         5,
		BaseThickness: 1,
	})
	if !errors.Is(err, relief.ErrInsufficientResolution) {
		t.Fatalf("Run error = %v, want ErrInsufficientResolution", err)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Error("no output file should be written on failure")
	}
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	err := Run(Options{
		Input:         filepath.Join(dir, "nope.png"),
		Output:        filepath.Join(dir, "relief.stl"),
		Width:         10,
		Depth:         5,
		BaseThickness: 1,
	})
	if err == nil {
		t.Fatal("Run should fail for a missing input file")
	}
}
